package order

import "time"

type OrderDB struct {
	ID                  string
	ClientID            int64
	PickupAddress       string
	PickupLat           float64
	PickupLng           float64
	DropoffAddress      string
	DropoffLat          float64
	DropoffLng          float64
	PackageSize         string
	Weight              float64
	Urgency             string
	ScheduledDate       time.Time
	SpecialInstructions string
	Insurance           bool
	Amount              float64
	Distance            float64
	EstimatedTime       string
	CourierID           int64
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
