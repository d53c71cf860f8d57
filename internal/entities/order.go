package entities

import "time"

type Order struct {
	ID                  string
	ClientID            int64
	Pickup              Address
	Dropoff             Address
	PackageSize         PackageSizeType
	Weight              float64
	Urgency             UrgencyType
	ScheduledDate       time.Time
	SpecialInstructions string
	Insurance           bool
	Amount              float64
	Distance            float64
	EstimatedTime       string
	CourierID           int64
	Status              OrderStatusType
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Address - адрес с обязательными координатами.
type Address struct {
	Text string
	Lat  float64
	Lng  float64
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "PENDING"
	OrderInProgress OrderStatusType = "IN_PROGRESS"
	OrderDelivered  OrderStatusType = "DELIVERED"
	OrderCancelled  OrderStatusType = "CANCELLED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PackageSizeType string

const (
	PackageSmall  PackageSizeType = "small"
	PackageMedium PackageSizeType = "medium"
	PackageLarge  PackageSizeType = "large"
)

func (t PackageSizeType) String() string {
	return string(t)
}

type UrgencyType string

const (
	UrgencyStandard UrgencyType = "standard"
	UrgencyExpress  UrgencyType = "express"
	UrgencyUrgent   UrgencyType = "urgent"
)

func (t UrgencyType) String() string {
	return string(t)
}

// OrderDraft - данные создания заказа до присвоения ID и статуса.
type OrderDraft struct {
	ClientID            int64
	Pickup              Address
	Dropoff             Address
	PackageSize         PackageSizeType
	Weight              float64
	Urgency             UrgencyType
	ScheduledDate       time.Time
	SpecialInstructions string
	Insurance           bool
	Amount              float64
	Distance            float64
	EstimatedTime       string
	CourierID           int64
}

// OrderPage - страница списка заказов для админской выборки.
type OrderPage struct {
	Orders []Order
	Total  int64
	Page   int64
	Limit  int64
}
