package entities

import "time"

// Settings - единственная строка конфигурации тарифов и компании.
type Settings struct {
	BasePrice             float64
	PricePerKm            float64
	ExpressMultiplier     float64
	UrgentMultiplier      float64
	LargePackageSurcharge float64
	DeliveryZones         []string
	VehicleTypes          []string
	CompanyName           string
	CompanyEmail          string
	CompanyPhone          string
	CompanyAddress        string
	UpdatedAt             time.Time
}

type SettingsModify struct {
	BasePrice             *float64
	PricePerKm            *float64
	ExpressMultiplier     *float64
	UrgentMultiplier      *float64
	LargePackageSurcharge *float64
	DeliveryZones         *[]string
	VehicleTypes          *[]string
	CompanyName           *string
	CompanyEmail          *string
	CompanyPhone          *string
	CompanyAddress        *string
}
