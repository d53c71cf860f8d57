package order

import (
	"delivery/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:       o.ID,
		ClientID: o.ClientID,
		Pickup: entities.Address{
			Text: o.PickupAddress,
			Lat:  o.PickupLat,
			Lng:  o.PickupLng,
		},
		Dropoff: entities.Address{
			Text: o.DropoffAddress,
			Lat:  o.DropoffLat,
			Lng:  o.DropoffLng,
		},
		PackageSize:         entities.PackageSizeType(o.PackageSize),
		Weight:              o.Weight,
		Urgency:             entities.UrgencyType(o.Urgency),
		ScheduledDate:       o.ScheduledDate,
		SpecialInstructions: o.SpecialInstructions,
		Insurance:           o.Insurance,
		Amount:              o.Amount,
		Distance:            o.Distance,
		EstimatedTime:       o.EstimatedTime,
		CourierID:           o.CourierID,
		Status:              entities.OrderStatusType(o.Status),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
