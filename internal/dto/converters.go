package dto

import (
	"time"

	"delivery/internal/entities"
)

func FromOrder(o *entities.Order) Order {
	result := Order{
		ID:                  o.ID,
		ClientID:            o.ClientID,
		Pickup:              Address{Text: o.Pickup.Text, Lat: o.Pickup.Lat, Lng: o.Pickup.Lng},
		Dropoff:             Address{Text: o.Dropoff.Text, Lat: o.Dropoff.Lat, Lng: o.Dropoff.Lng},
		PackageSize:         o.PackageSize.String(),
		Weight:              o.Weight,
		Urgency:             o.Urgency.String(),
		SpecialInstructions: o.SpecialInstructions,
		Insurance:           o.Insurance,
		Amount:              o.Amount,
		Distance:            o.Distance,
		EstimatedTime:       o.EstimatedTime,
		CourierID:           o.CourierID,
		Status:              o.Status.String(),
		CreatedAt:           o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           o.UpdatedAt.Format(time.RFC3339),
	}
	if !o.ScheduledDate.IsZero() {
		result.ScheduledDate = o.ScheduledDate.Format(time.RFC3339)
	}
	return result
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i := range orders {
		result[i] = FromOrder(&orders[i])
	}
	return result
}

func FromCourier(c *entities.Courier) Courier {
	return Courier{
		ID:             c.ID,
		UserID:         c.UserID,
		FullName:       c.FullName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Experience:     c.Experience,
		Transport:      c.Transport.String(),
		Available:      c.Available,
		Motivation:     c.Motivation,
		IDDocument:     c.IDDocument.URL,
		DrivingLicense: c.DrivingLicense.URL,
		ProfilePicture: c.ProfilePicture.URL,
		Status:         c.Status.String(),
		DeliveryCount:  c.DeliveryCount,
		Rating:         c.Rating(),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}

func FromCourierList(couriers []entities.Courier) []Courier {
	result := make([]Courier, len(couriers))
	for i := range couriers {
		result[i] = FromCourier(&couriers[i])
	}
	return result
}

func FromCourierPublic(c entities.CourierPublic) CourierPublic {
	return CourierPublic{
		ID:             c.ID,
		FullName:       c.FullName,
		ProfilePicture: c.ProfilePicture,
		Transport:      c.Transport.String(),
		Rating:         c.Rating,
		DeliveryCount:  c.DeliveryCount,
	}
}

func FromFeedback(f *entities.Feedback) Feedback {
	return Feedback{
		ID:        f.ID,
		OrderID:   f.OrderID,
		CourierID: f.CourierID,
		ClientID:  f.ClientID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func FromNotification(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type.String(),
		Payload:   n.Payload,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func FromUser(u *entities.User) User {
	return User{
		ID:            u.ID,
		Email:         u.Email,
		Phone:         u.Phone,
		FullName:      u.FullName,
		Role:          u.Role.String(),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

func FromSettings(s *entities.Settings) Settings {
	return Settings{
		BasePrice:             s.BasePrice,
		PricePerKm:            s.PricePerKm,
		ExpressMultiplier:     s.ExpressMultiplier,
		UrgentMultiplier:      s.UrgentMultiplier,
		LargePackageSurcharge: s.LargePackageSurcharge,
		DeliveryZones:         s.DeliveryZones,
		VehicleTypes:          s.VehicleTypes,
		CompanyName:           s.CompanyName,
		CompanyEmail:          s.CompanyEmail,
		CompanyPhone:          s.CompanyPhone,
		CompanyAddress:        s.CompanyAddress,
		UpdatedAt:             s.UpdatedAt.Format(time.RFC3339),
	}
}
