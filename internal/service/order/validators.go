package order

import (
	"strings"

	"delivery/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidAddress(a entities.Address) bool {
	if strings.TrimSpace(a.Text) == "" {
		return false
	}
	return a.Lat >= -90 && a.Lat <= 90 && a.Lng >= -180 && a.Lng <= 180
}

func isValidPackageSize(size string) bool {
	switch size {
	case "small", "medium", "large":
		return true
	default:
		return false
	}
}

func isValidUrgency(urgency string) bool {
	switch urgency {
	case "standard", "express", "urgent":
		return true
	default:
		return false
	}
}

func isValidStatus(status string) bool {
	switch status {
	case "PENDING", "IN_PROGRESS", "DELIVERED", "CANCELLED":
		return true
	default:
		return false
	}
}

// validateDraft возвращает ошибку первого невалидного поля.
func validateDraft(draft entities.OrderDraft) error {
	switch {
	case draft.ClientID <= 0:
		return ErrInvalidClientID
	case !isValidAddress(draft.Pickup):
		return ErrInvalidPickup
	case !isValidAddress(draft.Dropoff):
		return ErrInvalidDropoff
	case !isValidPackageSize(draft.PackageSize.String()):
		return ErrInvalidPackageSize
	case draft.Weight <= 0:
		return ErrInvalidWeight
	case !isValidUrgency(draft.Urgency.String()):
		return ErrInvalidUrgency
	case draft.ScheduledDate.IsZero():
		return ErrInvalidScheduledDate
	case draft.Amount <= 0:
		return ErrInvalidAmount
	case draft.Distance <= 0:
		return ErrInvalidDistance
	case draft.CourierID <= 0:
		return ErrInvalidCourierID
	default:
		return nil
	}
}
