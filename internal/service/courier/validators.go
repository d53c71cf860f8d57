package courier

import (
	"regexp"
	"strings"

	"delivery/internal/entities"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidTransport(transport string) bool {
	switch transport {
	case "bicycle", "motorcycle", "car", "van":
		return true
	default:
		return false
	}
}

func isValidCollection(collection entities.CourierCollection) bool {
	switch collection {
	case entities.CollectionApplicants, entities.CollectionActive:
		return true
	default:
		return false
	}
}
