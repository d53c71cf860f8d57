package auth

import (
	"regexp"
	"strings"
)

const minPasswordLen = 8

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

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

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPassword(password string) bool {
	return len(password) >= minPasswordLen
}
