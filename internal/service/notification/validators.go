package notification

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLen   = 100
	maxMessageLen = 500
)

// Разрешаем буквы, цифры, пробелы и базовую пунктуацию.
var textRe = regexp.MustCompile(`^[\p{L}\p{N}\s.,:;!?'"()%@/_-]+$`)

func isValidTitle(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return false
	}
	return textRe.MatchString(title)
}

func isValidMessage(message string) bool {
	message = strings.TrimSpace(message)
	if message == "" || utf8.RuneCountInString(message) > maxMessageLen {
		return false
	}
	return textRe.MatchString(message)
}

func isValidType(ntype string) bool {
	switch ntype {
	case "NEW_COURIER", "ORDER", "ORDER_UPDATE", "NEW_ORDER",
		"ADMIN_MESSAGE", "LOGIN", "COURIER_APPLICATION", "GENERAL":
		return true
	default:
		return false
	}
}
