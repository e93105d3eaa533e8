package validators

import (
	"regexp"
	"strings"
)

var (
	phoneRe = regexp.MustCompile(`^\+?[\d\s()\-]+$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)

	phoneSeparatorRe = regexp.MustCompile(`[\s\-()]`)
)

// IsValidPhone applies the permissive legacy rule: an optional leading plus,
// digits and separators only, with at least 7 digits once separators are
// stripped.
func IsValidPhone(phone string) bool {
	if !phoneRe.MatchString(phone) {
		return false
	}
	stripped := phoneSeparatorRe.ReplaceAllString(phone, "")
	stripped = strings.TrimPrefix(stripped, "+")
	return len(stripped) >= 7
}

// IsValidName requires at least 2 characters after trimming.
func IsValidName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

// IsValidDate checks the YYYY-MM-DD shape.
func IsValidDate(date string) bool {
	return dateRe.MatchString(date)
}

// IsValidTime checks the HH:MM shape.
func IsValidTime(t string) bool {
	return timeRe.MatchString(t)
}
