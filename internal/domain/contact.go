package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9\s\-+()]+$`)
)

// IsValidEmail checks the x@y.z shape used by the booking forms
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPhone accepts digits, spaces and -+() with at least MinPhoneDigits digits
func IsValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= MinPhoneDigits
}
