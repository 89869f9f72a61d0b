// Package phone normalizes and validates Algerian phone numbers as entered
// on storefront order forms.
package phone

import (
	"errors"
	"fmt"
	"strings"
)

// Normalize strips every non-digit character and ensures the number starts
// with a leading 0.
func Normalize(number string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(number) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return digits
	}
	if !strings.HasPrefix(digits, "0") {
		digits = "0" + digits
	}
	return digits
}

// Validate checks a normalized number: mobile numbers (05/06/07) must be 10
// digits, landline numbers (02) must be 9.
func Validate(number string) error {
	if number == "" {
		return errors.New("phone number is empty")
	}
	if number == "0" {
		return errors.New("phone number is incomplete")
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return errors.New("phone number must contain only digits")
		}
	}

	mobile := strings.HasPrefix(number, "05") || strings.HasPrefix(number, "06") || strings.HasPrefix(number, "07")
	landline := strings.HasPrefix(number, "02")
	if !mobile && !landline {
		return errors.New("phone number must start with 05, 06, 07 or 02")
	}

	required := 10
	if landline {
		required = 9
	}
	if len(number) != required {
		return lengthError(required, len(number))
	}
	return nil
}

func lengthError(required, actual int) error {
	if actual > required {
		return fmt.Errorf("phone number has %d digits too many (expected %d)", actual-required, required)
	}
	return fmt.Errorf("phone number is missing %d digits (expected %d)", required-actual, required)
}
