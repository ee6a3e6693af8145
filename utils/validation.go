// utils/validation.go
package utils

import (
	"regexp"
)

var phonePattern = regexp.MustCompile(`^[1-9]\d{6,14}$`)

// ValidatePhone checks a digits-only mobile number: 7 to 15 digits, no
// leading zero. Run DigitsOnly on raw input first.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
