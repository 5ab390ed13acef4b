package validators

import "regexp"

// International format: optional +, optional country code 1, 9-15 digits.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

func IsValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}
