package auth

import "strings"

// CountryCode is prefixed to every canonical phone number.
const CountryCode = "254"

// NormalizePhone strips everything but ASCII digits from raw and rewrites the
// result into the 254XXXXXXXXX form. A leading trunk 0 is replaced by the
// country code and a bare subscriber number gets it prepended.
//
// The result is empty when raw carries no digits; callers must reject it.
func NormalizePhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "0"):
		return CountryCode + digits[1:]
	case !strings.HasPrefix(digits, CountryCode):
		return CountryCode + digits
	}
	return digits
}
