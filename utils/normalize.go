package utils

import (
	"strings"
	"unicode"
)

// NormalizeAadhaar strips non-digits and truncates to 12 characters.
func NormalizeAadhaar(s string) string {
	return keepDigits(s, 12)
}

// NormalizeMobile strips non-digits and truncates to 10 characters.
func NormalizeMobile(s string) string {
	return keepDigits(s, 10)
}

// NormalizePan uppercases, strips non-alphanumerics and truncates to 10.
func NormalizePan(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if unicode.IsDigit(r) || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
		if b.Len() == 10 {
			break
		}
	}
	return b.String()
}

func keepDigits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
		if b.Len() == max {
			break
		}
	}
	return b.String()
}
