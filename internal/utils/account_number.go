package utils

import "strings"

// MaskAccountNumber hides all but the last four digits, e.g. "****5678".
func MaskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
