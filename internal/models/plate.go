package models

import "strings"

// NormalizePlate uppercases a license plate and strips everything that is
// not an ASCII letter or digit, so "abc-1234" and "ABC 1234" compare equal.
func NormalizePlate(plate string) string {
	upper := strings.ToUpper(plate)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
