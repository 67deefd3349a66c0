package whatsapp

import (
	"strings"
)

// NormalizePhone returns the digit-only international form of a Bangladeshi
// number, or "" when nothing usable remains.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	digits = strings.TrimPrefix(digits, "00")
	switch {
	case len(digits) == 11 && strings.HasPrefix(digits, "01"):
		digits = "88" + digits
	case len(digits) == 10 && strings.HasPrefix(digits, "1"):
		digits = "880" + digits
	}
	return digits
}

// ParseRecipients splits a comma separated list, normalizing each number and
// dropping empties and duplicates.
func ParseRecipients(csv string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, part := range strings.Split(csv, ",") {
		phone := NormalizePhone(part)
		if phone == "" {
			continue
		}
		if _, ok := seen[phone]; ok {
			continue
		}
		seen[phone] = struct{}{}
		out = append(out, phone)
	}
	return out
}
