package daraja

import "strings"

// NormalizePhone converts a Kenyan phone number to the 254XXXXXXXXX form the
// gateway requires. Non-digits are stripped first, so "+254 712 345 678",
// "0712345678" and "254712345678" all normalize to "254712345678".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "254"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "254" + digits[1:]
	default:
		return "254" + digits
	}
}
