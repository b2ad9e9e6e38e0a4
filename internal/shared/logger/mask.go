package logger

import "strings"

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// MaskVoterID keeps the last four characters.
// Example: 90F5B0A1C2D3E4F56789 -> ****************6789
func MaskVoterID(voterID string) string {
	return maskTail(voterID, 4)
}

// MaskPhone keeps the last three digits.
// Example: +2348031234567 -> ***********567
func MaskPhone(phone string) string {
	return maskTail(strings.TrimSpace(phone), 3)
}

func maskTail(s string, keep int) string {
	runes := []rune(s)
	if len(runes) <= keep {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-keep) + string(runes[len(runes)-keep:])
}
