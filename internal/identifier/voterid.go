// Package identifier implements the voter registration number and
// membership ID formats shared by enrollment, verification and exports.
package identifier

import (
	"regexp"
	"strings"
	"unicode"
)

// VoterIDLength is the length of a voter registration number without whitespace.
const VoterIDLength = 20

const voterIDGroup = 4

var voterIDRegex = regexp.MustCompile(`^[A-Za-z0-9]{20}$`)

// StripWhitespace removes every Unicode whitespace character.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeVoterID strips all whitespace and truncates to VoterIDLength characters.
// It never fails.
func NormalizeVoterID(input string) string {
	raw := []rune(StripWhitespace(input))
	if len(raw) > VoterIDLength {
		raw = raw[:VoterIDLength]
	}
	return string(raw)
}

// CanonicalVoterID is the stored and looked-up form: normalized and upper-cased,
// so uniqueness holds regardless of input case.
func CanonicalVoterID(input string) string {
	return strings.ToUpper(NormalizeVoterID(input))
}

// ValidVoterID reports whether v is exactly 20 ASCII letters or digits.
func ValidVoterID(v string) bool {
	return voterIDRegex.MatchString(v)
}

// FormatVoterID groups a voter ID into blocks of four separated by single
// spaces, e.g. "90F5 B0A1 C2D3 E4F5 6789". Whitespace in the input is ignored.
func FormatVoterID(v string) string {
	raw := []rune(StripWhitespace(v))

	var b strings.Builder
	for i, r := range raw {
		if i > 0 && i%voterIDGroup == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
