// Package i18n holds the portal's language codes and the multilingual text
// variant used by events and announcements.
package i18n

import "strings"

type Language string

const (
	English  Language = "en"
	Hausa    Language = "ha"
	Fulfulde Language = "ff"
	Igbo     Language = "ig"
	Yoruba   Language = "yo"
)

// Default is the mandatory fallback language.
const Default = English

var supported = []Language{English, Hausa, Fulfulde, Igbo, Yoruba}

// Languages returns the supported languages, English first.
func Languages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

func (l Language) Valid() bool {
	for _, s := range supported {
		if l == s {
			return true
		}
	}
	return false
}

// ParseLanguage maps a code such as "ha" or "HA-ng" to a supported language,
// falling back to English.
func ParseLanguage(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	if l := Language(code); l.Valid() {
		return l
	}
	return Default
}
