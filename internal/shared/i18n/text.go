package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEnglishRequired = errors.New("i18n: English text is required")
	ErrUnknownLanguage = errors.New("i18n: unsupported language")
)

// Text is either a plain string or a per-language map with mandatory English.
// The zero value is an empty plain text.
type Text struct {
	plain     string
	localized map[Language]string
}

// Plain returns a text that reads the same in every language.
func Plain(s string) Text {
	return Text{plain: s}
}

// Localized returns a text with per-language values. Empty values are dropped.
func Localized(values map[Language]string) (Text, error) {
	m := make(map[Language]string, len(values))
	for lang, v := range values {
		if !lang.Valid() {
			return Text{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
		}
		if v = strings.TrimSpace(v); v != "" {
			m[lang] = v
		}
	}
	if m[English] == "" {
		return Text{}, ErrEnglishRequired
	}
	return Text{localized: m}, nil
}

// IsLocalized reports whether t carries a per-language map.
func (t Text) IsLocalized() bool {
	return t.localized != nil
}

// Resolve returns the value for lang, then fallback, then English.
func (t Text) Resolve(lang, fallback Language) string {
	if t.localized == nil {
		return t.plain
	}
	if v, ok := t.localized[lang]; ok {
		return v
	}
	if v, ok := t.localized[fallback]; ok {
		return v
	}
	return t.localized[English]
}

// English is shorthand for Resolve(English, English).
func (t Text) English() string {
	return t.Resolve(English, English)
}

// Values returns every stored value keyed by language. A plain text is
// reported under English.
func (t Text) Values() map[Language]string {
	if t.localized == nil {
		return map[Language]string{English: t.plain}
	}
	out := make(map[Language]string, len(t.localized))
	for k, v := range t.localized {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes a plain text as a JSON string and a localized one as an object.
func (t Text) MarshalJSON() ([]byte, error) {
	if t.localized == nil {
		return json.Marshal(t.plain)
	}
	return json.Marshal(t.localized)
}

// UnmarshalJSON accepts either a JSON string or an object of language codes.
func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Plain(s)
		return nil
	}

	var m map[Language]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("i18n: text must be a string or a language map: %w", err)
	}
	localized, err := Localized(m)
	if err != nil {
		return err
	}
	*t = localized
	return nil
}
