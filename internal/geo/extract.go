package geo

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Extract is the ward-list format produced from INEC PDFs:
// {"LAGOS STATE": {"Ikeja": ["Anifowoshe", ...]}}.
type Extract map[string]map[string][]string

var (
	stateSuffix    = regexp.MustCompile(`(?i)\s+STATE$`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9-]`)
	repeatedHyphen = regexp.MustCompile(`-+`)
)

// ConvertExtract turns an Extract into states sorted by name. The trailing
// " STATE" is dropped from state keys, ids are slugs and ward ids are
// "<lga id>-w-<index>". States without LGAs are skipped. LGAs are sorted by
// name because JSON object order is not preserved.
func ConvertExtract(byState Extract) []State {
	col := collate.New(language.English, collate.Loose)

	states := make([]State, 0, len(byState))
	for stateKey, lgaRecord := range byState {
		if len(lgaRecord) == 0 {
			continue
		}
		bare := stateSuffix.ReplaceAllString(strings.TrimSpace(stateKey), "")

		lgas := make([]LGA, 0, len(lgaRecord))
		for lgaName, wardNames := range lgaRecord {
			lgaID := Slug(lgaName)
			wards := make([]Ward, 0, len(wardNames))
			for i, name := range wardNames {
				wards = append(wards, Ward{ID: fmt.Sprintf("%s-w-%d", lgaID, i), Name: strings.TrimSpace(name)})
			}
			lgas = append(lgas, LGA{ID: lgaID, Name: strings.TrimSpace(lgaName), Wards: wards})
		}
		sort.SliceStable(lgas, func(i, j int) bool {
			return col.CompareString(lgas[i].Name, lgas[j].Name) < 0
		})

		states = append(states, State{ID: Slug(bare), Name: TitleCase(bare), LGAs: lgas})
	}

	sort.SliceStable(states, func(i, j int) bool {
		return col.CompareString(states[i].Name, states[j].Name) < 0
	})
	return states
}

// ToExtract is the inverse of ConvertExtract, keyed by upper-cased state name.
func ToExtract(states []State) Extract {
	out := make(Extract, len(states))
	for _, s := range states {
		lgas := make(map[string][]string, len(s.LGAs))
		for _, l := range s.LGAs {
			names := make([]string, len(l.Wards))
			for i, w := range l.Wards {
				names[i] = w.Name
			}
			lgas[l.Name] = names
		}
		out[strings.ToUpper(s.Name)] = lgas
	}
	return out
}

// Slug lower-cases s, hyphenates whitespace and drops everything outside [a-z0-9-].
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = repeatedHyphen.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return strings.ToLower(whitespaceRun.ReplaceAllString(s, "-"))
	}
	return slug
}

// TitleCase upper-cases the first character of each word and lower-cases the rest.
// A word starts at a letter, digit or underscore and runs to the next space.
func TitleCase(s string) string {
	var b strings.Builder
	inWord := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case unicode.IsSpace(r):
			inWord = false
			b.WriteRune(r)
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			inWord = true
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
