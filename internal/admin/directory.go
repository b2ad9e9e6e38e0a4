package admin

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the number of members shown per directory page.
const PageSize = 50

// Filter narrows the member directory. Empty fields match everything.
// DateFrom and DateTo are inclusive ISO dates compared against the join date.
type Filter struct {
	Search   string `form:"search" json:"search,omitempty"`
	State    string `form:"state" json:"state,omitempty"`
	LGA      string `form:"lga" json:"lga,omitempty"`
	Ward     string `form:"ward" json:"ward,omitempty"`
	DateFrom string `form:"dateFrom" json:"dateFrom,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"dateTo" json:"dateTo,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (f Filter) normalized() Filter {
	return Filter{
		Search:   strings.TrimSpace(f.Search),
		State:    strings.TrimSpace(f.State),
		LGA:      strings.TrimSpace(f.LGA),
		Ward:     strings.TrimSpace(f.Ward),
		DateFrom: strings.TrimSpace(f.DateFrom),
		DateTo:   strings.TrimSpace(f.DateTo),
	}
}

var filterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:sdp:admin:member-filter"))

// Token identifies the filter. Two filters share a token only when every
// field matches after trimming.
func (f Filter) Token() string {
	n := f.normalized()
	key := strings.Join([]string{n.Search, n.State, n.LGA, n.Ward, n.DateFrom, n.DateTo}, "\x1f")
	return uuid.NewSHA1(filterNamespace, []byte(key)).String()
}

// Match reports whether r passes every non-empty criterion.
func (f Filter) Match(r *member.Response) bool {
	if q := strings.ToLower(f.Search); q != "" {
		hit := strings.Contains(strings.ToLower(r.Surname), q) ||
			strings.Contains(strings.ToLower(r.FirstName), q) ||
			strings.Contains(strings.ToLower(r.VoterRegistrationNumber), q) ||
			strings.Contains(strings.ToLower(r.VoterIDDisplay), q) ||
			strings.Contains(r.Phone, q)
		if !hit {
			return false
		}
	}
	if f.State != "" && r.State != f.State {
		return false
	}
	if f.LGA != "" && r.LGA != f.LGA {
		return false
	}
	if f.Ward != "" && r.Ward != f.Ward {
		return false
	}
	if f.DateFrom != "" && r.JoinDate < f.DateFrom {
		return false
	}
	if f.DateTo != "" && r.JoinDate > f.DateTo {
		return false
	}
	return true
}

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Sort orders the directory by one member field, keyed by its JSON name.
type Sort struct {
	Key string  `json:"key"`
	Dir SortDir `json:"dir"`
}

// DefaultSort lists the newest registrations first.
var DefaultSort = Sort{Key: "createdAt", Dir: SortDesc}

const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sortFields maps sortable keys to their string value. An empty value is
// treated as missing.
var sortFields = map[string]func(r *member.Response) string{
	"id":                      func(r *member.Response) string { return r.ID },
	"membershipId":            func(r *member.Response) string { return r.MembershipID },
	"title":                   func(r *member.Response) string { return r.Title },
	"surname":                 func(r *member.Response) string { return r.Surname },
	"firstName":               func(r *member.Response) string { return r.FirstName },
	"otherNames":              func(r *member.Response) string { return r.OtherNames },
	"phone":                   func(r *member.Response) string { return r.Phone },
	"email":                   func(r *member.Response) string { return r.Email },
	"dateOfBirth":             func(r *member.Response) string { return r.DateOfBirth },
	"gender":                  func(r *member.Response) string { return r.Gender },
	"joinDate":                func(r *member.Response) string { return r.JoinDate },
	"state":                   func(r *member.Response) string { return r.State },
	"stateName":               func(r *member.Response) string { return r.StateName },
	"lga":                     func(r *member.Response) string { return r.LGA },
	"lgaName":                 func(r *member.Response) string { return r.LGAName },
	"ward":                    func(r *member.Response) string { return r.Ward },
	"wardName":                func(r *member.Response) string { return r.WardName },
	"voterRegistrationNumber": func(r *member.Response) string { return r.VoterRegistrationNumber },
	"registeredBy":            func(r *member.Response) string { return r.RegisteredBy },
	"createdAt": func(r *member.Response) string {
		if r.CreatedAt.IsZero() {
			return ""
		}
		return r.CreatedAt.UTC().Format(createdAtLayout)
	},
}

// ParseSort validates a requested sort. An empty key selects DefaultSort;
// a key without a direction sorts ascending.
func ParseSort(key, dir string) (Sort, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return DefaultSort, nil
	}
	if _, ok := sortFields[key]; !ok {
		return Sort{}, fmt.Errorf("sort by %q: %w", key, ErrInvalidQuery)
	}

	switch SortDir(strings.ToLower(strings.TrimSpace(dir))) {
	case "", SortAsc:
		return Sort{Key: key, Dir: SortAsc}, nil
	case SortDesc:
		return Sort{Key: key, Dir: SortDesc}, nil
	default:
		return Sort{}, fmt.Errorf("sort direction %q: %w", dir, ErrInvalidQuery)
	}
}

// Apply sorts rows in place. Comparison is English, numeric-aware and
// stable; missing values go last ascending and first descending.
func (s Sort) Apply(rows []member.Response) {
	value, ok := sortFields[s.Key]
	if !ok {
		value = sortFields[DefaultSort.Key]
	}
	// A collator keeps internal buffers and must not be shared across goroutines.
	col := collate.New(language.English, collate.Numeric)
	desc := s.Dir == SortDesc

	slices.SortStableFunc(rows, func(a, b member.Response) int {
		va, vb := value(&a), value(&b)
		switch {
		case va == "" && vb == "":
			return 0
		case va == "":
			if desc {
				return -1
			}
			return 1
		case vb == "":
			if desc {
				return 1
			}
			return -1
		}
		c := col.CompareString(va, vb)
		if desc {
			return -c
		}
		return c
	})
}

// Page is one directory page together with the state needed to request
// the next one.
type Page struct {
	Members     []member.Response `json:"members"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"totalPages"`
	Total       int               `json:"total"`
	PageSize    int               `json:"pageSize"`
	Filter      Filter            `json:"filter"`
	Sort        Sort              `json:"sort"`
	FilterToken string            `json:"filterToken"`
}

// Browser is the directory view state. Values are immutable; every With
// method returns an updated copy.
type Browser struct {
	filter Filter
	sort   Sort
	page   int
}

func NewBrowser() Browser {
	return Browser{sort: DefaultSort, page: 1}
}

// RestoreBrowser rebuilds a client's view state. page is honored only when
// token is the token of filter, so a changed filter always lands on page 1.
func RestoreBrowser(filter Filter, sort Sort, page int, token string) Browser {
	b := NewBrowser().WithSort(sort)
	b.filter = filter.normalized()
	if token != "" && token == b.filter.Token() {
		b = b.WithPage(page)
	}
	return b
}

func (b Browser) Filter() Filter { return b.filter }

func (b Browser) Sort() Sort { return b.sort }

func (b Browser) Page() int { return b.page }

// WithFilter applies a filter. Any change resets the page to 1.
func (b Browser) WithFilter(f Filter) Browser {
	f = f.normalized()
	if f != b.filter {
		b.filter = f
		b.page = 1
	}
	return b
}

func (b Browser) WithSort(s Sort) Browser {
	if s.Key == "" {
		s = DefaultSort
	}
	b.sort = s
	return b
}

// WithPage selects a page. The upper bound is applied by View once the
// filtered count is known.
func (b Browser) WithPage(page int) Browser {
	b.page = max(page, 1)
	return b
}

// View filters, sorts and slices rows. rows is not modified.
func (b Browser) View(rows []member.Response) Page {
	matched := Select(rows, b.filter, b.sort)

	totalPages := (len(matched) + PageSize - 1) / PageSize
	page := min(b.page, max(totalPages, 1))
	start := min((page-1)*PageSize, len(matched))
	end := min(start+PageSize, len(matched))

	return Page{
		Members:     matched[start:end],
		Page:        page,
		TotalPages:  totalPages,
		Total:       len(matched),
		PageSize:    PageSize,
		Filter:      b.filter,
		Sort:        b.sort,
		FilterToken: b.filter.Token(),
	}
}

// Select returns the rows matching f in s order. rows is not modified.
func Select(rows []member.Response, f Filter, s Sort) []member.Response {
	f = f.normalized()
	matched := make([]member.Response, 0, len(rows))
	for i := range rows {
		if f.Match(&rows[i]) {
			matched = append(matched, rows[i])
		}
	}
	s.Apply(matched)
	return matched
}

// ExportFilename names an export file by its generation date.
func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("SDP-Members-%s.%s", now.UTC().Format("2006-01-02"), ext)
}
