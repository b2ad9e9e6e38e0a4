package content

import (
	"encoding/json"
	"time"

	"github.com/Sheddybata/sdp.app/internal/model"
	"github.com/Sheddybata/sdp.app/internal/shared/i18n"
	"gorm.io/datatypes"
)

type EventRequest struct {
	Title       i18n.Text  `json:"title"`
	EventDate   string     `json:"eventDate"`
	Location    *i18n.Text `json:"location"`
	Description *i18n.Text `json:"description"`
}

type AnnouncementRequest struct {
	Text        i18n.Text `json:"text"`
	PublishedAt string    `json:"publishedAt"`
}

type HomeQuery struct {
	Lang string `form:"lang"`
}

// EventResponse is the admin view of an event with every language value.
type EventResponse struct {
	ID          string     `json:"id"`
	Title       i18n.Text  `json:"title"`
	EventDate   string     `json:"eventDate"`
	Location    *i18n.Text `json:"location,omitempty"`
	Description *i18n.Text `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type AnnouncementResponse struct {
	ID          string    `json:"id"`
	Text        i18n.Text `json:"text"`
	PublishedAt string    `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HomeEvent is an event resolved to one language.
type HomeEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	EventDate   string `json:"eventDate"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

type HomeAnnouncement struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	PublishedAt string `json:"publishedAt"`
}

type HomeResponse struct {
	Language      i18n.Language      `json:"language"`
	Events        []HomeEvent        `json:"events"`
	Announcements []HomeAnnouncement `json:"announcements"`
}

func NewEventResponse(e *model.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       decodeText(e.Title),
		EventDate:   e.EventDate,
		Location:    decodeOptionalText(e.Location),
		Description: decodeOptionalText(e.Description),
		CreatedAt:   e.CreatedAt,
	}
}

func NewAnnouncementResponse(a *model.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Text:        decodeText(a.Text),
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func newHomeEvent(e *model.Event, lang i18n.Language) HomeEvent {
	resp := HomeEvent{
		ID:        e.ID,
		Title:     decodeText(e.Title).Resolve(lang, i18n.English),
		EventDate: e.EventDate,
	}
	if loc := decodeOptionalText(e.Location); loc != nil {
		resp.Location = loc.Resolve(lang, i18n.English)
	}
	if desc := decodeOptionalText(e.Description); desc != nil {
		resp.Description = desc.Resolve(lang, i18n.English)
	}
	return resp
}

func newHomeAnnouncement(a *model.Announcement, lang i18n.Language) HomeAnnouncement {
	return HomeAnnouncement{
		ID:          a.ID,
		Text:        decodeText(a.Text).Resolve(lang, i18n.English),
		PublishedAt: a.PublishedAt,
	}
}

func encodeText(t i18n.Text) (datatypes.JSON, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func encodeOptionalText(t *i18n.Text) (datatypes.JSON, error) {
	if t == nil {
		return nil, nil
	}
	return encodeText(*t)
}

// decodeText reads a stored text. Rows written outside the portal may hold
// malformed JSON; those read as an empty text.
func decodeText(raw datatypes.JSON) i18n.Text {
	var t i18n.Text
	if len(raw) == 0 {
		return t
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return i18n.Plain("")
	}
	return t
}

func decodeOptionalText(raw datatypes.JSON) *i18n.Text {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	t := decodeText(raw)
	return &t
}
