package content

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Sheddybata/sdp.app/internal/model"
	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/i18n"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Home page limits.
const (
	HomeEventLimit        = 10
	HomeAnnouncementLimit = 5
	AnnouncementWindow    = 30 * 24 * time.Hour
)

// Field length limits, in characters, applied to every language value.
const (
	titleMinLength       = 2
	titleMaxLength       = 200
	locationMaxLength    = 100
	descriptionMaxLength = 500
	textMinLength        = 5
	textMaxLength        = 500
)

type ContentService struct {
	db                *gorm.DB
	contentRepository *ContentRepository
	now               func() time.Time
}

func NewContentService(db *gorm.DB, contentRepository *ContentRepository) *ContentService {
	return &ContentService{
		db:                db,
		contentRepository: contentRepository,
		now:               time.Now,
	}
}

// WithClock replaces the clock used for "today".
func (s *ContentService) WithClock(now func() time.Time) *ContentService {
	s.now = now
	return s
}

// Home loads upcoming events and recent announcements in parallel and
// resolves them to lang, falling back to English.
func (s *ContentService) Home(ctx context.Context, lang i18n.Language) (*HomeResponse, error) {
	today := s.now()
	var (
		events        []model.Event
		announcements []model.Announcement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.contentRepository.ListUpcomingEvents(gctx, s.db, today.Format(model.DateLayout), HomeEventLimit)
		return err
	})
	g.Go(func() error {
		var err error
		since := today.Add(-AnnouncementWindow).Format(model.DateLayout)
		announcements, err = s.contentRepository.ListRecentAnnouncements(gctx, s.db, since, HomeAnnouncementLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.unavailable(ctx, "load home content", err)
	}

	resp := &HomeResponse{
		Language:      lang,
		Events:        make([]HomeEvent, 0, len(events)),
		Announcements: make([]HomeAnnouncement, 0, len(announcements)),
	}
	for i := range events {
		resp.Events = append(resp.Events, newHomeEvent(&events[i], lang))
	}
	for i := range announcements {
		resp.Announcements = append(resp.Announcements, newHomeAnnouncement(&announcements[i], lang))
	}
	return resp, nil
}

func (s *ContentService) ListEvents(ctx context.Context) ([]EventResponse, error) {
	events, err := s.contentRepository.ListEvents(ctx, s.db)
	if err != nil {
		return nil, s.unavailable(ctx, "list events", err)
	}
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, NewEventResponse(&events[i]))
	}
	return out, nil
}

// CreateEvent checks the length gates before anything is written.
func (s *ContentService) CreateEvent(ctx context.Context, req *EventRequest) (*EventResponse, error) {
	title := trimText(req.Title)
	location := trimOptionalText(req.Location)
	description := trimOptionalText(req.Description)
	eventDate := strings.TrimSpace(req.EventDate)

	fields := map[string]string{}
	checkText(fields, "title", &title, titleMinLength, titleMaxLength,
		"Title is required (min 2 characters).", "Title must be at most 200 characters.")
	checkText(fields, "location", location, 0, locationMaxLength,
		"", "Location must be at most 100 characters.")
	checkText(fields, "description", description, 0, descriptionMaxLength,
		"", "Description must be at most 500 characters.")
	if eventDate == "" {
		fields["eventDate"] = "Event date is required."
	} else if !validDate(eventDate) {
		fields["eventDate"] = "Please enter a date as YYYY-MM-DD."
	}
	if len(fields) > 0 {
		return nil, sharedError.NewFieldsError(ErrInvalidContent, fields)
	}

	event := &model.Event{EventDate: eventDate}
	var err error
	if event.Title, err = encodeText(title); err != nil {
		return nil, fmt.Errorf("encode title: %w", err)
	}
	if event.Location, err = encodeOptionalText(location); err != nil {
		return nil, fmt.Errorf("encode location: %w", err)
	}
	if event.Description, err = encodeOptionalText(description); err != nil {
		return nil, fmt.Errorf("encode description: %w", err)
	}

	if err := s.contentRepository.CreateEvent(ctx, s.db, event); err != nil {
		return nil, s.unavailable(ctx, "create event", err)
	}

	logger.FromContext(ctx).Info("event created", "event_id", event.ID, "event_date", event.EventDate)
	resp := NewEventResponse(event)
	return &resp, nil
}

// DeleteEvent removes an event. A missing id is not an error.
func (s *ContentService) DeleteEvent(ctx context.Context, id string) error {
	deleted, err := s.contentRepository.DeleteEvent(ctx, s.db, id)
	if err != nil {
		return s.unavailable(ctx, "delete event", err)
	}
	logger.FromContext(ctx).Info("event deleted", "event_id", id, "rows", deleted)
	return nil
}

func (s *ContentService) ListAnnouncements(ctx context.Context) ([]AnnouncementResponse, error) {
	announcements, err := s.contentRepository.ListAnnouncements(ctx, s.db)
	if err != nil {
		return nil, s.unavailable(ctx, "list announcements", err)
	}
	out := make([]AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		out = append(out, NewAnnouncementResponse(&announcements[i]))
	}
	return out, nil
}

// CreateAnnouncement checks the length gates and defaults publishedAt to today.
func (s *ContentService) CreateAnnouncement(ctx context.Context, req *AnnouncementRequest) (*AnnouncementResponse, error) {
	text := trimText(req.Text)
	publishedAt := strings.TrimSpace(req.PublishedAt)

	fields := map[string]string{}
	checkText(fields, "text", &text, textMinLength, textMaxLength,
		"Announcement text is required (min 5 characters).", "Announcement text must be at most 500 characters.")
	if publishedAt == "" {
		publishedAt = s.now().Format(model.DateLayout)
	} else if !validDate(publishedAt) {
		fields["publishedAt"] = "Please enter a date as YYYY-MM-DD."
	}
	if len(fields) > 0 {
		return nil, sharedError.NewFieldsError(ErrInvalidContent, fields)
	}

	encoded, err := encodeText(text)
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}
	announcement := &model.Announcement{Text: encoded, PublishedAt: publishedAt}

	if err := s.contentRepository.CreateAnnouncement(ctx, s.db, announcement); err != nil {
		return nil, s.unavailable(ctx, "create announcement", err)
	}

	logger.FromContext(ctx).Info("announcement created", "announcement_id", announcement.ID, "published_at", publishedAt)
	resp := NewAnnouncementResponse(announcement)
	return &resp, nil
}

// DeleteAnnouncement removes an announcement. A missing id is not an error.
func (s *ContentService) DeleteAnnouncement(ctx context.Context, id string) error {
	deleted, err := s.contentRepository.DeleteAnnouncement(ctx, s.db, id)
	if err != nil {
		return s.unavailable(ctx, "delete announcement", err)
	}
	logger.FromContext(ctx).Info("announcement deleted", "announcement_id", id, "rows", deleted)
	return nil
}

// Counts reports how many events and announcements exist.
func (s *ContentService) Counts(ctx context.Context) (events, announcements int64, err error) {
	if events, err = s.contentRepository.CountEvents(ctx, s.db); err != nil {
		return 0, 0, s.unavailable(ctx, "count events", err)
	}
	if announcements, err = s.contentRepository.CountAnnouncements(ctx, s.db); err != nil {
		return 0, 0, s.unavailable(ctx, "count announcements", err)
	}
	return events, announcements, nil
}

func (s *ContentService) unavailable(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(op+" failed", "error", err)
	return fmt.Errorf("%s: %w: %w", op, ErrContentUnavailable, err)
}

func trimText(t i18n.Text) i18n.Text {
	if t.IsLocalized() {
		return t
	}
	return i18n.Plain(strings.TrimSpace(t.English()))
}

// trimOptionalText treats a blank plain value as absent.
func trimOptionalText(t *i18n.Text) *i18n.Text {
	if t == nil {
		return nil
	}
	trimmed := trimText(*t)
	if !trimmed.IsLocalized() && trimmed.English() == "" {
		return nil
	}
	return &trimmed
}

// checkText records the first failing gate for field. A nil text only
// fails when min > 0.
func checkText(fields map[string]string, field string, t *i18n.Text, min, max int, minMsg, maxMsg string) {
	if t == nil {
		if min > 0 {
			fields[field] = minMsg
		}
		return
	}
	if utf8.RuneCountInString(t.English()) < min {
		fields[field] = minMsg
		return
	}
	for _, v := range t.Values() {
		n := utf8.RuneCountInString(v)
		if n < min {
			fields[field] = minMsg
			return
		}
		if n > max {
			fields[field] = maxMsg
			return
		}
	}
}

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}
