package content_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Sheddybata/sdp.app/internal/content"
	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/i18n"
	"github.com/Sheddybata/sdp.app/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func setupContentService(t *testing.T) (*content.ContentService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := content.NewContentService(db, content.NewContentRepository()).
		WithClock(func() time.Time { return fixedNow })
	return svc, db
}

func plain(s string) *i18n.Text {
	t := i18n.Plain(s)
	return &t
}

func localized(t *testing.T, values map[i18n.Language]string) i18n.Text {
	t.Helper()
	text, err := i18n.Localized(values)
	require.NoError(t, err)
	return text
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.ErrorIs(t, err, content.ErrInvalidContent)
	resp, ok := sharedError.ResolveDomainError(err)
	require.True(t, ok)
	return resp.Fields
}

func TestContentService_CreateEventGates(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       content.EventRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "short title",
			req:       content.EventRequest{Title: i18n.Plain(" A "), EventDate: "2026-04-01"},
			wantField: "title",
			wantMsg:   "Title is required (min 2 characters).",
		},
		{
			name:      "long title",
			req:       content.EventRequest{Title: i18n.Plain(strings.Repeat("t", 201)), EventDate: "2026-04-01"},
			wantField: "title",
			wantMsg:   "Title must be at most 200 characters.",
		},
		{
			name: "long translation",
			req: content.EventRequest{
				Title:     localized(t, map[i18n.Language]string{i18n.English: "Rally", i18n.Hausa: strings.Repeat("h", 201)}),
				EventDate: "2026-04-01",
			},
			wantField: "title",
			wantMsg:   "Title must be at most 200 characters.",
		},
		{
			name:      "long location",
			req:       content.EventRequest{Title: i18n.Plain("Rally"), EventDate: "2026-04-01", Location: plain(strings.Repeat("l", 101))},
			wantField: "location",
			wantMsg:   "Location must be at most 100 characters.",
		},
		{
			name:      "long description",
			req:       content.EventRequest{Title: i18n.Plain("Rally"), EventDate: "2026-04-01", Description: plain(strings.Repeat("d", 501))},
			wantField: "description",
			wantMsg:   "Description must be at most 500 characters.",
		},
		{
			name:      "missing date",
			req:       content.EventRequest{Title: i18n.Plain("Rally")},
			wantField: "eventDate",
			wantMsg:   "Event date is required.",
		},
		{
			name:      "malformed date",
			req:       content.EventRequest{Title: i18n.Plain("Rally"), EventDate: "01/04/2026"},
			wantField: "eventDate",
			wantMsg:   "Please enter a date as YYYY-MM-DD.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(ctx, &tt.req)
			fields := fieldsOf(t, err)
			assert.Equal(t, map[string]string{tt.wantField: tt.wantMsg}, fields)
		})
	}

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events, "nothing is written when a gate fails")
}

func TestContentService_CreateEventAtLimits(t *testing.T) {
	svc, _ := setupContentService(t)

	resp, err := svc.CreateEvent(context.Background(), &content.EventRequest{
		Title:       i18n.Plain(strings.Repeat("t", 200)),
		EventDate:   "2026-04-01",
		Location:    plain("  "),
		Description: plain(strings.Repeat("d", 500)),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.Location, "blank location is stored as absent")
	require.NotNil(t, resp.Description)
	assert.Len(t, resp.Description.English(), 500)
}

func TestContentService_CreateAnnouncement(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	_, err := svc.CreateAnnouncement(ctx, &content.AnnouncementRequest{Text: i18n.Plain(" Hey  ")})
	assert.Equal(t, map[string]string{"text": "Announcement text is required (min 5 characters)."}, fieldsOf(t, err))

	_, err = svc.CreateAnnouncement(ctx, &content.AnnouncementRequest{Text: i18n.Plain(strings.Repeat("x", 501))})
	assert.Equal(t, map[string]string{"text": "Announcement text must be at most 500 characters."}, fieldsOf(t, err))

	resp, err := svc.CreateAnnouncement(ctx, &content.AnnouncementRequest{Text: i18n.Plain("Ward congress holds on Saturday")})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.PublishedAt)
}

func TestContentService_Home(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	create := func(title, date string) {
		_, err := svc.CreateEvent(ctx, &content.EventRequest{Title: i18n.Plain(title), EventDate: date})
		require.NoError(t, err)
	}
	create("yesterday", "2026-03-09")
	create("today", "2026-03-10")
	for i := 12; i >= 1; i-- {
		create(fmt.Sprintf("future %02d", i), fmt.Sprintf("2026-04-%02d", i))
	}

	_, err := svc.CreateEvent(ctx, &content.EventRequest{
		Title:     localized(t, map[i18n.Language]string{i18n.English: "Rally", i18n.Hausa: "Taro"}),
		EventDate: "2026-03-11",
		Location:  plain("Ikeja"),
	})
	require.NoError(t, err)

	announce := func(text, date string) {
		_, err := svc.CreateAnnouncement(ctx, &content.AnnouncementRequest{Text: i18n.Plain(text), PublishedAt: date})
		require.NoError(t, err)
	}
	announce("too old to show", "2026-02-07")
	announce("exactly thirty days", "2026-02-08")
	for i := 1; i <= 5; i++ {
		announce(fmt.Sprintf("notice number %d", i), fmt.Sprintf("2026-03-0%d", i))
	}

	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	home, err := svc.Home(ctx, i18n.Hausa)
	require.NoError(t, err)

	require.Len(t, home.Events, content.HomeEventLimit)
	assert.Equal(t, "today", home.Events[0].Title)
	assert.Equal(t, "Taro", home.Events[1].Title)
	assert.Equal(t, "Ikeja", home.Events[1].Location)
	assert.Equal(t, "future 01", home.Events[2].Title)
	assert.Equal(t, "future 08", home.Events[9].Title)

	require.Len(t, home.Announcements, content.HomeAnnouncementLimit)
	assert.Equal(t, "notice number 5", home.Announcements[0].Text)
	assert.Equal(t, "notice number 1", home.Announcements[4].Text)

	home, err = svc.Home(ctx, i18n.Yoruba)
	require.NoError(t, err)
	assert.Equal(t, "Rally", home.Events[1].Title, "missing translation falls back to English")
}

func TestContentService_HomeWindowIncludesThirtyDays(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	for _, date := range []string{"2026-02-07", "2026-02-08"} {
		_, err := svc.CreateAnnouncement(ctx, &content.AnnouncementRequest{Text: i18n.Plain("notice " + date), PublishedAt: date})
		require.NoError(t, err)
	}

	home, err := svc.Home(ctx, i18n.English)
	require.NoError(t, err)
	require.Len(t, home.Announcements, 1)
	assert.Equal(t, "2026-02-08", home.Announcements[0].PublishedAt)
	assert.Empty(t, home.Events)
}

func TestContentService_DeleteIsUnconditional(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	resp, err := svc.CreateEvent(ctx, &content.EventRequest{Title: i18n.Plain("Rally"), EventDate: "2026-04-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, resp.ID))
	require.NoError(t, svc.DeleteEvent(ctx, resp.ID))
	require.NoError(t, svc.DeleteAnnouncement(ctx, "5f0c2a3e-8d1b-4c6f-9e2a-1b3c4d5e6f70"))

	events, announcements, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, events)
	assert.Zero(t, announcements)
}

func TestContentService_Unavailable(t *testing.T) {
	svc, db := setupContentService(t)
	testutil.CloseTestDB(t, db)
	ctx := context.Background()

	_, err := svc.Home(ctx, i18n.English)
	assert.ErrorIs(t, err, content.ErrContentUnavailable)

	_, err = svc.CreateAnnouncement(ctx, &content.AnnouncementRequest{Text: i18n.Plain("Ward congress")})
	assert.ErrorIs(t, err, content.ErrContentUnavailable)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, "5f0c2a3e-8d1b-4c6f-9e2a-1b3c4d5e6f70"), content.ErrContentUnavailable)
}
