package content

import (
	"context"

	"github.com/Sheddybata/sdp.app/internal/model"
	"gorm.io/gorm"
)

type ContentRepository struct{}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{}
}

func (r *ContentRepository) CreateEvent(ctx context.Context, db *gorm.DB, event *model.Event) error {
	return db.WithContext(ctx).Create(event).Error
}

// ListUpcomingEvents returns events dated on or after from, soonest first.
func (r *ContentRepository) ListUpcomingEvents(ctx context.Context, db *gorm.DB, from string, limit int) ([]model.Event, error) {
	var events []model.Event
	err := db.WithContext(ctx).
		Where("event_date >= ?", from).
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// ListEvents returns every event, latest date first.
func (r *ContentRepository) ListEvents(ctx context.Context, db *gorm.DB) ([]model.Event, error) {
	var events []model.Event
	err := db.WithContext(ctx).Order("event_date DESC").Find(&events).Error
	return events, err
}

func (r *ContentRepository) DeleteEvent(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Delete(&model.Event{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *ContentRepository) CountEvents(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Event{}).Count(&count).Error
	return count, err
}

func (r *ContentRepository) CreateAnnouncement(ctx context.Context, db *gorm.DB, announcement *model.Announcement) error {
	return db.WithContext(ctx).Create(announcement).Error
}

// ListRecentAnnouncements returns announcements published on or after since, newest first.
func (r *ContentRepository) ListRecentAnnouncements(ctx context.Context, db *gorm.DB, since string, limit int) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := db.WithContext(ctx).
		Where("published_at >= ?", since).
		Order("published_at DESC").
		Limit(limit).
		Find(&announcements).Error
	return announcements, err
}

// ListAnnouncements returns every announcement, newest first.
func (r *ContentRepository) ListAnnouncements(ctx context.Context, db *gorm.DB) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := db.WithContext(ctx).Order("published_at DESC").Find(&announcements).Error
	return announcements, err
}

func (r *ContentRepository) DeleteAnnouncement(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Delete(&model.Announcement{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

func (r *ContentRepository) CountAnnouncements(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Announcement{}).Count(&count).Error
	return count, err
}
