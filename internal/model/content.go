package model

import "gorm.io/datatypes"

// Event is a dated party event shown on the public home page.
// Title, Description and Location hold either a JSON string or a
// language-code object with mandatory "en".
type Event struct {
	BaseEntity

	Title       datatypes.JSON `gorm:"column:title;not null"`
	EventDate   string         `gorm:"column:event_date;size:10;not null;index"`
	Location    datatypes.JSON `gorm:"column:location"`
	Description datatypes.JSON `gorm:"column:description"`
}

func (*Event) TableName() string {
	return "events"
}

// Announcement is a dated notice shown on the public home page.
type Announcement struct {
	BaseEntity

	Text        datatypes.JSON `gorm:"column:text;not null"`
	PublishedAt string         `gorm:"column:published_at;size:10;not null;index"`
}

func (*Announcement) TableName() string {
	return "announcements"
}
