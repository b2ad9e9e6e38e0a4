package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseEntity carries the string UUID primary key and GORM-managed timestamps
// shared by every table.
type BaseEntity struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// BeforeCreate assigns a random UUID when the caller did not set one.
func (b *BaseEntity) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// DateLayout is the ISO calendar date format used for date-only columns.
const DateLayout = "2006-01-02"
