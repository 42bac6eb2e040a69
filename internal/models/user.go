package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User holds the per-caller running search counter.
type User struct {
	CallerID    int64     `gorm:"column:caller_id;primaryKey;autoIncrement:false" json:"caller_id"`
	Username    string    `gorm:"size:255" json:"username,omitempty"`
	SearchCount int64     `gorm:"not null;default:0" json:"search_count"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	LastActive  time.Time `gorm:"not null" json:"last_active"`
}

// Search is one row of the append-only query log.
type Search struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CallerID  int64     `gorm:"not null;index" json:"caller_id"`
	QueryText string    `gorm:"type:text;not null" json:"query_text"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (s *Search) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
