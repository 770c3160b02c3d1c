package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusCheck is a client heartbeat record.
type StatusCheck struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	Timestamp  time.Time `gorm:"index;not null" json:"timestamp"`
}

func (s *StatusCheck) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now().UTC()
	}
	return nil
}
