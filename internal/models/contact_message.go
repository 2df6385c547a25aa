package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact message statuses. The status column is a free-form label; these
// are the values the admin UI knows about.
const (
	MessageNew      = "new"
	MessageRead     = "read"
	MessageReplied  = "replied"
	MessageArchived = "archived"
)

type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Company   *string   `gorm:"size:255" json:"company"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `gorm:"size:20;default:new" json:"status"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
