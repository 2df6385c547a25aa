package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSettings is a singleton: at most one row is ever meaningfully used.
// It is materialized lazily on first read or write.
type SiteSettings struct {
	ID                 string  `gorm:"primaryKey;size:36" json:"id"`
	HeroTitle          string  `gorm:"size:255" json:"heroTitle"`
	HeroSubtitle       string  `gorm:"size:255" json:"heroSubtitle"`
	HeroImage          string  `gorm:"size:500" json:"heroImage"`
	MissionTitle       string  `gorm:"size:255" json:"missionTitle"`
	MissionDescription string  `gorm:"type:text" json:"missionDescription"`
	ContactPhone       string  `gorm:"size:50" json:"contactPhone"`
	ContactEmail       *string `gorm:"size:255" json:"contactEmail"`
}

func (s *SiteSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
