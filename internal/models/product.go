package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Species      string    `gorm:"size:255;not null" json:"species"`
	Dimensions   string    `gorm:"size:255;not null" json:"dimensions"`
	Origin       string    `gorm:"size:255;not null" json:"origin"`
	Story        string    `gorm:"type:text;not null" json:"story"`
	Image        string    `gorm:"size:500;not null" json:"image"`
	Category     string    `gorm:"size:100;not null" json:"category"`
	DisplayOrder int       `gorm:"default:0" json:"displayOrder"`
	CreatedAt    time.Time `json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
