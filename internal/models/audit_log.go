package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID string `gorm:"size:36" json:"userId"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "product", "team_member", ...
	EntityID string `gorm:"size:36" json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "update", "delete"
	Details  string `gorm:"type:text" json:"details"`
}
