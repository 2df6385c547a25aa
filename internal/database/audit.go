package database

import "timberco/internal/models"

// helper for writing to the audit trail; failures are not surfaced to the
// request that triggered them
func CreateAuditLog(userID, entity, entityID, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
