package handlers

import (
	"net/http"

	"timberco/internal/database"
	"timberco/internal/models"

	"github.com/gin-gonic/gin"
)

func ListAuditLog(c *gin.Context) {
	logs := []models.AuditLog{}
	if err := database.DB.
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
