package handlers

import (
	"log"
	"net/http"

	"timberco/internal/database"
	"timberco/internal/middleware"

	"github.com/gin-gonic/gin"
)

func abortError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// serverError logs the underlying failure and returns a generic 500 body;
// storage details never reach the client.
func serverError(c *gin.Context, err error) {
	log.Printf("storage error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// audit records a mutation attributed to the authenticated user. Public
// endpoints (contact submission) pass through without a record.
func audit(c *gin.Context, entity, entityID, action, details string) {
	if u, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(u.ID, entity, entityID, action, details)
	}
}
