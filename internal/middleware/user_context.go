package middleware

import (
	"errors"
	"log"
	"net/http"

	"timberco/internal/database"
	"timberco/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "CurrentUser"

// InjectUser resolves the session to a user and stores it on the request
// context. A missing session or a stale cookie pointing at a deleted user
// means "not logged in"; any other storage failure is a real error and
// must not be masked as an auth failure.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uid, ok := sess.Get("user_id").(string)
		if !ok || uid == "" {
			c.Next()
			return
		}

		var user models.User
		err := database.DB.First(&user, "id = ?", uid).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Next()
			return
		}
		if err != nil {
			log.Printf("failed to resolve session user: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user placed on the context by
// InjectUser, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
