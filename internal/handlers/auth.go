package handlers

import (
	"errors"
	"net/http"
	"strings"

	"timberco/internal/database"
	"timberco/internal/middleware"
	"timberco/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// GetUser returns the current identity, or a JSON null when the request
// carries no valid session.
func GetUser(c *gin.Context) {
	if u, ok := middleware.CurrentUser(c); ok {
		c.JSON(http.StatusOK, identity{ID: u.ID, Username: u.Username})
		return
	}
	c.JSON(http.StatusOK, nil)
}

func Login(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var user models.User
	err := database.DB.Where("username = ?", creds.Username).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, err)
		return
	}
	// same response for unknown user and wrong password
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		abortError(c, http.StatusUnauthorized, "incorrect username or password")
		return
	}

	if err := setSession(c, user.ID); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity{ID: user.ID, Username: user.Username})
}

func Register(c *gin.Context) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		abortError(c, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("username = ?", creds.Username).
		Count(&count).Error; err != nil {
		serverError(c, err)
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "username already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	}
	// the unique index on username is the authoritative guard against a
	// concurrent registration slipping past the check above
	if err := database.DB.Create(&user).Error; err != nil {
		serverError(c, err)
		return
	}

	if err := setSession(c, user.ID); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity{ID: user.ID, Username: user.Username})
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Status(http.StatusOK)
}

func setSession(c *gin.Context, userID string) error {
	sess := sessions.Default(c)
	sess.Set("user_id", userID)
	return sess.Save()
}
