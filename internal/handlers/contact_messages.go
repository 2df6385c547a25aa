package handlers

import (
	"errors"
	"net/http"

	"timberco/internal/database"
	"timberco/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type contactMessageForm struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`
	Message string  `json:"message"`
}

type statusUpdateForm struct {
	Status string `json:"status"`
}

func ListContactMessages(c *gin.Context) {
	messages := []models.ContactMessage{}
	if err := database.DB.
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// CreateContactMessage is the one public write: anonymous visitors submit
// through the site's contact form.
func CreateContactMessage(c *gin.Context) {
	var form contactMessageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case form.Name == "":
		abortError(c, http.StatusUnprocessableEntity, "missing required field: name")
		return
	case form.Email == "":
		abortError(c, http.StatusUnprocessableEntity, "missing required field: email")
		return
	case form.Message == "":
		abortError(c, http.StatusUnprocessableEntity, "missing required field: message")
		return
	}

	message := models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Company: form.Company,
		Message: form.Message,
		Status:  models.MessageNew,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		serverError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// UpdateContactMessageStatus relabels a message. Any status may follow any
// other; createdAt is never touched.
func UpdateContactMessageStatus(c *gin.Context) {
	var form statusUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		abortError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if form.Status == "" {
		abortError(c, http.StatusUnprocessableEntity, "missing required field: status")
		return
	}

	var message models.ContactMessage
	err := database.DB.First(&message, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "contact message not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := database.DB.Model(&message).Update("status", form.Status).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "contact_message", message.ID, "status_change", "Set status to "+form.Status)
	c.Status(http.StatusOK)
}

func DeleteContactMessage(c *gin.Context) {
	var message models.ContactMessage
	err := database.DB.First(&message, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "contact message not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := database.DB.Delete(&message).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "contact_message", message.ID, "delete", "Deleted message from "+message.Name)
	c.Status(http.StatusOK)
}
