package handlers

import (
	"errors"
	"net/http"

	"timberco/internal/database"
	"timberco/internal/models"
	"timberco/internal/patch"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func storyPanelFields(p *models.StoryPanel) []patch.Field {
	return []patch.Field{
		{Keys: []string{"title"}, Dst: &p.Title},
		{Keys: []string{"description"}, Dst: &p.Description},
		{Keys: []string{"image"}, Dst: &p.Image},
		{Keys: []string{"displayOrder", "display_order"}, Dst: &p.DisplayOrder},
	}
}

func missingStoryPanelField(p *models.StoryPanel) string {
	switch {
	case p.Title == "":
		return "title"
	case p.Description == "":
		return "description"
	case p.Image == "":
		return "image"
	}
	return ""
}

func ListStoryPanels(c *gin.Context) {
	panels := []models.StoryPanel{}
	if err := database.DB.
		Order("display_order asc, created_at asc").
		Find(&panels).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, panels)
}

func CreateStoryPanel(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		abortError(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	fs, err := patch.Parse(body)
	if err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var panel models.StoryPanel
	if err := patch.Apply(fs, storyPanelFields(&panel)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if missing := missingStoryPanelField(&panel); missing != "" {
		abortError(c, http.StatusUnprocessableEntity, "missing required field: "+missing)
		return
	}

	if err := database.DB.Create(&panel).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "story_panel", panel.ID, "create", "Created story panel: "+panel.Title)
	c.JSON(http.StatusCreated, panel)
}

func UpdateStoryPanel(c *gin.Context) {
	var panel models.StoryPanel
	err := database.DB.First(&panel, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "story panel not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		abortError(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	fs, err := patch.Parse(body)
	if err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := patch.Apply(fs, storyPanelFields(&panel)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := database.DB.Save(&panel).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "story_panel", panel.ID, "update", "Updated story panel: "+panel.Title)
	c.JSON(http.StatusOK, panel)
}

func DeleteStoryPanel(c *gin.Context) {
	var panel models.StoryPanel
	err := database.DB.First(&panel, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "story panel not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := database.DB.Delete(&panel).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "story_panel", panel.ID, "delete", "Deleted story panel: "+panel.Title)
	c.Status(http.StatusOK)
}
