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

func teamMemberFields(m *models.TeamMember) []patch.Field {
	return []patch.Field{
		{Keys: []string{"name"}, Dst: &m.Name},
		{Keys: []string{"title"}, Dst: &m.Title},
		{Keys: []string{"bio"}, Dst: &m.Bio},
		{Keys: []string{"image"}, Dst: &m.Image},
		{Keys: []string{"displayOrder", "display_order"}, Dst: &m.DisplayOrder},
	}
}

func missingTeamMemberField(m *models.TeamMember) string {
	switch {
	case m.Name == "":
		return "name"
	case m.Title == "":
		return "title"
	case m.Bio == "":
		return "bio"
	case m.Image == "":
		return "image"
	}
	return ""
}

func ListTeamMembers(c *gin.Context) {
	members := []models.TeamMember{}
	if err := database.DB.
		Order("display_order asc, created_at asc").
		Find(&members).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func CreateTeamMember(c *gin.Context) {
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

	var member models.TeamMember
	if err := patch.Apply(fs, teamMemberFields(&member)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if missing := missingTeamMemberField(&member); missing != "" {
		abortError(c, http.StatusUnprocessableEntity, "missing required field: "+missing)
		return
	}

	if err := database.DB.Create(&member).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "team_member", member.ID, "create", "Created team member: "+member.Name)
	c.JSON(http.StatusCreated, member)
}

func UpdateTeamMember(c *gin.Context) {
	var member models.TeamMember
	err := database.DB.First(&member, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "team member not found")
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
	if err := patch.Apply(fs, teamMemberFields(&member)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := database.DB.Save(&member).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "team_member", member.ID, "update", "Updated team member: "+member.Name)
	c.JSON(http.StatusOK, member)
}

func DeleteTeamMember(c *gin.Context) {
	var member models.TeamMember
	err := database.DB.First(&member, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "team member not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "team_member", member.ID, "delete", "Deleted team member: "+member.Name)
	c.Status(http.StatusOK)
}
