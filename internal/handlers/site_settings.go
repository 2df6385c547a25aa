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

func siteSettingsFields(s *models.SiteSettings) []patch.Field {
	return []patch.Field{
		{Keys: []string{"heroTitle", "hero_title"}, Dst: &s.HeroTitle},
		{Keys: []string{"heroSubtitle", "hero_subtitle"}, Dst: &s.HeroSubtitle},
		{Keys: []string{"heroImage", "hero_image"}, Dst: &s.HeroImage},
		{Keys: []string{"missionTitle", "mission_title"}, Dst: &s.MissionTitle},
		{Keys: []string{"missionDescription", "mission_description"}, Dst: &s.MissionDescription},
		{Keys: []string{"contactPhone", "contact_phone"}, Dst: &s.ContactPhone},
		{Keys: []string{"contactEmail", "contact_email"}, Dst: &s.ContactEmail},
	}
}

func defaultSiteSettings() models.SiteSettings {
	return models.SiteSettings{
		HeroTitle:          "Welcome to Timberco",
		HeroSubtitle:       "Premium Timber Products",
		MissionTitle:       "Our Mission",
		MissionDescription: "Delivering quality timber products",
	}
}

// GetSiteSettings returns the singleton settings row, materializing the
// default one on first read.
func GetSiteSettings(c *gin.Context) {
	settings, err := getOrCreateSettings(defaultSiteSettings())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSiteSettings merges the patch into the singleton row. A missing row
// is not a 404: an empty baseline is created first, then patched.
func UpdateSiteSettings(c *gin.Context) {
	settings, err := getOrCreateSettings(models.SiteSettings{})
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
	if err := patch.Apply(fs, siteSettingsFields(&settings)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "site_settings", settings.ID, "update", "Updated site settings")
	c.JSON(http.StatusOK, settings)
}

// getOrCreateSettings implements the lazy singleton: one existence check,
// then an insert of the given baseline if no row was found.
func getOrCreateSettings(baseline models.SiteSettings) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := database.DB.First(&settings).Error
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SiteSettings{}, err
	}

	settings = baseline
	if err := database.DB.Create(&settings).Error; err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}
