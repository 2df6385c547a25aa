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

func productFields(p *models.Product) []patch.Field {
	return []patch.Field{
		{Keys: []string{"name"}, Dst: &p.Name},
		{Keys: []string{"species"}, Dst: &p.Species},
		{Keys: []string{"dimensions"}, Dst: &p.Dimensions},
		{Keys: []string{"origin"}, Dst: &p.Origin},
		{Keys: []string{"story"}, Dst: &p.Story},
		{Keys: []string{"image"}, Dst: &p.Image},
		{Keys: []string{"category"}, Dst: &p.Category},
		{Keys: []string{"displayOrder", "display_order"}, Dst: &p.DisplayOrder},
	}
}

func missingProductField(p *models.Product) string {
	switch {
	case p.Name == "":
		return "name"
	case p.Species == "":
		return "species"
	case p.Dimensions == "":
		return "dimensions"
	case p.Origin == "":
		return "origin"
	case p.Story == "":
		return "story"
	case p.Image == "":
		return "image"
	case p.Category == "":
		return "category"
	}
	return ""
}

func ListProducts(c *gin.Context) {
	products := []models.Product{}
	if err := database.DB.
		Order("display_order asc, created_at asc").
		Find(&products).Error; err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func CreateProduct(c *gin.Context) {
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

	var product models.Product
	if err := patch.Apply(fs, productFields(&product)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if missing := missingProductField(&product); missing != "" {
		abortError(c, http.StatusUnprocessableEntity, "missing required field: "+missing)
		return
	}

	if err := database.DB.Create(&product).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "product", product.ID, "create", "Created product: "+product.Name)
	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	var product models.Product
	err := database.DB.First(&product, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "product not found")
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
	if err := patch.Apply(fs, productFields(&product)); err != nil {
		abortError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := database.DB.Save(&product).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "product", product.ID, "update", "Updated product: "+product.Name)
	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	var product models.Product
	err := database.DB.First(&product, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		serverError(c, err)
		return
	}

	audit(c, "product", product.ID, "delete", "Deleted product: "+product.Name)
	c.Status(http.StatusOK)
}
