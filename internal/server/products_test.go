package server

import (
	"net/http"
	"testing"

	"timberco/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productBody(name string, order int) gin.H {
	return gin.H{
		"name":         name,
		"species":      "White Oak",
		"dimensions":   "2x4x8",
		"origin":       "Pacific Northwest",
		"story":        "Reclaimed from a century barn",
		"image":        "/images/" + name + ".jpg",
		"category":     "slabs",
		"displayOrder": order,
	}
}

func createProduct(t *testing.T, r *gin.Engine, cookies []*http.Cookie, name string, order int) models.Product {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/products", productBody(name, order), cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Product
	decodeJSON(t, w, &p)
	require.NotEmpty(t, p.ID)
	return p
}

func TestCreateProductRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/products", productBody("oak", 0), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookies := register(t, r, "admin", "s3cret")
	w = doRequest(t, r, http.MethodPost, "/api/products", productBody("oak", 0), cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var p models.Product
	decodeJSON(t, w, &p)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "oak", p.Name)
	assert.Equal(t, "White Oak", p.Species)
}

func TestCreateProductValidation(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")

	body := productBody("oak", 0)
	delete(body, "story")
	w := doRequest(t, r, http.MethodPost, "/api/products", body, cookies)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "story")
}

func TestListProductsOrdering(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")

	createProduct(t, r, cookies, "third", 2)
	createProduct(t, r, cookies, "first", 0)
	createProduct(t, r, cookies, "second", 1)
	// equal displayOrder keeps insertion order
	createProduct(t, r, cookies, "second-b", 1)

	w := doRequest(t, r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decodeJSON(t, w, &products)
	require.Len(t, products, 4)
	assert.Equal(t, "first", products[0].Name)
	assert.Equal(t, "second", products[1].Name)
	assert.Equal(t, "second-b", products[2].Name)
	assert.Equal(t, "third", products[3].Name)
}

func TestPatchProduct(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")
	p := createProduct(t, r, cookies, "oak", 0)

	w := doRequest(t, r, http.MethodPatch, "/api/products/"+p.ID,
		gin.H{"name": "renamed"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	decodeJSON(t, w, &updated)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Name)
	// everything else untouched
	assert.Equal(t, p.Species, updated.Species)
	assert.Equal(t, p.Story, updated.Story)
	assert.Equal(t, p.DisplayOrder, updated.DisplayOrder)
}

func TestPatchProductSnakeCaseAlias(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")
	p := createProduct(t, r, cookies, "oak", 0)

	w := doRequest(t, r, http.MethodPatch, "/api/products/"+p.ID,
		gin.H{"display_order": 9}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	decodeJSON(t, w, &updated)
	assert.Equal(t, 9, updated.DisplayOrder)
}

func TestPatchProductEmptyPatchIsNoOp(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")
	p := createProduct(t, r, cookies, "oak", 4)

	w := doRequest(t, r, http.MethodPatch, "/api/products/"+p.ID, "{}", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	decodeJSON(t, w, &updated)
	assert.Equal(t, p, updated)
}

func TestPatchProductCannotChangeID(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")
	p := createProduct(t, r, cookies, "oak", 0)

	w := doRequest(t, r, http.MethodPatch, "/api/products/"+p.ID,
		gin.H{"id": "forged", "name": "renamed"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	decodeJSON(t, w, &updated)
	assert.Equal(t, p.ID, updated.ID)
}

func TestProductNotFound(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")

	w := doRequest(t, r, http.MethodPatch, "/api/products/does-not-exist",
		gin.H{"name": "x"}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/products/does-not-exist", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	r := newTestRouter(t)
	cookies := register(t, r, "admin", "s3cret")
	p := createProduct(t, r, cookies, "oak", 0)

	w := doRequest(t, r, http.MethodDelete, "/api/products/"+p.ID, nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/api/products", nil, nil)
	var products []models.Product
	decodeJSON(t, w, &products)
	assert.Empty(t, products)
}
