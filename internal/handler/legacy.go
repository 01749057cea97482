package handler

import (
	"errors"
	"net/http"

	"shop-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegacyProductHandler is the older, unauthenticated product surface at
// /products. It predates the REST resource layer and keeps its own
// contract: no auth gate, flat text errors, 400 for unsupported verbs,
// and a missing-field check that treats any falsy value as absent.
// Kept separate from ProductHandler on purpose; do not merge the two.
type LegacyProductHandler struct {
	db *gorm.DB
}

// NewLegacyProductHandler creates the legacy handler.
func NewLegacyProductHandler(db *gorm.DB) *LegacyProductHandler {
	return &LegacyProductHandler{db: db}
}

// Products handles GET (list) and POST (create) on /products.
func (h *LegacyProductHandler) Products(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.list(c)
	case http.MethodPost:
		h.create(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request method"})
	}
}

// ProductDetail handles GET and PATCH on /products/:id.
func (h *LegacyProductHandler) ProductDetail(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.get(c)
	case http.MethodPatch:
		h.patch(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request method"})
	}
}

func (h *LegacyProductHandler) list(c *gin.Context) {
	products := []model.Product{}
	if err := h.db.WithContext(c.Request.Context()).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *LegacyProductHandler) create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	// Falsy values (0, false, "") count as missing here. Observed
	// behavior of the old surface, preserved as-is.
	if !truthy(body["name"]) || !truthy(body["price"]) || !truthy(body["available"]) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, price, available"})
		return
	}

	price, ok := body["price"].(float64)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price value"})
		return
	}
	name, _ := body["name"].(string)

	product := model.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Available: truthy(body["available"]),
	}

	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *LegacyProductHandler) get(c *gin.Context) {
	product, ok := h.fetch(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *LegacyProductHandler) patch(c *gin.Context) {
	product, ok := h.fetch(c)
	if !ok {
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if v, present := body["name"]; present {
		product.Name, _ = v.(string)
	}
	if v, present := body["price"]; present {
		price, ok := v.(float64)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price value"})
			return
		}
		product.Price = price
	}
	if v, present := body["available"]; present {
		product.Available = truthy(v)
	}

	if err := product.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *LegacyProductHandler) fetch(c *gin.Context) (*model.Product, bool) {
	var product model.Product
	err := h.db.WithContext(c.Request.Context()).Where("id = ?", c.Param("id")).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return nil, false
	}
	return &product, true
}

// truthy mirrors the old surface's notion of "present": nil, empty
// string, zero and false all count as missing.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0
	case bool:
		return val
	default:
		return true
	}
}
