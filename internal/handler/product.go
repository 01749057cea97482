package handler

import (
	"net/http"

	"shop-api/internal/model"
	"shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the authenticated product resource
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ListProducts returns all products, filtered by the optional search
// query parameter (case-insensitive name substring).
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product by id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct validates and persists a new product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces an existing product.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req model.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// PatchProduct applies a partial update; an empty body is rejected.
func (h *ProductHandler) PatchProduct(c *gin.Context) {
	var req model.ProductPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.PatchProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeServiceError(c, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err, "Product not found")
		return
	}
	c.Status(http.StatusNoContent)
}
