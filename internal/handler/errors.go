package handler

import (
	"errors"
	"net/http"

	"shop-api/internal/service"
	"shop-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// writeServiceError translates a service failure into the matching HTTP
// response: 400 with the per-field map for validation failures, 404 for
// unknown ids, 500 otherwise.
func writeServiceError(c *gin.Context, err error, notFoundMsg string) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, verrs)
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON decodes the request body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}
	return true
}
