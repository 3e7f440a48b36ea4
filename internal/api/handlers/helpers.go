// internal/api/handlers/helpers.go
package handlers

import (
	"errors"
	"net/http"

	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// respondStoreError ánh xạ taxonomy lỗi của store sang mã HTTP.
func respondStoreError(c *gin.Context, err error) {
	var validationErr *store.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrAlreadyAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
