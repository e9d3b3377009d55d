package http

import (
	"errors"
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/shared"

	"github.com/gin-gonic/gin"
)

// respondError translates the error taxonomy to a stable JSON shape.
// Internal failures get a fixed non-leaking message; everything else
// surfaces the sentinel's text.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, shared.ErrAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, shared.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, shared.ErrConfiguration):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service misconfigured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
