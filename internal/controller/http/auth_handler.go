package http

import (
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	logger *logger.Logger
}

func NewAuthHandler(logger *logger.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// Me godoc
// @Summary      Current member profile
// @Description  Returns the authenticated member's synced profile
// @Tags         auth
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.PlatformUserID,
		"username":       user.Username,
		"name":           user.Name,
		"profilePicture": user.AvatarURL,
		"bio":            user.Bio,
		"accessLevel":    user.AccessLevel,
		"createdAt":      user.CreatedAt,
	})
}

// CheckAccess godoc
// @Summary      Access tier for the current member
// @Tags         auth
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/check-access [get]
func (h *AuthHandler) CheckAccess(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasAccess":   user.AccessLevel != entity.AccessNone,
		"accessLevel": user.AccessLevel,
	})
}
