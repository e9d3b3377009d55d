package http

import (
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

type saveBlendRequest struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}

// DashboardStats godoc
// @Summary      Member dashboard statistics
// @Description  Streak days since joining, affiliate earnings balance and community post count for the authenticated member.
// @Tags         dashboard
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/stats [get]
func (h *ProfileHandler) DashboardStats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := h.profileUseCase.GetDashboardStats(userID)
	if err != nil {
		h.logger.Error("Failed to get dashboard stats for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"streakDays":        stats.StreakDays,
		"affiliateEarnings": entity.CentsToDollars(stats.AffiliateEarningsCents),
		"communityPosts":    stats.CommunityPosts,
		"joinedAt":          stats.JoinedAt,
	})
}

// SaveBlend godoc
// @Summary      Pin a blend to the member's dashboard
// @Tags         blends
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        request body saveBlendRequest true "Blend to save"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /user/blends [post]
func (h *ProfileHandler) SaveBlend(c *gin.Context) {
	var req saveBlendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.GetString("user_id")

	blend, err := h.profileUseCase.SaveBlend(userID, req.ProductID, req.Name, req.Type)
	if err != nil {
		h.logger.Error("Failed to save blend for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"blend": formatBlend(blend)})
}

// ListBlends godoc
// @Summary      Saved blends for the current member
// @Tags         blends
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Router       /user/blends [get]
func (h *ProfileHandler) ListBlends(c *gin.Context) {
	userID := c.GetString("user_id")

	blends, err := h.profileUseCase.ListBlends(userID)
	if err != nil {
		h.logger.Error("Failed to list blends for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	formatted := make([]gin.H, 0, len(blends))
	for i := range blends {
		formatted = append(formatted, formatBlend(&blends[i]))
	}

	c.JSON(http.StatusOK, gin.H{"blends": formatted})
}

func formatBlend(b *entity.SavedBlend) gin.H {
	return gin.H{
		"id":        b.ID,
		"name":      b.Name,
		"type":      b.Type,
		"productId": b.ProductID,
		"savedAt":   b.SavedAt,
	}
}
