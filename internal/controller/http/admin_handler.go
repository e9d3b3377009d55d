package http

import (
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AdminHandler carries the back-office surface: ledger inspection, member
// listing, moderation and test purchases.
type AdminHandler struct {
	commissionUseCase usecase.CommissionUseCase
	communityUseCase  usecase.CommunityUseCase
	profileUseCase    usecase.ProfileUseCase
	logger            *logger.Logger
}

func NewAdminHandler(
	commissionUseCase usecase.CommissionUseCase,
	communityUseCase usecase.CommunityUseCase,
	profileUseCase usecase.ProfileUseCase,
	logger *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		commissionUseCase: commissionUseCase,
		communityUseCase:  communityUseCase,
		profileUseCase:    profileUseCase,
		logger:            logger,
	}
}

type mockPurchaseRequest struct {
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
}

// MockPurchase godoc
// @Summary      Record a simulated purchase
// @Description  Exercises the full commission flow without a real payment. Admin only.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        request body mockPurchaseRequest true "Simulated purchase"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/mock-purchase [post]
func (h *AdminHandler) MockPurchase(c *gin.Context) {
	var req mockPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.GetString("user_id")

	receipt, err := h.commissionUseCase.RecordPurchase(userID, req.ProductName, entity.DollarsToCents(req.Amount))
	if err != nil {
		h.logger.Error("Mock purchase failed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":            true,
		"transaction":        formatTransaction(receipt.Transaction),
		"commissionCredited": receipt.CommissionCredited,
	})
}

// Stats godoc
// @Summary      Ledger totals
// @Description  Total revenue, total commission and transaction count across the whole ledger. Admin only.
// @Tags         admin
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.commissionUseCase.Stats()
	if err != nil {
		h.logger.Error("Failed to get ledger stats: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":     entity.CentsToDollars(stats.TotalRevenueCents),
		"totalCommission":  entity.CentsToDollars(stats.TotalCommissionCents),
		"transactionCount": stats.TransactionCount,
	})
}

// ListTransactions godoc
// @Summary      Full transaction ledger
// @Tags         admin
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/transactions [get]
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.commissionUseCase.ListTransactions()
	if err != nil {
		h.logger.Error("Failed to list transactions: %v", err)
		respondError(c, err)
		return
	}

	formatted := make([]gin.H, 0, len(transactions))
	for _, t := range transactions {
		formatted = append(formatted, formatTransaction(t))
	}

	c.JSON(http.StatusOK, gin.H{"transactions": formatted})
}

// ListUsers godoc
// @Summary      All synced members
// @Tags         admin
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.profileUseCase.ListUsers()
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		respondError(c, err)
		return
	}

	formatted := make([]gin.H, 0, len(users))
	for _, u := range users {
		formatted = append(formatted, gin.H{
			"id":             u.PlatformUserID,
			"username":       u.Username,
			"name":           u.Name,
			"profilePicture": u.AvatarURL,
			"accessLevel":    u.AccessLevel,
			"balance":        entity.CentsToDollars(u.BalanceCents),
			"totalEarned":    entity.CentsToDollars(u.TotalEarnedCents),
			"createdAt":      u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": formatted})
}

// DeletePost godoc
// @Summary      Remove a community post
// @Description  Moderation delete. Succeeds with success=false when the post is already gone.
// @Tags         admin
// @Produce      json
// @Security     PlatformToken
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/posts/{id} [delete]
func (h *AdminHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	deleted, err := h.communityUseCase.DeletePost(postID)
	if err != nil {
		h.logger.Error("Failed to delete post %s: %v", postID, err)
		respondError(c, err)
		return
	}

	message := "Post deleted"
	if !deleted {
		message = "Post not found"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": deleted,
		"message": message,
	})
}
