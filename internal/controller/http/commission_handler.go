package http

import (
	"context"
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"
	"github.com/dyncarl8-oss/herbal-roots/pkg/platform"

	"github.com/gin-gonic/gin"
)

// CheckoutCreator is the slice of the host-platform client the purchase
// flow consumes.
type CheckoutCreator interface {
	CreateCheckoutSession(ctx context.Context, planID, userID string) (*platform.CheckoutSession, error)
}

type CommissionHandler struct {
	commissionUseCase usecase.CommissionUseCase
	checkout          CheckoutCreator
	logger            *logger.Logger
}

func NewCommissionHandler(commissionUseCase usecase.CommissionUseCase, checkout CheckoutCreator, logger *logger.Logger) *CommissionHandler {
	return &CommissionHandler{
		commissionUseCase: commissionUseCase,
		checkout:          checkout,
		logger:            logger,
	}
}

type createCheckoutRequest struct {
	PlanID string `json:"planId"`
}

type finalizePurchaseRequest struct {
	ProductName string  `json:"productName"`
	Amount      float64 `json:"amount"`
}

// CreateCheckout godoc
// @Summary      Open a host-platform checkout session
// @Description  Asks the host platform to open a checkout for the given plan. The member completes payment on the platform side.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        request body createCheckoutRequest true "Plan to purchase"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /checkout/create [post]
func (h *CommissionHandler) CreateCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "planId is required"})
		return
	}

	userID := c.GetString("user_id")

	session, err := h.checkout.CreateCheckoutSession(c.Request.Context(), req.PlanID, userID)
	if err != nil {
		h.logger.Error("Checkout session failed for %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":   session.ID,
		"purchaseUrl": session.PurchaseURL,
		"planId":      session.PlanID,
	})
}

// FinalizePurchase godoc
// @Summary      Record a completed purchase
// @Description  Appends the purchase to the ledger and credits half the amount to the platform operator.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        request body finalizePurchaseRequest true "Completed purchase"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /purchase/finalize [post]
func (h *CommissionHandler) FinalizePurchase(c *gin.Context) {
	var req finalizePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := c.GetString("user_id")

	receipt, err := h.commissionUseCase.RecordPurchase(userID, req.ProductName, entity.DollarsToCents(req.Amount))
	if err != nil {
		h.logger.Error("Failed to record purchase for %s: %v", userID, err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":            true,
		"transaction":        formatTransaction(receipt.Transaction),
		"commissionCredited": receipt.CommissionCredited,
	})
}

func formatTransaction(t *entity.Transaction) gin.H {
	return gin.H{
		"id":          t.ID,
		"type":        t.Type,
		"amount":      entity.CentsToDollars(t.AmountCents),
		"commission":  entity.CentsToDollars(t.CommissionCents),
		"buyerId":     t.BuyerID,
		"description": t.Description,
		"createdAt":   t.CreatedAt,
	}
}
