package http

import (
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/catalog"
	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RitualHandler struct {
	recommendUseCase usecase.RecommendUseCase
	logger           *logger.Logger
}

func NewRitualHandler(recommendUseCase usecase.RecommendUseCase, logger *logger.Logger) *RitualHandler {
	return &RitualHandler{
		recommendUseCase: recommendUseCase,
		logger:           logger,
	}
}

type quizRequest struct {
	Goal           string `json:"goal"`
	Flavor         string `json:"flavor"`
	Caffeine       string `json:"caffeine"`
	EnergyLevel    int    `json:"energyLevel"`
	BrewPreference string `json:"brewPreference"`
}

// ListRituals godoc
// @Summary      Catalog of tea rituals
// @Tags         rituals
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Router       /rituals [get]
func (h *RitualHandler) ListRituals(c *gin.Context) {
	products := h.recommendUseCase.ListProducts()

	rituals := make([]gin.H, 0, len(products))
	for i := range products {
		rituals = append(rituals, formatProduct(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{"rituals": rituals})
}

// GetRitual godoc
// @Summary      Single catalog ritual
// @Tags         rituals
// @Produce      json
// @Security     PlatformToken
// @Param        id path string true "Ritual ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /rituals/{id} [get]
func (h *RitualHandler) GetRitual(c *gin.Context) {
	product, err := h.recommendUseCase.GetProduct(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatProduct(product))
}

// Recommend godoc
// @Summary      Recommend a ritual from quiz answers
// @Description  Scores every catalog ritual against the quiz answers and returns the best match. The same answers always produce the same recommendation.
// @Tags         rituals
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        request body quizRequest true "Quiz answers"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /rituals/recommend [post]
func (h *RitualHandler) Recommend(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.recommendUseCase.Recommend(entity.QuizAnswers{
		Goal:           req.Goal,
		Flavor:         req.Flavor,
		Caffeine:       entity.Caffeine(req.Caffeine),
		EnergyLevel:    req.EnergyLevel,
		BrewPreference: req.BrewPreference,
	})
	if err != nil {
		h.logger.Error("Recommendation failed: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendation": formatProduct(product),
		"blendType":      catalog.BlendType(product),
	})
}

func formatProduct(p *entity.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"price":       entity.CentsToDollars(p.PriceCents),
		"description": p.Description,
		"goals":       p.Goals,
		"flavors":     p.Flavors,
		"caffeine":    p.Caffeine,
		"blendType":   catalog.BlendType(p),
	}
}
