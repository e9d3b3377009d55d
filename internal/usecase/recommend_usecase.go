package usecase

import (
	"fmt"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/shared"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"
)

const (
	defaultGoal   = "sleep"
	defaultFlavor = "floral"

	goalMatchScore     = 5
	flavorMatchScore   = 2
	caffeineAvoidScore = -10
	caffeineHighScore  = 3
)

var (
	knownGoals   = map[string]bool{"sleep": true, "digest": true, "energy": true, "immunity": true}
	knownFlavors = map[string]bool{"floral": true, "earthy": true, "fruity": true, "minty": true}
)

type RecommendUseCase interface {
	Recommend(answers entity.QuizAnswers) (*entity.Product, error)
	ListProducts() []entity.Product
	GetProduct(id string) (*entity.Product, error)
}

type recommendUseCase struct {
	products []entity.Product
	logger   *logger.Logger
}

func NewRecommendUseCase(products []entity.Product, logger *logger.Logger) RecommendUseCase {
	return &recommendUseCase{
		products: products,
		logger:   logger,
	}
}

// Recommend scores every catalog product against the quiz answers and
// returns the first highest scorer in catalog order. Deterministic for a
// given set of answers.
func (uc *recommendUseCase) Recommend(answers entity.QuizAnswers) (*entity.Product, error) {
	if len(uc.products) == 0 {
		return nil, fmt.Errorf("%w: ritual catalog is empty", shared.ErrConfiguration)
	}

	normalized, err := normalizeAnswers(answers)
	if err != nil {
		return nil, err
	}

	best := 0
	bestScore := scoreProduct(&uc.products[0], normalized)
	for i := 1; i < len(uc.products); i++ {
		if score := scoreProduct(&uc.products[i], normalized); score > bestScore {
			best = i
			bestScore = score
		}
	}

	uc.logger.Info("recommended %s (score %d) for goal=%s flavor=%s caffeine=%s",
		uc.products[best].ID, bestScore, normalized.Goal, normalized.Flavor, normalized.Caffeine)
	return &uc.products[best], nil
}

func (uc *recommendUseCase) ListProducts() []entity.Product {
	return uc.products
}

func (uc *recommendUseCase) GetProduct(id string) (*entity.Product, error) {
	for i := range uc.products {
		if uc.products[i].ID == id {
			return &uc.products[i], nil
		}
	}
	return nil, fmt.Errorf("%w: ritual %s", shared.ErrNotFound, id)
}

// normalizeAnswers substitutes defaults for missing fields and rejects
// values outside the known enums. The scorer never sees a blank field.
func normalizeAnswers(answers entity.QuizAnswers) (entity.QuizAnswers, error) {
	if answers.Goal == "" {
		answers.Goal = defaultGoal
	} else if !knownGoals[answers.Goal] {
		return answers, fmt.Errorf("%w: unknown goal %q", shared.ErrValidation, answers.Goal)
	}

	if answers.Flavor == "" {
		answers.Flavor = defaultFlavor
	} else if !knownFlavors[answers.Flavor] {
		return answers, fmt.Errorf("%w: unknown flavor %q", shared.ErrValidation, answers.Flavor)
	}

	switch answers.Caffeine {
	case "":
		answers.Caffeine = entity.CaffeineNone
	case entity.CaffeineNone, entity.CaffeineLow, entity.CaffeineHigh:
	default:
		return answers, fmt.Errorf("%w: unknown caffeine preference %q", shared.ErrValidation, answers.Caffeine)
	}

	if answers.EnergyLevel < 0 || answers.EnergyLevel > 100 {
		return answers, fmt.Errorf("%w: energy level must be between 0 and 100", shared.ErrValidation)
	}

	return answers, nil
}

func scoreProduct(product *entity.Product, answers entity.QuizAnswers) int {
	score := 0

	if containsTag(product.Goals, answers.Goal) {
		score += goalMatchScore
	}
	if containsTag(product.Flavors, answers.Flavor) {
		score += flavorMatchScore
	}
	if answers.Caffeine == entity.CaffeineNone && product.Caffeine != entity.CaffeineNone {
		score += caffeineAvoidScore
	}
	if answers.Caffeine == entity.CaffeineHigh && product.Caffeine == entity.CaffeineHigh {
		score += caffeineHighScore
	}

	return score
}

func containsTag(tags []string, value string) bool {
	for _, tag := range tags {
		if tag == value {
			return true
		}
	}
	return false
}
