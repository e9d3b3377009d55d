package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/dyncarl8-oss/herbal-roots/internal/catalog"
	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/repo/persistent"
	"github.com/dyncarl8-oss/herbal-roots/internal/shared"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"gorm.io/gorm"
)

type DashboardStats struct {
	StreakDays             int       `json:"streak_days"`
	AffiliateEarningsCents int64     `json:"affiliate_earnings_cents"`
	CommunityPosts         int64     `json:"community_posts"`
	JoinedAt               time.Time `json:"joined_at"`
}

type ProfileUseCase interface {
	SyncUser(data *entity.UpsertUserData) (*entity.User, error)
	GetDashboardStats(platformUserID string) (*DashboardStats, error)
	SaveBlend(platformUserID, productID, name, blendType string) (*entity.SavedBlend, error)
	ListBlends(platformUserID string) ([]entity.SavedBlend, error)
	ListUsers() ([]*entity.User, error)
}

type profileUseCase struct {
	userRepo persistent.UserRepository
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewProfileUseCase(userRepo persistent.UserRepository, postRepo persistent.PostRepository, logger *logger.Logger) ProfileUseCase {
	return &profileUseCase{
		userRepo: userRepo,
		postRepo: postRepo,
		logger:   logger,
	}
}

// SyncUser mirrors the host-platform identity locally. The upsert touches
// identity fields only, so balance, lifetime earnings and saved blends
// survive every sync.
func (uc *profileUseCase) SyncUser(data *entity.UpsertUserData) (*entity.User, error) {
	if data.PlatformUserID == "" {
		return nil, fmt.Errorf("%w: platform user id is required", shared.ErrValidation)
	}
	if data.AccessLevel == "" {
		data.AccessLevel = entity.AccessCustomer
	}

	user, err := uc.userRepo.Upsert(data)
	if err != nil {
		uc.logger.Error("Failed to sync user %s: %v", data.PlatformUserID, err)
		return nil, fmt.Errorf("%w: sync user", shared.ErrStorage)
	}
	return user, nil
}

func (uc *profileUseCase) GetDashboardStats(platformUserID string) (*DashboardStats, error) {
	user, err := uc.userRepo.GetByPlatformID(platformUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", shared.ErrNotFound, platformUserID)
		}
		uc.logger.Error("Failed to load user %s: %v", platformUserID, err)
		return nil, fmt.Errorf("%w: dashboard stats", shared.ErrStorage)
	}

	postCount, err := uc.postRepo.CountByAuthor(platformUserID)
	if err != nil {
		uc.logger.Error("Failed to count posts for %s: %v", platformUserID, err)
		return nil, fmt.Errorf("%w: dashboard stats", shared.ErrStorage)
	}

	return &DashboardStats{
		StreakDays:             streakDays(user.CreatedAt, time.Now()),
		AffiliateEarningsCents: user.TotalEarnedCents,
		CommunityPosts:         postCount,
		JoinedAt:               user.CreatedAt,
	}, nil
}

// streakDays counts whole days of membership, starting at 1 on the day
// the member joined.
func streakDays(joinedAt, now time.Time) int {
	if now.Before(joinedAt) {
		return 1
	}
	return int(now.Sub(joinedAt).Hours()/24) + 1
}

// SaveBlend pins a recommendation to the member's dashboard. Name and
// type fall back to the referenced catalog product; the type label is
// always defined.
func (uc *profileUseCase) SaveBlend(platformUserID, productID, name, blendType string) (*entity.SavedBlend, error) {
	if productID != "" {
		product, ok := catalog.GetByID(productID)
		if !ok {
			return nil, fmt.Errorf("%w: ritual %s", shared.ErrNotFound, productID)
		}
		if name == "" {
			name = product.Name
		}
		if blendType == "" {
			blendType = catalog.BlendType(product)
		}
	}

	if name == "" {
		return nil, fmt.Errorf("%w: blend name is required", shared.ErrValidation)
	}
	if blendType == "" {
		blendType = catalog.BlendType(nil)
	}

	blend := &entity.SavedBlend{
		Name:      name,
		Type:      blendType,
		ProductID: productID,
	}

	if err := uc.userRepo.AddSavedBlend(platformUserID, blend); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", shared.ErrNotFound, platformUserID)
		}
		uc.logger.Error("Failed to save blend for %s: %v", platformUserID, err)
		return nil, fmt.Errorf("%w: save blend", shared.ErrStorage)
	}

	return blend, nil
}

func (uc *profileUseCase) ListBlends(platformUserID string) ([]entity.SavedBlend, error) {
	blends, err := uc.userRepo.GetSavedBlends(platformUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", shared.ErrNotFound, platformUserID)
		}
		uc.logger.Error("Failed to list blends for %s: %v", platformUserID, err)
		return nil, fmt.Errorf("%w: list blends", shared.ErrStorage)
	}
	return blends, nil
}

func (uc *profileUseCase) ListUsers() ([]*entity.User, error) {
	users, err := uc.userRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, fmt.Errorf("%w: list users", shared.ErrStorage)
	}
	return users, nil
}
