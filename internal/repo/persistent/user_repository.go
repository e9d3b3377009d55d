package persistent

import (
	"time"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Upsert(data *entity.UpsertUserData) (*entity.User, error)
	GetByPlatformID(platformUserID string) (*entity.User, error)
	GetAll() ([]*entity.User, error)
	AddSavedBlend(platformUserID string, blend *entity.SavedBlend) error
	GetSavedBlends(platformUserID string) ([]entity.SavedBlend, error)
	CreditBalance(platformUserID string, cents int64) (bool, error)
	GetOldestAdmin() (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert syncs the identity fields from the host platform. Balance, total
// earned and saved blends are never touched here: the conflict update
// lists identity columns only.
func (r *userRepository) Upsert(data *entity.UpsertUserData) (*entity.User, error) {
	userModel := &model.UserModel{
		ID:             uuid.New().String(),
		PlatformUserID: data.PlatformUserID,
		Username:       data.Username,
		Name:           data.Name,
		AvatarURL:      data.AvatarURL,
		Bio:            data.Bio,
		AccessLevel:    string(data.AccessLevel),
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "platform_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "name", "avatar_url", "bio", "access_level", "updated_at",
		}),
	}).Create(userModel).Error
	if err != nil {
		return nil, err
	}

	return r.GetByPlatformID(data.PlatformUserID)
}

func (r *userRepository) GetByPlatformID(platformUserID string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Preload("SavedBlends", func(db *gorm.DB) *gorm.DB {
		return db.Order("saved_blends.saved_at DESC")
	}).Where("platform_user_id = ?", platformUserID).First(&userModel).Error
	if err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetAll() ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Order("created_at ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) AddSavedBlend(platformUserID string, blend *entity.SavedBlend) error {
	var userModel model.UserModel
	if err := r.db.Select("id").Where("platform_user_id = ?", platformUserID).First(&userModel).Error; err != nil {
		return err
	}

	blendModel := &model.SavedBlendModel{
		ID:        uuid.New().String(),
		UserID:    userModel.ID,
		Name:      blend.Name,
		Type:      blend.Type,
		ProductID: blend.ProductID,
		SavedAt:   time.Now(),
	}
	if err := r.db.Create(blendModel).Error; err != nil {
		return err
	}

	*blend = ToSavedBlendEntity(blendModel)
	return nil
}

func (r *userRepository) GetSavedBlends(platformUserID string) ([]entity.SavedBlend, error) {
	user, err := r.GetByPlatformID(platformUserID)
	if err != nil {
		return nil, err
	}
	if user.SavedBlends == nil {
		return []entity.SavedBlend{}, nil
	}
	return user.SavedBlends, nil
}

// CreditBalance increments balance and lifetime earnings in a single
// UPDATE so concurrent credits never lose an increment. Returns false
// when no matching user row exists.
func (r *userRepository) CreditBalance(platformUserID string, cents int64) (bool, error) {
	result := r.db.Model(&model.UserModel{}).
		Where("platform_user_id = ?", platformUserID).
		UpdateColumns(map[string]interface{}{
			"balance_cents":      gorm.Expr("balance_cents + ?", cents),
			"total_earned_cents": gorm.Expr("total_earned_cents + ?", cents),
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetOldestAdmin is the fallback commission recipient when no operator is
// configured: the earliest-created admin-tier user, which is stable
// across calls.
func (r *userRepository) GetOldestAdmin() (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.Where("access_level = ?", string(entity.AccessAdmin)).
		Order("created_at ASC").
		First(&userModel).Error
	if err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}
