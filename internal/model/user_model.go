package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	PlatformUserID   string    `gorm:"uniqueIndex;not null" json:"platform_user_id"`
	Username         string    `gorm:"not null" json:"username"`
	Name             string    `gorm:"not null" json:"name"`
	AvatarURL        string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Bio              string    `gorm:"type:text" json:"bio"`
	AccessLevel      string    `gorm:"type:varchar(20);default:'customer'" json:"access_level"`
	BalanceCents     int64     `gorm:"not null;default:0" json:"balance_cents"`
	TotalEarnedCents int64     `gorm:"not null;default:0" json:"total_earned_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	SavedBlends []SavedBlendModel `gorm:"foreignKey:UserID" json:"saved_blends,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type SavedBlendModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null" json:"type"`
	ProductID string    `json:"product_id"`
	SavedAt   time.Time `gorm:"not null;index" json:"saved_at"`
}

func (SavedBlendModel) TableName() string {
	return "saved_blends"
}

func (b *SavedBlendModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
