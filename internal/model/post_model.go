package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID     string    `gorm:"not null;index" json:"author_id"`
	AuthorName   string    `gorm:"not null" json:"author_name"`
	AuthorAvatar string    `gorm:"type:varchar(500)" json:"author_avatar"`
	AuthorRole   string    `gorm:"type:varchar(20)" json:"author_role"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `gorm:"index:idx_posts_created_at,sort:desc" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	LikeRows []LikeModel  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Replies  []ReplyModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// LikeModel is one member of a post's likes set. The composite unique
// index is what makes the like toggle a conditional insert/delete.
type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_post_user" json:"post_id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_likes_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type ReplyModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	PostID       string    `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorID     string    `gorm:"not null" json:"author_id"`
	AuthorName   string    `gorm:"not null" json:"author_name"`
	AuthorAvatar string    `gorm:"type:varchar(500)" json:"author_avatar"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ReplyModel) TableName() string {
	return "replies"
}

func (r *ReplyModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
