package persistent

import (
	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:               m.ID,
		PlatformUserID:   m.PlatformUserID,
		Username:         m.Username,
		Name:             m.Name,
		AvatarURL:        m.AvatarURL,
		Bio:              m.Bio,
		AccessLevel:      entity.AccessLevel(m.AccessLevel),
		BalanceCents:     m.BalanceCents,
		TotalEarnedCents: m.TotalEarnedCents,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	if len(m.SavedBlends) > 0 {
		user.SavedBlends = make([]entity.SavedBlend, len(m.SavedBlends))
		for i := range m.SavedBlends {
			user.SavedBlends[i] = ToSavedBlendEntity(&m.SavedBlends[i])
		}
	}

	return user
}

func ToSavedBlendEntity(m *model.SavedBlendModel) entity.SavedBlend {
	if m == nil {
		return entity.SavedBlend{}
	}

	return entity.SavedBlend{
		ID:        m.ID,
		Name:      m.Name,
		Type:      m.Type,
		ProductID: m.ProductID,
		SavedAt:   m.SavedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:           m.ID,
		AuthorID:     m.AuthorID,
		AuthorName:   m.AuthorName,
		AuthorAvatar: m.AuthorAvatar,
		AuthorRole:   m.AuthorRole,
		Content:      m.Content,
		Likes:        make([]string, 0, len(m.LikeRows)),
		Replies:      make([]entity.Reply, 0, len(m.Replies)),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	for i := range m.LikeRows {
		post.Likes = append(post.Likes, m.LikeRows[i].UserID)
	}
	for i := range m.Replies {
		post.Replies = append(post.Replies, ToReplyEntity(&m.Replies[i]))
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:           e.ID,
		AuthorID:     e.AuthorID,
		AuthorName:   e.AuthorName,
		AuthorAvatar: e.AuthorAvatar,
		AuthorRole:   e.AuthorRole,
		Content:      e.Content,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToReplyEntity(m *model.ReplyModel) entity.Reply {
	if m == nil {
		return entity.Reply{}
	}

	return entity.Reply{
		ID:           m.ID,
		PostID:       m.PostID,
		AuthorID:     m.AuthorID,
		AuthorName:   m.AuthorName,
		AuthorAvatar: m.AuthorAvatar,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
	}
}

func ToReplyModel(e *entity.Reply) *model.ReplyModel {
	if e == nil {
		return nil
	}

	return &model.ReplyModel{
		ID:           e.ID,
		PostID:       e.PostID,
		AuthorID:     e.AuthorID,
		AuthorName:   e.AuthorName,
		AuthorAvatar: e.AuthorAvatar,
		Content:      e.Content,
		CreatedAt:    e.CreatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:              m.ID,
		Type:            entity.TransactionType(m.Type),
		AmountCents:     m.AmountCents,
		CommissionCents: m.CommissionCents,
		BuyerID:         m.BuyerID,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:              e.ID,
		Type:            string(e.Type),
		AmountCents:     e.AmountCents,
		CommissionCents: e.CommissionCents,
		BuyerID:         e.BuyerID,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
	}
}
