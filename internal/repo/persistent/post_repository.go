package persistent

import (
	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	Exists(id string) (bool, error)
	Delete(id string) (bool, error)
	AddLike(postID, userID string) (bool, error)
	RemoveLike(postID, userID string) (bool, error)
	CountLikes(postID string) (int64, error)
	AddReply(reply *entity.Reply) error
	CountByAuthor(authorID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.Preload("LikeRows").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Where("id = ?", id).First(&postModel).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	err := r.db.Preload("LikeRows").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes the post permanently; likes and replies cascade. Returns
// false when the post was already gone.
func (r *postRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AddLike inserts into the likes set if absent. The composite unique index
// on (post_id, user_id) makes this a single conditional write; returns
// false when the user already liked the post.
func (r *postRepository) AddLike(postID, userID string) (bool, error) {
	likeModel := &model.LikeModel{
		ID:     uuid.New().String(),
		PostID: postID,
		UserID: userID,
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(likeModel)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *postRepository) RemoveLike(postID, userID string) (bool, error) {
	result := r.db.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&model.LikeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *postRepository) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postRepository) AddReply(reply *entity.Reply) error {
	replyModel := ToReplyModel(reply)
	if replyModel.ID == "" {
		replyModel.ID = uuid.New().String()
	}

	if err := r.db.Create(replyModel).Error; err != nil {
		return err
	}

	*reply = ToReplyEntity(replyModel)
	return nil
}

func (r *postRepository) CountByAuthor(authorID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
