package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/repo/persistent"
	"github.com/dyncarl8-oss/herbal-roots/internal/shared"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	LikeResultLiked   = "liked"
	LikeResultUnliked = "unliked"
)

type CommunityUseCase interface {
	CreatePost(authorID, authorName, authorAvatar, authorRole, content string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	ToggleLike(postID, userID string) (string, error)
	AddReply(postID, authorID, authorName, authorAvatar, content string) (*entity.Reply, error)
	DeletePost(postID string) (bool, error)
}

type communityUseCase struct {
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewCommunityUseCase(postRepo persistent.PostRepository, redisClient *redis.Client, logger *logger.Logger) CommunityUseCase {
	return &communityUseCase{
		postRepo:    postRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *communityUseCase) CreatePost(authorID, authorName, authorAvatar, authorRole, content string) (*entity.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: post content is required", shared.ErrValidation)
	}

	post := &entity.Post{
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorAvatar: authorAvatar,
		AuthorRole:   authorRole,
		Content:      content,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("%w: create post", shared.ErrStorage)
	}

	return post, nil
}

func (uc *communityUseCase) ListPosts() ([]*entity.Post, error) {
	posts, err := uc.postRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("%w: list posts", shared.ErrStorage)
	}
	return posts, nil
}

// ToggleLike flips the caller's membership in the post's likes set via a
// conditional insert or delete, never a read-modify-write. Concurrent
// toggles by different users both land.
func (uc *communityUseCase) ToggleLike(postID, userID string) (string, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		uc.logger.Error("Failed to check post %s: %v", postID, err)
		return "", fmt.Errorf("%w: toggle like", shared.ErrStorage)
	}
	if !exists {
		return "", fmt.Errorf("%w: post %s", shared.ErrNotFound, postID)
	}

	inserted, err := uc.postRepo.AddLike(postID, userID)
	if err != nil {
		if isMissingPost(err) {
			return "", fmt.Errorf("%w: post %s", shared.ErrNotFound, postID)
		}
		uc.logger.Error("Failed to add like on %s: %v", postID, err)
		return "", fmt.Errorf("%w: toggle like", shared.ErrStorage)
	}

	ctx := context.Background()
	counterKey := fmt.Sprintf("post:likes:%s", postID)

	if inserted {
		if uc.redisClient != nil {
			uc.redisClient.Incr(ctx, counterKey)
		}
		return LikeResultLiked, nil
	}

	if _, err := uc.postRepo.RemoveLike(postID, userID); err != nil {
		uc.logger.Error("Failed to remove like on %s: %v", postID, err)
		return "", fmt.Errorf("%w: toggle like", shared.ErrStorage)
	}
	if uc.redisClient != nil {
		uc.redisClient.Decr(ctx, counterKey)
	}
	return LikeResultUnliked, nil
}

func (uc *communityUseCase) AddReply(postID, authorID, authorName, authorAvatar, content string) (*entity.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: reply content is required", shared.ErrValidation)
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		uc.logger.Error("Failed to check post %s: %v", postID, err)
		return nil, fmt.Errorf("%w: add reply", shared.ErrStorage)
	}
	if !exists {
		return nil, fmt.Errorf("%w: post %s", shared.ErrNotFound, postID)
	}

	reply := &entity.Reply{
		PostID:       postID,
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorAvatar: authorAvatar,
		Content:      content,
	}

	if err := uc.postRepo.AddReply(reply); err != nil {
		if isMissingPost(err) {
			return nil, fmt.Errorf("%w: post %s", shared.ErrNotFound, postID)
		}
		uc.logger.Error("Failed to add reply on %s: %v", postID, err)
		return nil, fmt.Errorf("%w: add reply", shared.ErrStorage)
	}

	return reply, nil
}

// DeletePost removes a post permanently. Deleting an absent post is not
// an error; the caller gets deleted=false.
func (uc *communityUseCase) DeletePost(postID string) (bool, error) {
	deleted, err := uc.postRepo.Delete(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return false, fmt.Errorf("%w: delete post", shared.ErrStorage)
	}

	if deleted && uc.redisClient != nil {
		uc.redisClient.Del(context.Background(), fmt.Sprintf("post:likes:%s", postID))
	}
	return deleted, nil
}

// isMissingPost reports whether a like or reply insert hit the posts
// foreign key because the post was deleted after the existence check.
func isMissingPost(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
