package http

import (
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityUseCase usecase.CommunityUseCase
	logger           *logger.Logger
}

func NewCommunityHandler(communityUseCase usecase.CommunityUseCase, logger *logger.Logger) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
		logger:           logger,
	}
}

type createPostRequest struct {
	Content string `json:"content"`
}

type createReplyRequest struct {
	Content string `json:"content"`
}

// ListPosts godoc
// @Summary      Community feed
// @Description  All community posts, newest first, with likes and replies.
// @Tags         community
// @Produce      json
// @Security     PlatformToken
// @Success      200  {object}  map[string]interface{}
// @Router       /community/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.communityUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		respondError(c, err)
		return
	}

	formatted := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		formatted = append(formatted, formatPost(post))
	}

	c.JSON(http.StatusOK, gin.H{"posts": formatted})
}

// CreatePost godoc
// @Summary      Publish a community post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        request body createPostRequest true "Post content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /community/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	post, err := h.communityUseCase.CreatePost(
		user.PlatformUserID,
		user.Name,
		user.AvatarURL,
		string(user.AccessLevel),
		req.Content,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": formatPost(post)})
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Description  First call likes the post, the next call from the same member unlikes it. Safe under concurrent taps.
// @Tags         community
// @Produce      json
// @Security     PlatformToken
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /community/posts/{id}/like [post]
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	result, err := h.communityUseCase.ToggleLike(postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Post liked"
	if result == usecase.LikeResultUnliked {
		message = "Post unliked"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"result":  result,
	})
}

// AddReply godoc
// @Summary      Reply to a post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     PlatformToken
// @Param        id path string true "Post ID"
// @Param        request body createReplyRequest true "Reply content"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /community/posts/{id}/replies [post]
func (h *CommunityHandler) AddReply(c *gin.Context) {
	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	reply, err := h.communityUseCase.AddReply(
		c.Param("id"),
		user.PlatformUserID,
		user.Name,
		user.AvatarURL,
		req.Content,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reply": formatReply(reply)})
}

func formatPost(p *entity.Post) gin.H {
	replies := make([]gin.H, 0, len(p.Replies))
	for i := range p.Replies {
		replies = append(replies, formatReply(&p.Replies[i]))
	}

	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}

	return gin.H{
		"id":           p.ID,
		"authorId":     p.AuthorID,
		"authorName":   p.AuthorName,
		"authorAvatar": p.AuthorAvatar,
		"authorRole":   p.AuthorRole,
		"content":      p.Content,
		"likes":        likes,
		"likeCount":    len(likes),
		"replies":      replies,
		"createdAt":    p.CreatedAt,
	}
}

func formatReply(r *entity.Reply) gin.H {
	return gin.H{
		"id":           r.ID,
		"authorId":     r.AuthorID,
		"authorName":   r.AuthorName,
		"authorAvatar": r.AuthorAvatar,
		"content":      r.Content,
		"createdAt":    r.CreatedAt,
	}
}
