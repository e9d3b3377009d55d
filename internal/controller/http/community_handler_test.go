package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/shared"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testMember() *entity.User {
	return &entity.User{
		ID:             "local-1",
		PlatformUserID: "user-123",
		Username:       "rosehip",
		Name:           "Rose Hip",
		AccessLevel:    entity.AccessCustomer,
		CreatedAt:      time.Now().Add(-72 * time.Hour),
	}
}

func TestToggleLike_Like(t *testing.T) {
	mockUseCase := new(MockCommunityUseCase)
	handler := NewCommunityHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/community/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "post-1", "user-123").Return(usecase.LikeResultLiked, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/community/posts/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post liked", response["message"])
	assert.Equal(t, "liked", response["result"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_Unlike(t *testing.T) {
	mockUseCase := new(MockCommunityUseCase)
	handler := NewCommunityHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/community/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleLike(c)
	})

	mockUseCase.On("ToggleLike", "post-1", "user-123").Return(usecase.LikeResultUnliked, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/community/posts/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post unliked", response["message"])
	assert.Equal(t, "unliked", response["result"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockCommunityUseCase)
	handler := NewCommunityHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/community/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set(currentUserKey, testMember())
		handler.CreatePost(c)
	})

	post := &entity.Post{
		ID:         "post-1",
		AuthorID:   "user-123",
		AuthorName: "Rose Hip",
		AuthorRole: "customer",
		Content:    "Chamomile before bed changed everything",
		Likes:      []string{},
		Replies:    []entity.Reply{},
		CreatedAt:  time.Now(),
	}
	mockUseCase.On("CreatePost", "user-123", "Rose Hip", "", "customer", "Chamomile before bed changed everything").
		Return(post, nil)

	body, _ := json.Marshal(map[string]string{"content": "Chamomile before bed changed everything"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/community/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	created := response["post"].(map[string]interface{})
	assert.Equal(t, "post-1", created["id"])
	assert.Equal(t, float64(0), created["likeCount"])

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_EmptyContent(t *testing.T) {
	mockUseCase := new(MockCommunityUseCase)
	handler := NewCommunityHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/community/posts", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set(currentUserKey, testMember())
		handler.CreatePost(c)
	})

	mockUseCase.On("CreatePost", "user-123", "Rose Hip", "", "customer", "   ").
		Return(nil, fmt.Errorf("%w: post content is required", shared.ErrValidation))

	body, _ := json.Marshal(map[string]string{"content": "   "})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/community/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockUseCase.AssertExpectations(t)
}

func TestListPosts_FeedShape(t *testing.T) {
	mockUseCase := new(MockCommunityUseCase)
	handler := NewCommunityHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/community/posts", handler.ListPosts)

	posts := []*entity.Post{
		{
			ID:         "post-2",
			AuthorID:   "user-456",
			AuthorName: "Mint Leaf",
			AuthorRole: "admin",
			Content:    "New masterclass drops Friday",
			Likes:      []string{"user-123", "user-789"},
			Replies: []entity.Reply{
				{ID: "reply-1", PostID: "post-2", AuthorID: "user-123", AuthorName: "Rose Hip", Content: "Can't wait"},
			},
		},
	}
	mockUseCase.On("ListPosts").Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/community/posts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	feed := response["posts"].([]interface{})
	assert.Len(t, feed, 1)
	first := feed[0].(map[string]interface{})
	assert.Equal(t, float64(2), first["likeCount"])
	assert.Len(t, first["replies"].([]interface{}), 1)

	mockUseCase.AssertExpectations(t)
}

func TestAddReply_PostNotFound(t *testing.T) {
	mockUseCase := new(MockCommunityUseCase)
	handler := NewCommunityHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/community/posts/:id/replies", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		c.Set(currentUserKey, testMember())
		handler.AddReply(c)
	})

	mockUseCase.On("AddReply", "gone", "user-123", "Rose Hip", "", "hello").
		Return(nil, fmt.Errorf("%w: post gone", shared.ErrNotFound))

	body, _ := json.Marshal(map[string]string{"content": "hello"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/community/posts/gone/replies", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockUseCase.AssertExpectations(t)
}
