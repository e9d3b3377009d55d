package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"
	"github.com/dyncarl8-oss/herbal-roots/pkg/platform"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func authRouter(verifier *MockPlatformVerifier, profile *MockProfileUseCase) *gin.Engine {
	router := setupTestRouter()
	router.Use(AuthMiddleware(verifier, profile, logger.New()))
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":      c.GetString("user_id"),
			"accessLevel": c.GetString("access_level"),
		})
	})
	return router
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	router := authRouter(new(MockPlatformVerifier), new(MockProfileUseCase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := new(MockPlatformVerifier)
	verifier.On("VerifyCredential", "garbage").Return("", platform.ErrInvalidCredential)

	router := authRouter(verifier, new(MockProfileUseCase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set(platform.UserTokenHeader, "garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	verifier.AssertExpectations(t)
}

func TestAuthMiddleware_SyncsAndAttachesUser(t *testing.T) {
	verifier := new(MockPlatformVerifier)
	verifier.On("VerifyCredential", "good-token").Return("user-123", nil)
	verifier.On("FetchProfile", "user-123").Return(&platform.Profile{
		ID:       "user-123",
		Username: "rosehip",
		Name:     "Rose Hip",
	}, nil)
	verifier.On("CheckAccessLevel", "user-123").Return(platform.AccessAdmin, nil)

	profile := new(MockProfileUseCase)
	profile.On("SyncUser", mock.MatchedBy(func(data *entity.UpsertUserData) bool {
		return data.PlatformUserID == "user-123" && data.AccessLevel == entity.AccessAdmin
	})).Return(&entity.User{
		PlatformUserID: "user-123",
		Username:       "rosehip",
		AccessLevel:    entity.AccessAdmin,
	}, nil)

	router := authRouter(verifier, profile)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set(platform.UserTokenHeader, "good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"user-123"`)
	assert.Contains(t, w.Body.String(), `"accessLevel":"admin"`)

	verifier.AssertExpectations(t)
	profile.AssertExpectations(t)
}

func TestAuthMiddleware_AccessCheckFailureDefaultsCustomer(t *testing.T) {
	verifier := new(MockPlatformVerifier)
	verifier.On("VerifyCredential", "good-token").Return("user-123", nil)
	verifier.On("FetchProfile", "user-123").Return(&platform.Profile{ID: "user-123"}, nil)
	verifier.On("CheckAccessLevel", "user-123").Return("", errors.New("platform down"))

	profile := new(MockProfileUseCase)
	profile.On("SyncUser", mock.MatchedBy(func(data *entity.UpsertUserData) bool {
		return data.AccessLevel == entity.AccessCustomer
	})).Return(&entity.User{
		PlatformUserID: "user-123",
		AccessLevel:    entity.AccessCustomer,
	}, nil)

	router := authRouter(verifier, profile)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set(platform.UserTokenHeader, "good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accessLevel":"customer"`)

	verifier.AssertExpectations(t)
	profile.AssertExpectations(t)
}
