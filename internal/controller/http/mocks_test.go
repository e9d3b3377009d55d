package http

import (
	"context"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/platform"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockRecommendUseCase is a mock implementation of RecommendUseCase
type MockRecommendUseCase struct {
	mock.Mock
}

func (m *MockRecommendUseCase) Recommend(answers entity.QuizAnswers) (*entity.Product, error) {
	args := m.Called(answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockRecommendUseCase) ListProducts() []entity.Product {
	args := m.Called()
	return args.Get(0).([]entity.Product)
}

func (m *MockRecommendUseCase) GetProduct(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

var _ usecase.RecommendUseCase = (*MockRecommendUseCase)(nil)

// MockCommunityUseCase is a mock implementation of CommunityUseCase
type MockCommunityUseCase struct {
	mock.Mock
}

func (m *MockCommunityUseCase) CreatePost(authorID, authorName, authorAvatar, authorRole, content string) (*entity.Post, error) {
	args := m.Called(authorID, authorName, authorAvatar, authorRole, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockCommunityUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockCommunityUseCase) ToggleLike(postID, userID string) (string, error) {
	args := m.Called(postID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockCommunityUseCase) AddReply(postID, authorID, authorName, authorAvatar, content string) (*entity.Reply, error) {
	args := m.Called(postID, authorID, authorName, authorAvatar, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Reply), args.Error(1)
}

func (m *MockCommunityUseCase) DeletePost(postID string) (bool, error) {
	args := m.Called(postID)
	return args.Bool(0), args.Error(1)
}

var _ usecase.CommunityUseCase = (*MockCommunityUseCase)(nil)

// MockProfileUseCase is a mock implementation of ProfileUseCase
type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) SyncUser(data *entity.UpsertUserData) (*entity.User, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockProfileUseCase) GetDashboardStats(platformUserID string) (*usecase.DashboardStats, error) {
	args := m.Called(platformUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DashboardStats), args.Error(1)
}

func (m *MockProfileUseCase) SaveBlend(platformUserID, productID, name, blendType string) (*entity.SavedBlend, error) {
	args := m.Called(platformUserID, productID, name, blendType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SavedBlend), args.Error(1)
}

func (m *MockProfileUseCase) ListBlends(platformUserID string) ([]entity.SavedBlend, error) {
	args := m.Called(platformUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.SavedBlend), args.Error(1)
}

func (m *MockProfileUseCase) ListUsers() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

var _ usecase.ProfileUseCase = (*MockProfileUseCase)(nil)

// MockCommissionUseCase is a mock implementation of CommissionUseCase
type MockCommissionUseCase struct {
	mock.Mock
}

func (m *MockCommissionUseCase) RecordPurchase(buyerID, productName string, amountCents int64) (*usecase.PurchaseReceipt, error) {
	args := m.Called(buyerID, productName, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PurchaseReceipt), args.Error(1)
}

func (m *MockCommissionUseCase) Stats() (*entity.LedgerStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LedgerStats), args.Error(1)
}

func (m *MockCommissionUseCase) ListTransactions() ([]*entity.Transaction, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

var _ usecase.CommissionUseCase = (*MockCommissionUseCase)(nil)

// MockPlatformVerifier is a mock implementation of PlatformVerifier
type MockPlatformVerifier struct {
	mock.Mock
}

func (m *MockPlatformVerifier) VerifyCredential(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockPlatformVerifier) FetchProfile(ctx context.Context, userID string) (*platform.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Profile), args.Error(1)
}

func (m *MockPlatformVerifier) CheckAccessLevel(ctx context.Context, userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

var _ PlatformVerifier = (*MockPlatformVerifier)(nil)

// MockCheckoutCreator is a mock implementation of CheckoutCreator
type MockCheckoutCreator struct {
	mock.Mock
}

func (m *MockCheckoutCreator) CreateCheckoutSession(ctx context.Context, planID, userID string) (*platform.CheckoutSession, error) {
	args := m.Called(planID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.CheckoutSession), args.Error(1)
}

var _ CheckoutCreator = (*MockCheckoutCreator)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
