package http

import (
	"context"
	"net/http"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/usecase"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"
	"github.com/dyncarl8-oss/herbal-roots/pkg/platform"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// PlatformVerifier is the slice of the host-platform client the auth
// middleware consumes.
type PlatformVerifier interface {
	VerifyCredential(token string) (string, error)
	FetchProfile(ctx context.Context, userID string) (*platform.Profile, error)
	CheckAccessLevel(ctx context.Context, userID string) (string, error)
}

// AuthMiddleware verifies the host platform's user token, syncs the member
// into local storage and attaches the synced user to the request context.
// Every authenticated request refreshes the local mirror.
func AuthMiddleware(verifier PlatformVerifier, profileUseCase usecase.ProfileUseCase, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(platform.UserTokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required - no platform user token"})
			c.Abort()
			return
		}

		userID, err := verifier.VerifyCredential(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid platform user token"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()

		profile, err := verifier.FetchProfile(ctx, userID)
		if err != nil {
			log.Error("Failed to fetch profile for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user profile"})
			c.Abort()
			return
		}

		accessLevel, err := verifier.CheckAccessLevel(ctx, userID)
		if err != nil {
			// A flaky access check must not lock members out; customer is
			// the conservative tier.
			log.Warn("Access check failed for %s, defaulting to customer: %v", userID, err)
			accessLevel = platform.AccessCustomer
		}

		user, err := profileUseCase.SyncUser(&entity.UpsertUserData{
			PlatformUserID: profile.ID,
			Username:       profile.Username,
			Name:           profile.Name,
			AvatarURL:      profile.AvatarURL,
			Bio:            profile.Bio,
			AccessLevel:    entity.AccessLevel(accessLevel),
		})
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", user.PlatformUserID)
		c.Set("access_level", string(user.AccessLevel))
		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
