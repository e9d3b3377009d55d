// Package platform wraps the host commerce platform the app is embedded
// in: credential verification, member profiles, access tiers and checkout
// sessions. The platform is an opaque collaborator; nothing here owns
// business logic.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dyncarl8-oss/herbal-roots/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// Header carrying the host platform's user token inside the iframe.
	UserTokenHeader = "x-platform-user-token"

	AccessAdmin    = "admin"
	AccessCustomer = "customer"
	AccessNone     = "no_access"
)

var (
	ErrInvalidCredential = errors.New("invalid platform user token")
	ErrUnavailable       = errors.New("platform api unavailable")
)

type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}

type CheckoutSession struct {
	ID          string `json:"id"`
	PurchaseURL string `json:"purchase_url"`
	PlanID      string `json:"plan_id"`
}

type Client struct {
	baseURL    string
	apiKey     string
	appSecret  []byte
	companyID  string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.PlatformAPIBaseURL,
		apiKey:    cfg.PlatformAPIKey,
		appSecret: []byte(cfg.PlatformAppSecret),
		companyID: cfg.PlatformCompanyID,
		httpClient: &http.Client{
			Timeout: cfg.PlatformHTTPTimeout,
		},
	}
}

// VerifyCredential validates the user token the host platform injects into
// the iframe and returns the platform user id. Verification is local: the
// token is a JWT signed with the app secret.
func (c *Client) VerifyCredential(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidCredential
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.appSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidCredential
	}
	return claims.Subject, nil
}

// FetchProfile retrieves the member's public profile from the platform API.
func (c *Client) FetchProfile(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	if err := c.get(ctx, "/users/"+userID, &profile); err != nil {
		return nil, err
	}
	if profile.ID == "" {
		profile.ID = userID
	}
	if profile.Name == "" {
		profile.Name = profile.Username
	}
	return &profile, nil
}

// CheckAccessLevel resolves the member's access tier for the configured
// company. Without a company id there is nothing to check against and
// every verified member is treated as a customer.
func (c *Client) CheckAccessLevel(ctx context.Context, userID string) (string, error) {
	if c.companyID == "" {
		return AccessCustomer, nil
	}

	var result struct {
		HasAccess   bool   `json:"has_access"`
		AccessLevel string `json:"access_level"`
	}
	path := fmt.Sprintf("/companies/%s/users/%s/access", c.companyID, userID)
	if err := c.get(ctx, path, &result); err != nil {
		return "", err
	}

	switch result.AccessLevel {
	case AccessAdmin, AccessCustomer, AccessNone:
		return result.AccessLevel, nil
	}
	if result.HasAccess {
		return AccessCustomer, nil
	}
	return AccessNone, nil
}

// CreateCheckoutSession asks the platform to open a checkout for the given
// plan. Payment itself happens entirely on the platform side.
func (c *Client) CreateCheckoutSession(ctx context.Context, planID, userID string) (*CheckoutSession, error) {
	body, err := json.Marshal(map[string]string{
		"plan_id": planID,
		"user_id": userID,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/checkout_sessions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var session CheckoutSession
	if err := c.do(req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrUnavailable, "resource not found")
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: malformed response", ErrUnavailable)
	}
	return nil
}

// IssueUserToken mints a platform-style user token. Used by local tooling
// and tests; production tokens come from the host platform.
func (c *Client) IssueUserToken(userID string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.appSecret)
}
