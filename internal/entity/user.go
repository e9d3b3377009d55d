package entity

import "time"

type AccessLevel string

const (
	AccessAdmin    AccessLevel = "admin"
	AccessCustomer AccessLevel = "customer"
	AccessNone     AccessLevel = "no_access"
)

// SavedBlend is a recommendation pick pinned to a member's dashboard.
type SavedBlend struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	ProductID string    `json:"product_id,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}

// User mirrors a host-platform member locally. Identity fields are synced
// on every authenticated request; balance, total earned and saved blends
// are owned locally and survive profile syncs.
type User struct {
	ID               string       `json:"id"`
	PlatformUserID   string       `json:"platform_user_id"`
	Username         string       `json:"username"`
	Name             string       `json:"name"`
	AvatarURL        string       `json:"avatar_url,omitempty"`
	Bio              string       `json:"bio,omitempty"`
	AccessLevel      AccessLevel  `json:"access_level"`
	BalanceCents     int64        `json:"balance_cents"`
	TotalEarnedCents int64        `json:"total_earned_cents"`
	SavedBlends      []SavedBlend `json:"saved_blends,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// UpsertUserData carries the synced identity fields only. Anything owned
// locally is deliberately absent.
type UpsertUserData struct {
	PlatformUserID string
	Username       string
	Name           string
	AvatarURL      string
	Bio            string
	AccessLevel    AccessLevel
}
