package domain

import "time"

// Token kinds as stamped into revocation records.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// RevokedToken is a blacklist entry. The token stays listed until its
// natural expiry has long passed, then housekeeping prunes it.
type RevokedToken struct {
	Token     string    `json:"-"`
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt time.Time `json:"revoked_at"`
}
