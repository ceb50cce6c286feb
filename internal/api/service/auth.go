// Package service holds the business logic between the HTTP handlers and
// the store. Services report failures through sentinel errors; handlers
// translate those into result envelopes.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/cryptox"
	"github.com/angicungduoc/foodreview/pkg/idx"
	"github.com/angicungduoc/foodreview/pkg/jwtx"
	"github.com/angicungduoc/foodreview/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrForbidden          = errors.New("forbidden")
)

type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Register creates a new account with the "user" role. The password is
// hashed before anything touches the store.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New(),
		Email:        email,
		PasswordHash: hash,
		UserName:     email[:strings.Index(email+"@", "@")],
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", string(user.ID)))
	return user, nil
}

// Login checks the credentials and issues a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", string(user.ID)))
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	return s.issuePair(user)
}

func (s *AuthService) issuePair(user domain.User) (domain.TokenPair, error) {
	now := time.Now()

	access, err := s.Signer.Sign(jwtx.NewClaims(string(user.ID), user.Role, s.AccessTTL, s.Issuer, now))
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh, err := s.Signer.Sign(jwtx.NewClaims(string(user.ID), user.Role, s.RefreshTTL, s.Issuer, now))
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.AccessTTL.Seconds()),
	}, nil
}

// Logout blacklists the access token the request authenticated with, plus
// the refresh token from the body when one is supplied. The refresh token
// must belong to the same subject; we never revoke on a client's say-so.
func (s *AuthService) Logout(ctx context.Context, accessToken string, claims jwtx.Claims, refreshToken string) error {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	accessExpiry := now.Add(s.AccessTTL)
	if claims.ExpiresAt != nil {
		accessExpiry = claims.ExpiresAt.Time
	}

	if err := s.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		Token:     accessToken,
		UserID:    claims.UID,
		Kind:      domain.TokenKindAccess,
		ExpiresAt: accessExpiry,
		RevokedAt: now,
	}); err != nil {
		return err
	}

	if refreshToken == "" {
		l.Info("user logged out", slog.String("user_id", claims.UID))
		return nil
	}

	refreshClaims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return ErrInvalidRefresh
	}
	if refreshClaims.UID != claims.UID {
		l.Warn("logout refresh token subject mismatch", slog.String("user_id", claims.UID))
		return ErrInvalidRefresh
	}

	refreshExpiry := now.Add(s.RefreshTTL)
	if refreshClaims.ExpiresAt != nil {
		refreshExpiry = refreshClaims.ExpiresAt.Time
	}

	if err := s.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		Token:     refreshToken,
		UserID:    claims.UID,
		Kind:      domain.TokenKindRefresh,
		ExpiresAt: refreshExpiry,
		RevokedAt: now,
	}); err != nil {
		return err
	}

	l.Info("user logged out", slog.String("user_id", claims.UID))
	return nil
}

// Refresh verifies the refresh token and issues a fresh access token. The
// role is re-read from the store so a demotion takes effect on the next
// refresh rather than at the old token's natural expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	revoked, err := s.Store.RevokedTokens().IsTokenRevoked(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if revoked {
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidRefresh
		}
		return domain.TokenPair{}, err
	}

	access, err := s.Signer.Sign(jwtx.NewClaims(string(user.ID), user.Role, s.AccessTTL, s.Issuer, time.Now()))
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.AccessTTL.Seconds()),
	}, nil
}
