package httpx

import (
	"context"

	"github.com/angicungduoc/foodreview/pkg/jwtx"
)

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyRole
	ctxKeyClaims
	ctxKeyToken
)

// WithIdentity stamps the verified token identity onto the request context.
// Only AuthnMiddleware should call this.
func WithIdentity(ctx context.Context, claims jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, claims.UID)
	ctx = context.WithValue(ctx, ctxKeyRole, claims.Role)
	return context.WithValue(ctx, ctxKeyClaims, claims)
}

// UserIDFrom returns the authenticated user's id, or "" when the request
// never passed authentication.
func UserIDFrom(ctx context.Context) string {
	uid, _ := ctx.Value(ctxKeyUserID).(string)
	return uid
}

// RoleFrom returns the authenticated user's role, or "" when absent.
func RoleFrom(ctx context.Context) string {
	role, _ := ctx.Value(ctxKeyRole).(string)
	return role
}

// ClaimsFrom returns the full verified claims for handlers that need more
// than the identity pair (logout needs the raw expiry, for instance).
func ClaimsFrom(ctx context.Context) (jwtx.Claims, bool) {
	claims, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return claims, ok
}

// WithBearerToken stamps the raw verified token string onto the context so
// logout can revoke exactly what was presented.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKeyToken, token)
}

// BearerTokenFrom returns the raw access token the request authenticated
// with, or "".
func BearerTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(ctxKeyToken).(string)
	return token
}
