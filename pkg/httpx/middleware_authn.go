package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/angicungduoc/foodreview/pkg/jwtx"
	"github.com/angicungduoc/foodreview/pkg/slogx"
)

// RevocationChecker answers whether a token string has been revoked. The
// store backing it may fail; authentication fails closed when it does.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthnMiddleware authenticates requests via the Authorization header. The
// checks run in a fixed order and the first failure wins:
//
//  1. a bearer token must be present,
//  2. the scheme must be Bearer,
//  3. the token must verify (signature, expiry, issuer),
//  4. the token must not have been revoked.
//
// On success the verified identity and the raw token are stamped onto the
// request context for downstream guards and handlers.
func AuthnMiddleware(verifier jwtx.Verifier, revoked RevocationChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			header := r.Header.Get("Authorization")
			if header == "" {
				writeAuthnError(w, "access token not found")
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				writeAuthnError(w, "invalid token type")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				log.Debug("token verification failed", "error", err)
				writeAuthnError(w, authnDetail(err))
				return
			}

			isRevoked, err := revoked.IsRevoked(r.Context(), token)
			if err != nil {
				log.Error("revocation check failed", "error", err)
				Write(w, Error(InternalError("middleware", "unable to verify token revocation")))
				return
			}
			if isRevoked {
				writeAuthnError(w, "token is blacklisted")
				return
			}

			ctx := WithIdentity(r.Context(), claims)
			ctx = WithBearerToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthnError(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	Write(w, Error(Unauthorized("middleware", detail)))
}

// authnDetail keeps the client-facing reason stable regardless of what the
// underlying library reports.
func authnDetail(err error) string {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return "token expired"
	case errors.Is(err, jwtx.ErrNotYetValid):
		return "token not yet valid"
	case errors.Is(err, jwtx.ErrIssuer):
		return "token issuer mismatch"
	case errors.Is(err, jwtx.ErrInvalidSig):
		return "invalid token signature"
	default:
		return "invalid token"
	}
}
