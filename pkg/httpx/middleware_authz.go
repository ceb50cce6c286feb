package httpx

import "net/http"

// Role names as they appear inside token claims.
const (
	RoleAdmin    = "admin"
	RoleSubadmin = "subadmin"
	RoleUser     = "user"
)

// RequireAdmin allows only admins through. Runs after AuthnMiddleware; a
// request with no role on its context is simply treated as not an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireAnyRole(RoleAdmin)(next)
}

// RequireAnyRole allows the request through when the context role matches
// any of the given roles.
func RequireAnyRole(roles ...string) Middleware {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFrom(r.Context())
			if role == "" {
				Write(w, Error(Forbidden("middleware", "no role found")))
				return
			}
			if _, ok := allowed[role]; !ok {
				Write(w, Error(Forbidden("middleware", "insufficient permissions")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
