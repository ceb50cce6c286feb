package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterLoginLogoutFlow(t *testing.T) {
	srv := startServer(t)

	pair := registerAndLogin(t, srv, "alice@example.com")

	// Authenticated route works while the token is live.
	code, env := doJSON(t, srv, http.MethodGet, "/api/v1/wishlist", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "success", env.Status)

	// Logout revokes both halves of the pair.
	code, _ = doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", pair.AccessToken, map[string]string{
		"refreshToken": pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, code)

	// The access token is now blacklisted.
	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/wishlist", pair.AccessToken, nil)
	require.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "token is blacklisted", env.Errors.Detail)
	require.Equal(t, "middleware", env.Errors.Source)

	// And the refresh token can no longer mint access tokens.
	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": pair.RefreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "invalid refresh token", env.Errors.Detail)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := startServer(t)

	code, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "bob@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "bob@example.com",
		"password": "not-the-password",
	})
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "error", env.Status)
	require.NotNil(t, env.Errors)
	require.Equal(t, "invalid email or password", env.Errors.Detail)
	require.Empty(t, env.Data)
}

func TestRefreshIssuesWorkingAccessToken(t *testing.T) {
	srv := startServer(t)

	pair := registerAndLogin(t, srv, "carol@example.com")

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, code)

	var fresh tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &fresh))
	require.NotEmpty(t, fresh.AccessToken)
	require.Empty(t, fresh.RefreshToken, "refresh must not rotate the refresh token")

	code, _ = doJSON(t, srv, http.MethodGet, "/api/v1/wishlist", fresh.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	srv := startServer(t)

	code, env := doJSON(t, srv, http.MethodGet, "/api/v1/wishlist", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "access token not found", env.Errors.Detail)
}

func TestDuplicateEmailRejected(t *testing.T) {
	srv := startServer(t)

	body := map[string]string{"email": "dave@example.com", "password": testPassword}

	code, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusOK, code)

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "email is already registered", env.Errors.Detail)
}
