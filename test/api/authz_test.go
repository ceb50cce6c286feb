package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestUserDeleteIsAdminOnly(t *testing.T) {
	srv := startServer(t)

	user := registerAndLogin(t, srv, "mallory@example.com")
	admin := seedStaff(t, srv, "root@example.com", domain.RoleAdmin)

	// Find the victim's id through the public listing.
	code, env := doJSON(t, srv, http.MethodGet, "/api/v1/user", "", nil)
	require.Equal(t, http.StatusOK, code)

	var users []domain.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.NotEmpty(t, users)

	var victimID string
	for _, u := range users {
		if u.Email == "mallory@example.com" {
			victimID = string(u.ID)
		}
	}
	require.NotEmpty(t, victimID)

	// A regular user hits the role gate.
	code, env = doJSON(t, srv, http.MethodDelete, "/api/v1/user/delete/"+victimID, user.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "insufficient permissions", env.Errors.Detail)
	require.Equal(t, "middleware", env.Errors.Source)

	// The admin does not.
	code, _ = doJSON(t, srv, http.MethodDelete, "/api/v1/user/delete/"+victimID, admin.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, srv, http.MethodGet, "/api/v1/user/"+victimID, "", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestModerationRequiresStaffRole(t *testing.T) {
	srv := startServer(t)

	author := registerAndLogin(t, srv, "author@example.com")
	subadmin := seedStaff(t, srv, "mod@example.com", domain.RoleSubadmin)

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/post/create", author.AccessToken, map[string]any{
		"food_name": "Banh mi",
		"province":  "Da Nang",
	})
	require.Equal(t, http.StatusOK, code)

	var post domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))
	require.Equal(t, domain.PostStatusPending, post.Status)

	// The author cannot approve their own post.
	code, _ = doJSON(t, srv, http.MethodPatch, "/api/v1/post/status/"+string(post.ID), author.AccessToken, map[string]string{
		"status": domain.PostStatusApproved,
	})
	require.Equal(t, http.StatusForbidden, code)

	// A subadmin can.
	code, env = doJSON(t, srv, http.MethodPatch, "/api/v1/post/status/"+string(post.ID), subadmin.AccessToken, map[string]string{
		"status": domain.PostStatusApproved,
	})
	require.Equal(t, http.StatusOK, code)

	require.NoError(t, json.Unmarshal(env.Data, &post))
	require.Equal(t, domain.PostStatusApproved, post.Status)

	// Unknown statuses are rejected outright.
	code, env = doJSON(t, srv, http.MethodPatch, "/api/v1/post/status/"+string(post.ID), subadmin.AccessToken, map[string]string{
		"status": "published",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Errors)
	require.Equal(t, "invalid status", env.Errors.Detail)
}
