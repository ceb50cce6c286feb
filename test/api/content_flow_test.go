package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestPostWithCategoriesFlow(t *testing.T) {
	srv := startServer(t)
	author := registerAndLogin(t, srv, "author@example.com")

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/category/create", author.AccessToken, map[string]string{
		"category_name": "Street food",
	})
	require.Equal(t, http.StatusOK, code)

	var cat domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	// Duplicate names are a client error, not a 500.
	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/category/create", author.AccessToken, map[string]string{
		"category_name": "Street food",
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "category name is already taken", env.Errors.Detail)

	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/post/create", author.AccessToken, map[string]any{
		"food_name":    "Pho bo",
		"province":     "Ha Noi",
		"description":  "Best bowl in the old quarter",
		"category_ids": []string{string(cat.ID)},
	})
	require.Equal(t, http.StatusOK, code)

	var post domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))
	require.Equal(t, domain.PostStatusPending, post.Status)

	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/post/"+string(post.ID), "", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &post))
	require.Len(t, post.Categories, 1)
	require.Equal(t, "Street food", post.Categories[0].CategoryName)

	// A stranger cannot edit someone else's review.
	stranger := registerAndLogin(t, srv, "stranger@example.com")
	code, env = doJSON(t, srv, http.MethodPatch, "/api/v1/post/update/"+string(post.ID), stranger.AccessToken, map[string]string{
		"description": "mine now",
	})
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "insufficient permissions", env.Errors.Detail)
}

func TestCommentThreadOverHTTP(t *testing.T) {
	srv := startServer(t)
	author := registerAndLogin(t, srv, "threads@example.com")

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/post/create", author.AccessToken, map[string]any{
		"food_name": "Com tam",
		"province":  "Sai Gon",
	})
	require.Equal(t, http.StatusOK, code)
	var post domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))

	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/comment/create", author.AccessToken, map[string]any{
		"post_id": string(post.ID),
		"content": "top level",
	})
	require.Equal(t, http.StatusOK, code)
	var top domain.Comment
	require.NoError(t, json.Unmarshal(env.Data, &top))
	require.Nil(t, top.ParentID)

	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/comment/create", author.AccessToken, map[string]any{
		"post_id":   string(post.ID),
		"parent_id": string(top.ID),
		"content":   "a reply",
	})
	require.Equal(t, http.StatusOK, code)
	var reply domain.Comment
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	require.NotNil(t, reply.ParentID)
	require.Equal(t, top.ID, *reply.ParentID)

	// Replying to the reply lands on the top-level parent: one level deep.
	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/comment/create", author.AccessToken, map[string]any{
		"post_id":   string(post.ID),
		"parent_id": string(reply.ID),
		"content":   "a reply to the reply",
	})
	require.Equal(t, http.StatusOK, code)
	var deep domain.Comment
	require.NoError(t, json.Unmarshal(env.Data, &deep))
	require.NotNil(t, deep.ParentID)
	require.Equal(t, top.ID, *deep.ParentID)

	// The post listing shows one top-level comment carrying two replies.
	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/comment/"+string(post.ID), "", nil)
	require.Equal(t, http.StatusOK, code)
	var topLevel []domain.Comment
	require.NoError(t, json.Unmarshal(env.Data, &topLevel))
	require.Len(t, topLevel, 1)
	require.Equal(t, 2, topLevel[0].ReplyCount)

	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/comment/reply/"+string(top.ID), "", nil)
	require.Equal(t, http.StatusOK, code)
	var replies []domain.Comment
	require.NoError(t, json.Unmarshal(env.Data, &replies))
	require.Len(t, replies, 2)
}

func TestRatingAndWishlist(t *testing.T) {
	srv := startServer(t)
	user := registerAndLogin(t, srv, "foodie@example.com")

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/post/create", user.AccessToken, map[string]any{
		"food_name": "Banh xeo",
		"province":  "Hue",
	})
	require.Equal(t, http.StatusOK, code)
	var post domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))

	// Out-of-range scores are rejected.
	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/rate/create", user.AccessToken, map[string]any{
		"post_id": string(post.ID),
		"rate":    6,
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "rate must be between 1 and 5", env.Errors.Detail)

	code, _ = doJSON(t, srv, http.MethodPost, "/api/v1/rate/create", user.AccessToken, map[string]any{
		"post_id": string(post.ID),
		"rate":    4,
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/rate/"+string(post.ID), "", nil)
	require.Equal(t, http.StatusOK, code)
	var summary domain.RateSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	require.Len(t, summary.Rates, 1)
	require.InDelta(t, 4.0, summary.Average, 0.001)

	// Wishlist: add once, never twice.
	code, _ = doJSON(t, srv, http.MethodPost, "/api/v1/wishlist/create", user.AccessToken, map[string]string{
		"post_id": string(post.ID),
	})
	require.Equal(t, http.StatusOK, code)

	code, env = doJSON(t, srv, http.MethodPost, "/api/v1/wishlist/create", user.AccessToken, map[string]string{
		"post_id": string(post.ID),
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "post is already in the wishlist", env.Errors.Detail)

	code, env = doJSON(t, srv, http.MethodGet, "/api/v1/wishlist", user.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	require.Equal(t, 1, env.Meta.Total)
	require.Equal(t, 1, env.Meta.CurrentPage)

	var items []domain.WishlistItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Post)
	require.Equal(t, "Banh xeo", items[0].Post.FoodName)

	code, env = doJSON(t, srv, http.MethodDelete, "/api/v1/wishlist/clear", user.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)

	var cleared struct {
		Deleted int `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cleared))
	require.Equal(t, 1, cleared.Deleted)
}

func TestListPaginationMeta(t *testing.T) {
	srv := startServer(t)
	user := registerAndLogin(t, srv, "pages@example.com")

	for i := 0; i < 5; i++ {
		code, _ := doJSON(t, srv, http.MethodPost, "/api/v1/post/create", user.AccessToken, map[string]any{
			"food_name": fmt.Sprintf("Dish %d", i),
			"province":  "Hoi An",
		})
		require.Equal(t, http.StatusOK, code)
	}

	code, env := doJSON(t, srv, http.MethodGet, "/api/v1/post?page=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Meta)
	require.Equal(t, 5, env.Meta.Total)
	require.Equal(t, 2, env.Meta.CurrentPage)
	require.Equal(t, 3, env.Meta.TotalPages)

	var posts []domain.Post
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.Len(t, posts, 2)
}
