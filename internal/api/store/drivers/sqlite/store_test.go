package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/internal/api/store/drivers/sqlite"
	"github.com/angicungduoc/foodreview/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New(),
		Email:        email,
		PasswordHash: "$argon2id$fake",
		UserName:     "tester",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newPost(userID idx.ID) domain.Post {
	now := time.Now().UTC()
	return domain.Post{
		ID:        idx.New(),
		UserID:    userID,
		FoodName:  "banh mi",
		Province:  "Da Nang",
		Status:    domain.PostStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUsersCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newUser("a@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, domain.RoleUser, got.Role)

	// Duplicate email is a conflict.
	dup := newUser("a@example.com")
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	name := "renamed"
	require.NoError(t, s.Users().UpdateUser(ctx, string(u.ID), domain.UserUpdate{UserName: &name}))
	got, err = s.Users().GetUserByID(ctx, string(u.ID))
	require.NoError(t, err)
	require.Equal(t, "renamed", got.UserName)

	require.NoError(t, s.Users().DeleteUser(ctx, string(u.ID)))
	_, err = s.Users().GetUserByID(ctx, string(u.ID))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateMissingUserIsNotFound(t *testing.T) {
	s := newTestStore(t)
	name := "x"
	err := s.Users().UpdateUser(context.Background(), "nope", domain.UserUpdate{UserName: &name})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostsWithCategories(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newUser("author@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	now := time.Now().UTC()
	cat := domain.Category{ID: idx.New(), CategoryName: "street food", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Categories().CreateCategory(ctx, cat))

	p := newPost(u.ID)
	p.Maps = &domain.GeoPoint{Latitude: 16.06, Longitude: 108.22}
	p.Images = []string{"/uploads/a.jpg", "/uploads/b.jpg"}
	p.Categories = []domain.Category{cat}
	require.NoError(t, s.Posts().CreatePost(ctx, p))

	got, err := s.Posts().GetPostByID(ctx, string(p.ID))
	require.NoError(t, err)
	require.Equal(t, "banh mi", got.FoodName)
	require.NotNil(t, got.Maps)
	require.InDelta(t, 16.06, got.Maps.Latitude, 0.001)
	require.Len(t, got.Images, 2)
	require.Len(t, got.Categories, 1)
	require.Equal(t, "street food", got.Categories[0].CategoryName)

	require.NoError(t, s.Posts().UpdatePostStatus(ctx, string(p.ID), domain.PostStatusApproved))
	got, err = s.Posts().GetPostByID(ctx, string(p.ID))
	require.NoError(t, err)
	require.Equal(t, domain.PostStatusApproved, got.Status)

	total, err := s.Posts().CountPosts(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, total)

	// Deleting the author cascades to the post.
	require.NoError(t, s.Users().DeleteUser(ctx, string(u.ID)))
	_, err = s.Posts().GetPostByID(ctx, string(p.ID))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCommentThreading(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newUser("c@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	p := newPost(u.ID)
	require.NoError(t, s.Posts().CreatePost(ctx, p))

	now := time.Now().UTC()
	top := domain.Comment{
		ID: idx.New(), PostID: p.ID, UserID: u.ID, Content: "looks great",
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Comments().CreateComment(ctx, top))

	for i := 0; i < 2; i++ {
		reply := domain.Comment{
			ID: idx.New(), PostID: p.ID, UserID: u.ID, ParentID: &top.ID,
			ReplyToUserID: &u.ID, Content: "thanks",
			CreatedAt: now.Add(time.Duration(i) * time.Second), UpdatedAt: now,
		}
		require.NoError(t, s.Comments().CreateComment(ctx, reply))
	}

	topLevel, err := s.Comments().ListTopLevelByPost(ctx, string(p.ID), 20, 0)
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	require.Equal(t, 2, topLevel[0].ReplyCount)
	require.Nil(t, topLevel[0].ParentID)

	replies, err := s.Comments().ListReplies(ctx, string(top.ID), 20, 0)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	require.NotNil(t, replies[0].ParentID)
	require.Equal(t, top.ID, *replies[0].ParentID)

	// Deleting the parent takes the replies with it.
	require.NoError(t, s.Comments().DeleteComment(ctx, string(top.ID)))
	n, err := s.Comments().CountReplies(ctx, string(top.ID))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRatesAverage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newUser("r@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	p := newPost(u.ID)
	require.NoError(t, s.Posts().CreatePost(ctx, p))

	avg, err := s.Rates().AverageRateByPost(ctx, string(p.ID))
	require.NoError(t, err)
	require.Zero(t, avg)

	for _, score := range []int{3, 5} {
		require.NoError(t, s.Rates().CreateRate(ctx, domain.Rate{
			ID: idx.New(), PostID: p.ID, UserID: u.ID, Rate: score, CreatedAt: time.Now().UTC(),
		}))
	}

	avg, err = s.Rates().AverageRateByPost(ctx, string(p.ID))
	require.NoError(t, err)
	require.InDelta(t, 4.0, avg, 0.001)

	rates, err := s.Rates().ListRatesByPost(ctx, string(p.ID))
	require.NoError(t, err)
	require.Len(t, rates, 2)
}

func TestWishlistUniqueAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newUser("w@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))
	p := newPost(u.ID)
	require.NoError(t, s.Posts().CreatePost(ctx, p))

	item := domain.WishlistItem{ID: idx.New(), UserID: u.ID, PostID: p.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Wishlists().CreateWishlistItem(ctx, item))

	dup := domain.WishlistItem{ID: idx.New(), UserID: u.ID, PostID: p.ID, CreatedAt: time.Now().UTC()}
	require.ErrorIs(t, s.Wishlists().CreateWishlistItem(ctx, dup), store.ErrAlreadyExists)

	items, err := s.Wishlists().ListWishlistByUser(ctx, string(u.ID), 20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Post)
	require.Equal(t, "banh mi", items[0].Post.FoodName)

	n, err := s.Wishlists().ClearWishlist(ctx, string(u.ID))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRevokedTokenLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	revoked, err := s.RevokedTokens().IsTokenRevoked(ctx, "tok")
	require.NoError(t, err)
	require.False(t, revoked)

	entry := domain.RevokedToken{
		Token:     "tok",
		UserID:    "u1",
		Kind:      domain.TokenKindAccess,
		ExpiresAt: time.Now().Add(-time.Hour).UTC(),
		RevokedAt: time.Now().UTC(),
	}
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, entry))
	// Revoking twice is a no-op.
	require.NoError(t, s.RevokedTokens().RevokeToken(ctx, entry))

	revoked, err = s.RevokedTokens().IsTokenRevoked(ctx, "tok")
	require.NoError(t, err)
	require.True(t, revoked)

	n, err := s.RevokedTokens().DeleteExpiredRevocations(ctx, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	revoked, err = s.RevokedTokens().IsTokenRevoked(ctx, "tok")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := newUser("tx@example.com")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return context.Canceled
	})
	require.Error(t, err)

	_, err = s.Users().GetUserByID(ctx, string(u.ID))
	require.ErrorIs(t, err, store.ErrNotFound)
}
