package service_test

import (
	"context"
	"testing"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, auth *service.AuthService, email string) domain.User {
	t.Helper()
	user, err := auth.Register(context.Background(), email, "correcthorse")
	require.NoError(t, err)
	return user
}

func TestPostLifecycle(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	posts := &service.PostService{Store: st}
	ctx := context.Background()

	author := registerUser(t, auth, "author@example.com")
	other := registerUser(t, auth, "other@example.com")

	post, err := posts.Create(ctx, string(author.ID), service.PostCreateParams{
		FoodName:    "mi quang",
		Province:    "Quang Nam",
		Description: "the real deal",
	})
	require.NoError(t, err)
	require.Equal(t, domain.PostStatusPending, post.Status)
	require.Equal(t, author.ID, post.UserID)

	// A stranger cannot edit or delete the post.
	name := "pho"
	_, err = posts.Update(ctx, string(other.ID), domain.RoleUser, string(post.ID), domain.PostUpdate{FoodName: &name})
	require.ErrorIs(t, err, service.ErrForbidden)
	err = posts.Delete(ctx, string(other.ID), domain.RoleUser, string(post.ID))
	require.ErrorIs(t, err, service.ErrForbidden)

	// The author can.
	updated, err := posts.Update(ctx, string(author.ID), domain.RoleUser, string(post.ID), domain.PostUpdate{FoodName: &name})
	require.NoError(t, err)
	require.Equal(t, "pho", updated.FoodName)

	// Moderation validates the target status.
	_, err = posts.UpdateStatus(ctx, string(post.ID), "published")
	require.ErrorIs(t, err, service.ErrInvalidStatus)

	approved, err := posts.UpdateStatus(ctx, string(post.ID), domain.PostStatusApproved)
	require.NoError(t, err)
	require.Equal(t, domain.PostStatusApproved, approved.Status)

	// An admin can delete someone else's post.
	err = posts.Delete(ctx, string(other.ID), domain.RoleAdmin, string(post.ID))
	require.NoError(t, err)
	_, err = posts.Get(ctx, string(post.ID))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCommentThreadFlattening(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	posts := &service.PostService{Store: st}
	comments := &service.CommentService{Store: st}
	ctx := context.Background()

	author := registerUser(t, auth, "ca@example.com")

	post, err := posts.Create(ctx, string(author.ID), service.PostCreateParams{FoodName: "bun bo"})
	require.NoError(t, err)

	top, err := comments.Create(ctx, string(author.ID), service.CommentCreateParams{
		PostID: post.ID, Content: "so good",
	})
	require.NoError(t, err)

	reply, err := comments.Create(ctx, string(author.ID), service.CommentCreateParams{
		PostID: post.ID, ParentID: &top.ID, Content: "agreed",
	})
	require.NoError(t, err)
	require.Equal(t, top.ID, *reply.ParentID)

	// Replying to a reply lands on the top-level parent.
	nested, err := comments.Create(ctx, string(author.ID), service.CommentCreateParams{
		PostID: post.ID, ParentID: &reply.ID, Content: "me too",
	})
	require.NoError(t, err)
	require.Equal(t, top.ID, *nested.ParentID)

	listed, total, err := comments.ListByPost(ctx, string(post.ID), 20, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, 2, listed[0].ReplyCount)
}

func TestRateValidation(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	posts := &service.PostService{Store: st}
	rates := &service.RateService{Store: st}
	ctx := context.Background()

	author := registerUser(t, auth, "ra@example.com")
	post, err := posts.Create(ctx, string(author.ID), service.PostCreateParams{FoodName: "com tam"})
	require.NoError(t, err)

	for _, bad := range []int{0, 6, -1} {
		_, err := rates.Create(ctx, string(author.ID), post.ID, bad)
		require.ErrorIs(t, err, service.ErrInvalidRate)
	}

	_, err = rates.Create(ctx, string(author.ID), post.ID, 4)
	require.NoError(t, err)
	_, err = rates.Create(ctx, string(author.ID), post.ID, 2)
	require.NoError(t, err)

	summary, err := rates.ListByPost(ctx, string(post.ID))
	require.NoError(t, err)
	require.Len(t, summary.Rates, 2)
	require.InDelta(t, 3.0, summary.Average, 0.001)
}

func TestWishlistOwnerOnly(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	posts := &service.PostService{Store: st}
	wishlists := &service.WishlistService{Store: st}
	ctx := context.Background()

	owner := registerUser(t, auth, "wo@example.com")
	intruder := registerUser(t, auth, "wi@example.com")

	post, err := posts.Create(ctx, string(owner.ID), service.PostCreateParams{FoodName: "goi cuon"})
	require.NoError(t, err)

	item, err := wishlists.Add(ctx, string(owner.ID), post.ID)
	require.NoError(t, err)

	_, err = wishlists.Add(ctx, string(owner.ID), post.ID)
	require.ErrorIs(t, err, service.ErrAlreadyWishlisted)

	// Someone else's delete is 403 territory, not 404.
	err = wishlists.Remove(ctx, string(intruder.ID), string(item.ID))
	require.ErrorIs(t, err, service.ErrForbidden)

	require.NoError(t, wishlists.Remove(ctx, string(owner.ID), string(item.ID)))

	n, err := wishlists.Clear(ctx, string(owner.ID))
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestReportRequiresActiveType(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	posts := &service.PostService{Store: st}
	reports := &service.ReportService{Store: st}
	ctx := context.Background()

	user := registerUser(t, auth, "rep@example.com")
	post, err := posts.Create(ctx, string(user.ID), service.PostCreateParams{FoodName: "banh xeo"})
	require.NoError(t, err)

	rt, err := reports.CreateReportType(ctx, "spam", "unsolicited ads")
	require.NoError(t, err)

	_, err = reports.CreateReport(ctx, string(user.ID), post.ID, rt.ID, "this is spam")
	require.NoError(t, err)

	inactive := domain.ReportTypeInactive
	_, err = reports.UpdateReportType(ctx, string(rt.ID), nil, nil, &inactive)
	require.NoError(t, err)

	_, err = reports.CreateReport(ctx, string(user.ID), post.ID, rt.ID, "again")
	require.ErrorIs(t, err, service.ErrReportTypeInactive)

	listed, total, err := reports.ListReports(ctx, 20, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "spam", listed[0].ReportTypeName)
	require.Equal(t, "banh xeo", listed[0].PostFoodName)
}
