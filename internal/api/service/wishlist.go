package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/idx"
	"github.com/angicungduoc/foodreview/pkg/slogx"
)

var ErrAlreadyWishlisted = errors.New("already_wishlisted")

type WishlistService struct {
	Store store.Store
}

func (s *WishlistService) List(ctx context.Context, userID string, limit, offset int) ([]domain.WishlistItem, int, error) {
	items, err := s.Store.Wishlists().ListWishlistByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Wishlists().CountWishlistByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *WishlistService) Add(ctx context.Context, userID string, postID idx.ID) (domain.WishlistItem, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, string(postID)); err != nil {
		return domain.WishlistItem{}, err
	}

	item := domain.WishlistItem{
		ID:        idx.New(),
		UserID:    idx.ID(userID),
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Wishlists().CreateWishlistItem(ctx, item); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.WishlistItem{}, ErrAlreadyWishlisted
		}
		return domain.WishlistItem{}, err
	}
	return item, nil
}

// Remove deletes a wishlist entry. Strictly owner-only: even admins have no
// business editing someone else's wishlist.
func (s *WishlistService) Remove(ctx context.Context, userID, id string) error {
	item, err := s.Store.Wishlists().GetWishlistItemByID(ctx, id)
	if err != nil {
		return err
	}
	if string(item.UserID) != userID {
		return ErrForbidden
	}
	return s.Store.Wishlists().DeleteWishlistItem(ctx, id)
}

// Clear wipes the caller's wishlist and reports how many entries went away.
func (s *WishlistService) Clear(ctx context.Context, userID string) (int, error) {
	n, err := s.Store.Wishlists().ClearWishlist(ctx, userID)
	if err != nil {
		return 0, err
	}
	slogx.FromContext(ctx).Info("wishlist cleared",
		slog.String("user_id", userID), slog.Int("deleted", n))
	return n, nil
}
