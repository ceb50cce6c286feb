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

var ErrInvalidStatus = errors.New("invalid_status")

type PostService struct {
	Store store.Store
}

// PostCreateParams carries the author-supplied fields of a new review.
// Status is not here: every post starts pending.
type PostCreateParams struct {
	FoodName    string
	Position    string
	Province    string
	Maps        *domain.GeoPoint
	Description string
	Thumbnail   string
	Images      []string
	Videos      []string
	Hashtags    []string
	CategoryIDs []idx.ID
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]domain.Post, int, error) {
	posts, err := s.Store.Posts().ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Posts().CountPosts(ctx)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) Get(ctx context.Context, id string) (domain.Post, error) {
	return s.Store.Posts().GetPostByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, authorID string, params PostCreateParams) (domain.Post, error) {
	now := time.Now().UTC()

	post := domain.Post{
		ID:          idx.New(),
		UserID:      idx.ID(authorID),
		FoodName:    params.FoodName,
		Position:    params.Position,
		Province:    params.Province,
		Maps:        params.Maps,
		Description: params.Description,
		Thumbnail:   params.Thumbnail,
		Images:      params.Images,
		Videos:      params.Videos,
		Hashtags:    params.Hashtags,
		Status:      domain.PostStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, cid := range params.CategoryIDs {
		cat, err := s.Store.Categories().GetCategoryByID(ctx, string(cid))
		if err != nil {
			return domain.Post{}, err
		}
		post.Categories = append(post.Categories, cat)
	}

	if err := s.Store.Posts().CreatePost(ctx, post); err != nil {
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post created",
		slog.String("post_id", string(post.ID)), slog.String("user_id", authorID))

	return s.Store.Posts().GetPostByID(ctx, string(post.ID))
}

// Update applies an edit. Only the author or an admin may change a post.
func (s *PostService) Update(ctx context.Context, actorID, actorRole, id string, upd domain.PostUpdate) (domain.Post, error) {
	post, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if string(post.UserID) != actorID && actorRole != domain.RoleAdmin {
		return domain.Post{}, ErrForbidden
	}

	if err := s.Store.Posts().UpdatePost(ctx, id, upd); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

// UpdateStatus moves a post through moderation. The route guard restricts
// this to admins and subadmins; the service validates the target status.
func (s *PostService) UpdateStatus(ctx context.Context, id, status string) (domain.Post, error) {
	if !domain.ValidPostStatus(status) {
		return domain.Post{}, ErrInvalidStatus
	}
	if err := s.Store.Posts().UpdatePostStatus(ctx, id, status); err != nil {
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post status changed",
		slog.String("post_id", id), slog.String("status", status))

	return s.Store.Posts().GetPostByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, actorID, actorRole, id string) error {
	post, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	if string(post.UserID) != actorID && actorRole != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.Store.Posts().DeletePost(ctx, id)
}
