package service

import (
	"context"
	"log/slog"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/cryptox"
	"github.com/angicungduoc/foodreview/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// UserUpdateParams is what a profile update request may carry. The password
// arrives in plaintext and is hashed here.
type UserUpdateParams struct {
	UserName    *string
	Avatar      *string
	Bio         *string
	SocialLinks []string
	Password    *string
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	users, err := s.Store.Users().ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// Update applies a profile update. Only the account owner or an admin may
// touch a profile.
func (s *UserService) Update(ctx context.Context, actorID, actorRole, id string, params UserUpdateParams) (domain.User, error) {
	if actorID != id && actorRole != domain.RoleAdmin {
		return domain.User{}, ErrForbidden
	}

	upd := domain.UserUpdate{
		UserName:    params.UserName,
		Avatar:      params.Avatar,
		Bio:         params.Bio,
		SocialLinks: params.SocialLinks,
	}

	if params.Password != nil {
		hash, err := cryptox.HashPassword(*params.Password)
		if err != nil {
			return domain.User{}, err
		}
		upd.PasswordHash = &hash
	}

	if err := s.Store.Users().UpdateUser(ctx, id, upd); err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user updated",
		slog.String("user_id", id), slog.String("actor_id", actorID))

	return s.Store.Users().GetUserByID(ctx, id)
}

// Delete removes an account. Admin only; the route guard enforces that, the
// service just does the work.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("user deleted", slog.String("user_id", id))
	return nil
}
