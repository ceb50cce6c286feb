package service

import (
	"context"
	"errors"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

var ErrCategoryTaken = errors.New("category_taken")

type CategoryService struct {
	Store store.Store
}

func (s *CategoryService) List(ctx context.Context, limit, offset int) ([]domain.Category, int, error) {
	cats, err := s.Store.Categories().ListCategories(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Categories().CountCategories(ctx)
	if err != nil {
		return nil, 0, err
	}
	return cats, total, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (domain.Category, error) {
	return s.Store.Categories().GetCategoryByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (domain.Category, error) {
	now := time.Now().UTC()
	cat := domain.Category{
		ID:           idx.New(),
		CategoryName: name,
		Description:  description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Categories().CreateCategory(ctx, cat); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrCategoryTaken
		}
		return domain.Category{}, err
	}
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, name, description *string) (domain.Category, error) {
	if err := s.Store.Categories().UpdateCategory(ctx, id, name, description); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, ErrCategoryTaken
		}
		return domain.Category{}, err
	}
	return s.Store.Categories().GetCategoryByID(ctx, id)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.Store.Categories().DeleteCategory(ctx, id)
}
