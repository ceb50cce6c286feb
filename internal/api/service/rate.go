package service

import (
	"context"
	"errors"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

var ErrInvalidRate = errors.New("invalid_rate")

type RateService struct {
	Store store.Store
}

// ListByPost returns every rating for a post plus the running average.
func (s *RateService) ListByPost(ctx context.Context, postID string) (domain.RateSummary, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		return domain.RateSummary{}, err
	}

	rates, err := s.Store.Rates().ListRatesByPost(ctx, postID)
	if err != nil {
		return domain.RateSummary{}, err
	}
	avg, err := s.Store.Rates().AverageRateByPost(ctx, postID)
	if err != nil {
		return domain.RateSummary{}, err
	}
	return domain.RateSummary{Rates: rates, Average: avg}, nil
}

// Create records a rating. The score must sit in [1,5] and the post must
// exist; the rater's identity comes from the verified token, never the body.
func (s *RateService) Create(ctx context.Context, userID string, postID idx.ID, score int) (domain.Rate, error) {
	if score < 1 || score > 5 {
		return domain.Rate{}, ErrInvalidRate
	}
	if _, err := s.Store.Posts().GetPostByID(ctx, string(postID)); err != nil {
		return domain.Rate{}, err
	}

	rate := domain.Rate{
		ID:        idx.New(),
		PostID:    postID,
		UserID:    idx.ID(userID),
		Rate:      score,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Rates().CreateRate(ctx, rate); err != nil {
		return domain.Rate{}, err
	}
	return rate, nil
}
