package sqlite

import (
	"context"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type ratesRepo struct {
	db dbtx
}

func (r *ratesRepo) CreateRate(ctx context.Context, rate domain.Rate) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rates (id, post_id, user_id, rate, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		string(rate.ID), string(rate.PostID), string(rate.UserID), rate.Rate, rate.CreatedAt)
	return err
}

func (r *ratesRepo) ListRatesByPost(ctx context.Context, postID string) ([]domain.Rate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, post_id, user_id, rate, created_at
		FROM rates
		WHERE post_id = ?
		ORDER BY created_at DESC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.Rate
	for rows.Next() {
		var (
			rt              domain.Rate
			id, pid, userID string
		)
		if err := rows.Scan(&id, &pid, &userID, &rt.Rate, &rt.CreatedAt); err != nil {
			return nil, err
		}
		rt.ID = idx.ID(id)
		rt.PostID = idx.ID(pid)
		rt.UserID = idx.ID(userID)
		rates = append(rates, rt)
	}
	return rates, rows.Err()
}

func (r *ratesRepo) AverageRateByPost(ctx context.Context, postID string) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rate), 0) FROM rates WHERE post_id = ?`, postID).Scan(&avg)
	return avg, err
}
