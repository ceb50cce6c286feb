package sqlite

import (
	"context"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
)

type revokedTokensRepo struct {
	db dbtx
}

func (r *revokedTokensRepo) RevokeToken(ctx context.Context, t domain.RevokedToken) error {
	// INSERT OR IGNORE makes double-logout idempotent.
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO revoked_tokens (token, user_id, kind, expires_at, revoked_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.Token, t.UserID, t.Kind, t.ExpiresAt, t.RevokedAt)
	return err
}

func (r *revokedTokensRepo) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM revoked_tokens WHERE token = ?`, token).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *revokedTokensRepo) DeleteExpiredRevocations(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM revoked_tokens WHERE expires_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
