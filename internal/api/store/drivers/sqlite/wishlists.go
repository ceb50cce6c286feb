package sqlite

import (
	"context"
	"database/sql"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type wishlistsRepo struct {
	db dbtx
}

func (r *wishlistsRepo) CreateWishlistItem(ctx context.Context, w domain.WishlistItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlists (id, user_id, post_id, created_at)
		VALUES (?, ?, ?, ?)`,
		string(w.ID), string(w.UserID), string(w.PostID), w.CreatedAt)
	return mapConflict(err)
}

func (r *wishlistsRepo) GetWishlistItemByID(ctx context.Context, id string) (domain.WishlistItem, error) {
	var (
		w             domain.WishlistItem
		wid, uid, pid string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, post_id, created_at FROM wishlists WHERE id = ?`, id).
		Scan(&wid, &uid, &pid, &w.CreatedAt)
	if err != nil {
		return domain.WishlistItem{}, mapNotFound(err)
	}
	w.ID = idx.ID(wid)
	w.UserID = idx.ID(uid)
	w.PostID = idx.ID(pid)
	return w, nil
}

func (r *wishlistsRepo) ListWishlistByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, w.user_id, w.post_id, w.created_at,
			p.id, p.user_id, p.food_name, p.position, p.province, p.latitude, p.longitude,
			p.description, p.thumbnail, p.images, p.videos, p.hashtags, p.status,
			p.created_at, p.updated_at
		FROM wishlists w
		JOIN posts p ON p.id = w.post_id
		WHERE w.user_id = ?
		ORDER BY w.created_at DESC
		LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.WishlistItem
	for rows.Next() {
		item, err := scanWishlistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *wishlistsRepo) CountWishlistByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM wishlists WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

func (r *wishlistsRepo) DeleteWishlistItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wishlists WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *wishlistsRepo) ClearWishlist(ctx context.Context, userID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wishlists WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// scanWishlistItem reads a wishlist row joined with its post. The wishlist
// columns come first, then the full post row.
func scanWishlistItem(row rowScanner) (domain.WishlistItem, error) {
	var (
		w                        domain.WishlistItem
		p                        domain.Post
		wid, uid, pid            string
		postID, postUserID       string
		lat, lng                 sql.NullFloat64
		thumbnail                sql.NullString
		images, videos, hashtags string
	)

	err := row.Scan(&wid, &uid, &pid, &w.CreatedAt,
		&postID, &postUserID, &p.FoodName, &p.Position, &p.Province, &lat, &lng,
		&p.Description, &thumbnail, &images, &videos, &hashtags, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.WishlistItem{}, mapNotFound(err)
	}

	w.ID = idx.ID(wid)
	w.UserID = idx.ID(uid)
	w.PostID = idx.ID(pid)
	p.ID = idx.ID(postID)
	p.UserID = idx.ID(postUserID)
	if lat.Valid && lng.Valid {
		p.Maps = &domain.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	p.Thumbnail = mapNullString(thumbnail)
	p.Images = splitList(images)
	p.Videos = splitList(videos)
	p.Hashtags = splitList(hashtags)
	w.Post = &p
	return w, nil
}
