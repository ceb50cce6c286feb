package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type postsRepo struct {
	db dbtx
}

const postColumns = `id, user_id, food_name, position, province, latitude, longitude,
	description, thumbnail, images, videos, hashtags, status, created_at, updated_at`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	var lat, lng sql.NullFloat64
	if p.Maps != nil {
		lat = sql.NullFloat64{Float64: p.Maps.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: p.Maps.Longitude, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(p.ID), string(p.UserID), p.FoodName, p.Position, p.Province,
		lat, lng, p.Description, mapStringNull(p.Thumbnail),
		joinList(p.Images), joinList(p.Videos), joinList(p.Hashtags),
		p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}

	for _, c := range p.Categories {
		if err := r.linkCategory(ctx, string(p.ID), string(c.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (r *postsRepo) linkCategory(ctx context.Context, postID, categoryID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO post_categories (post_id, category_id) VALUES (?, ?)`,
		postID, categoryID)
	return err
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if err != nil {
		return domain.Post{}, err
	}

	posts := []domain.Post{p}
	if err := r.attachCategories(ctx, posts); err != nil {
		return domain.Post{}, err
	}
	return posts[0], nil
}

func (r *postsRepo) ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+postColumns+` FROM posts
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachCategories(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// attachCategories fills in the categories for a batch of posts with a
// single join query instead of one per post.
func (r *postsRepo) attachCategories(ctx context.Context, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	placeholders := make([]string, len(posts))
	args := make([]any, len(posts))
	index := make(map[string]*domain.Post, len(posts))
	for i := range posts {
		placeholders[i] = "?"
		args[i] = string(posts[i].ID)
		index[string(posts[i].ID)] = &posts[i]
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT pc.post_id, c.id, c.category_name, c.description, c.created_at, c.updated_at
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY c.category_name`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID string
			id     string
			c      domain.Category
			desc   sql.NullString
		)
		if err := rows.Scan(&postID, &id, &c.CategoryName, &desc, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		c.ID = idx.ID(id)
		c.Description = mapNullString(desc)
		if p, ok := index[postID]; ok {
			p.Categories = append(p.Categories, c)
		}
	}
	return rows.Err()
}

func (r *postsRepo) CountPosts(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

func (r *postsRepo) UpdatePost(ctx context.Context, id string, upd domain.PostUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if upd.FoodName != nil {
		sets = append(sets, "food_name = ?")
		args = append(args, *upd.FoodName)
	}
	if upd.Position != nil {
		sets = append(sets, "position = ?")
		args = append(args, *upd.Position)
	}
	if upd.Province != nil {
		sets = append(sets, "province = ?")
		args = append(args, *upd.Province)
	}
	if upd.Maps != nil {
		sets = append(sets, "latitude = ?", "longitude = ?")
		args = append(args, upd.Maps.Latitude, upd.Maps.Longitude)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Thumbnail != nil {
		sets = append(sets, "thumbnail = ?")
		args = append(args, mapOptionalString(upd.Thumbnail))
	}
	if upd.Images != nil {
		sets = append(sets, "images = ?")
		args = append(args, joinList(upd.Images))
	}
	if upd.Videos != nil {
		sets = append(sets, "videos = ?")
		args = append(args, joinList(upd.Videos))
	}
	if upd.Hashtags != nil {
		sets = append(sets, "hashtags = ?")
		args = append(args, joinList(upd.Hashtags))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE posts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if upd.CategoryIDs != nil {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id = ?`, id); err != nil {
			return err
		}
		for _, cid := range upd.CategoryIDs {
			if err := r.linkCategory(ctx, id, string(cid)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *postsRepo) UpdatePostStatus(ctx context.Context, id string, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanPost(row rowScanner) (domain.Post, error) {
	var (
		p                       domain.Post
		id, userID              string
		lat, lng                sql.NullFloat64
		thumbnail               sql.NullString
		images, videos, hashtag string
	)
	err := row.Scan(&id, &userID, &p.FoodName, &p.Position, &p.Province,
		&lat, &lng, &p.Description, &thumbnail, &images, &videos, &hashtag,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	p.ID = idx.ID(id)
	p.UserID = idx.ID(userID)
	if lat.Valid && lng.Valid {
		p.Maps = &domain.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	p.Thumbnail = mapNullString(thumbnail)
	p.Images = splitList(images)
	p.Videos = splitList(videos)
	p.Hashtags = splitList(hashtag)
	return p, nil
}
