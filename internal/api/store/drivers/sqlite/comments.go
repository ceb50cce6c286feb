package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type commentsRepo struct {
	db dbtx
}

const commentColumns = `id, post_id, user_id, parent_id, reply_to_user_id,
	content, images, videos, created_at, updated_at`

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	var parentID, replyTo sql.NullString
	if c.ParentID != nil {
		parentID = sql.NullString{String: string(*c.ParentID), Valid: true}
	}
	if c.ReplyToUserID != nil {
		replyTo = sql.NullString{String: string(*c.ReplyToUserID), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO comments (`+commentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(c.ID), string(c.PostID), string(c.UserID), parentID, replyTo,
		c.Content, joinList(c.Images), joinList(c.Videos), c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *commentsRepo) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+commentColumns+`, 0 AS reply_count FROM comments WHERE id = ?`, id)
	return scanComment(row)
}

func (r *commentsRepo) ListTopLevelByPost(ctx context.Context, postID string, limit, offset int) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.post_id, c.user_id, c.parent_id, c.reply_to_user_id,
			c.content, c.images, c.videos, c.created_at, c.updated_at,
			(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id) AS reply_count
		FROM comments c
		WHERE c.post_id = ? AND c.parent_id IS NULL
		ORDER BY c.created_at DESC
		LIMIT ? OFFSET ?`, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *commentsRepo) CountTopLevelByPost(ctx context.Context, postID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM comments WHERE post_id = ? AND parent_id IS NULL`, postID).Scan(&n)
	return n, err
}

func (r *commentsRepo) ListReplies(ctx context.Context, parentID string, limit, offset int) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+commentColumns+`, 0 AS reply_count
		FROM comments
		WHERE parent_id = ?
		ORDER BY created_at ASC
		LIMIT ? OFFSET ?`, parentID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *commentsRepo) CountReplies(ctx context.Context, parentID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM comments WHERE parent_id = ?`, parentID).Scan(&n)
	return n, err
}

func (r *commentsRepo) UpdateCommentContent(ctx context.Context, id string, content string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE comments SET content = ?, updated_at = ? WHERE id = ?`,
		content, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *commentsRepo) DeleteComment(ctx context.Context, id string) error {
	// Replies cascade via the parent_id FK.
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func collectComments(rows *sql.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func scanComment(row rowScanner) (domain.Comment, error) {
	var (
		c                 domain.Comment
		id, postID, uid   string
		parentID, replyTo sql.NullString
		images, videos    string
	)
	err := row.Scan(&id, &postID, &uid, &parentID, &replyTo,
		&c.Content, &images, &videos, &c.CreatedAt, &c.UpdatedAt, &c.ReplyCount)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	c.ID = idx.ID(id)
	c.PostID = idx.ID(postID)
	c.UserID = idx.ID(uid)
	if parentID.Valid {
		pid := idx.ID(parentID.String)
		c.ParentID = &pid
	}
	if replyTo.Valid {
		rid := idx.ID(replyTo.String)
		c.ReplyToUserID = &rid
	}
	c.Images = splitList(images)
	c.Videos = splitList(videos)
	return c, nil
}
