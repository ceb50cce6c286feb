package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, password_hash, user_name, avatar, bio, social_links, role, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(u.ID), u.Email, u.PasswordHash, u.UserName,
		mapStringNull(u.Avatar), mapStringNull(u.Bio), joinList(u.SocialLinks),
		u.Role, u.CreatedAt, u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+` FROM users
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if upd.UserName != nil {
		sets = append(sets, "user_name = ?")
		args = append(args, *upd.UserName)
	}
	if upd.Avatar != nil {
		sets = append(sets, "avatar = ?")
		args = append(args, mapOptionalString(upd.Avatar))
	}
	if upd.Bio != nil {
		sets = append(sets, "bio = ?")
		args = append(args, mapOptionalString(upd.Bio))
	}
	if upd.SocialLinks != nil {
		sets = append(sets, "social_links = ?")
		args = append(args, joinList(upd.SocialLinks))
	}
	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u            domain.User
		id           string
		avatar, bio  sql.NullString
		socialLinks  string
	)
	err := row.Scan(&id, &u.Email, &u.PasswordHash, &u.UserName,
		&avatar, &bio, &socialLinks, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ID = idx.ID(id)
	u.Avatar = mapNullString(avatar)
	u.Bio = mapNullString(bio)
	u.SocialLinks = splitList(socialLinks)
	return u, nil
}

// requireRow turns a zero-row UPDATE/DELETE into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
