package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type categoriesRepo struct {
	db dbtx
}

func (r *categoriesRepo) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, category_name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		string(c.ID), c.CategoryName, mapStringNull(c.Description), c.CreatedAt, c.UpdatedAt)
	return mapConflict(err)
}

func (r *categoriesRepo) GetCategoryByID(ctx context.Context, id string) (domain.Category, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, category_name, description, created_at, updated_at
		FROM categories WHERE id = ?`, id)
	return scanCategory(row)
}

func (r *categoriesRepo) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category_name, description, created_at, updated_at
		FROM categories
		ORDER BY category_name
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoriesRepo) CountCategories(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n)
	return n, err
}

func (r *categoriesRepo) UpdateCategory(ctx context.Context, id string, name, description *string) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if name != nil {
		sets = append(sets, "category_name = ?")
		args = append(args, *name)
	}
	if description != nil {
		sets = append(sets, "description = ?")
		args = append(args, mapOptionalString(description))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return mapConflict(err)
	}
	return requireRow(res)
}

func (r *categoriesRepo) DeleteCategory(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanCategory(row rowScanner) (domain.Category, error) {
	var (
		c    domain.Category
		id   string
		desc sql.NullString
	)
	err := row.Scan(&id, &c.CategoryName, &desc, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	c.ID = idx.ID(id)
	c.Description = mapNullString(desc)
	return c, nil
}
