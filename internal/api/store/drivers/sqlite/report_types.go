package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type reportTypesRepo struct {
	db dbtx
}

func (r *reportTypesRepo) CreateReportType(ctx context.Context, rt domain.ReportType) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO report_types (id, name, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(rt.ID), rt.Name, mapStringNull(rt.Description), rt.Status, rt.CreatedAt, rt.UpdatedAt)
	return mapConflict(err)
}

func (r *reportTypesRepo) GetReportTypeByID(ctx context.Context, id string) (domain.ReportType, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, status, created_at, updated_at
		FROM report_types WHERE id = ?`, id)
	return scanReportType(row)
}

func (r *reportTypesRepo) ListReportTypes(ctx context.Context, limit, offset int) ([]domain.ReportType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, status, created_at, updated_at
		FROM report_types
		ORDER BY name
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.ReportType
	for rows.Next() {
		rt, err := scanReportType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, rows.Err()
}

func (r *reportTypesRepo) CountReportTypes(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM report_types`).Scan(&n)
	return n, err
}

func (r *reportTypesRepo) UpdateReportType(ctx context.Context, id string, name, description, status *string) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if description != nil {
		sets = append(sets, "description = ?")
		args = append(args, mapOptionalString(description))
	}
	if status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *status)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx, `UPDATE report_types SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return mapConflict(err)
	}
	return requireRow(res)
}

func (r *reportTypesRepo) DeleteReportType(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM report_types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanReportType(row rowScanner) (domain.ReportType, error) {
	var (
		rt   domain.ReportType
		id   string
		desc sql.NullString
	)
	err := row.Scan(&id, &rt.Name, &desc, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return domain.ReportType{}, mapNotFound(err)
	}
	rt.ID = idx.ID(id)
	rt.Description = mapNullString(desc)
	return rt, nil
}
