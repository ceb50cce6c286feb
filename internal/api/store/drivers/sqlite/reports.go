package sqlite

import (
	"context"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type reportsRepo struct {
	db dbtx
}

func (r *reportsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (id, post_id, user_id, report_type_id, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(rep.ID), string(rep.PostID), string(rep.UserID),
		string(rep.ReportTypeID), rep.Note, rep.CreatedAt)
	return err
}

func (r *reportsRepo) ListReports(ctx context.Context, limit, offset int) ([]domain.ReportDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rep.id, rep.post_id, rep.user_id, rep.report_type_id, rep.note, rep.created_at,
			u.user_name, p.food_name, rt.name
		FROM reports rep
		JOIN users u ON u.id = rep.user_id
		JOIN posts p ON p.id = rep.post_id
		JOIN report_types rt ON rt.id = rep.report_type_id
		ORDER BY rep.created_at DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.ReportDetail
	for rows.Next() {
		var (
			d                 domain.ReportDetail
			id, pid, uid, rti string
		)
		if err := rows.Scan(&id, &pid, &uid, &rti, &d.Note, &d.CreatedAt,
			&d.ReporterName, &d.PostFoodName, &d.ReportTypeName); err != nil {
			return nil, err
		}
		d.ID = idx.ID(id)
		d.PostID = idx.ID(pid)
		d.UserID = idx.ID(uid)
		d.ReportTypeID = idx.ID(rti)
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *reportsRepo) CountReports(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports`).Scan(&n)
	return n, err
}
