package service

import (
	"context"
	"errors"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

var (
	ErrReportTypeTaken    = errors.New("report_type_taken")
	ErrReportTypeInactive = errors.New("report_type_inactive")
)

type ReportService struct {
	Store store.Store
}

// ListReportTypes is paginated like every other list.
func (s *ReportService) ListReportTypes(ctx context.Context, limit, offset int) ([]domain.ReportType, int, error) {
	types, err := s.Store.ReportTypes().ListReportTypes(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.ReportTypes().CountReportTypes(ctx)
	if err != nil {
		return nil, 0, err
	}
	return types, total, nil
}

func (s *ReportService) CreateReportType(ctx context.Context, name, description string) (domain.ReportType, error) {
	now := time.Now().UTC()
	rt := domain.ReportType{
		ID:          idx.New(),
		Name:        name,
		Description: description,
		Status:      domain.ReportTypeActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.ReportTypes().CreateReportType(ctx, rt); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ReportType{}, ErrReportTypeTaken
		}
		return domain.ReportType{}, err
	}
	return rt, nil
}

func (s *ReportService) UpdateReportType(ctx context.Context, id string, name, description, status *string) (domain.ReportType, error) {
	if status != nil && *status != domain.ReportTypeActive && *status != domain.ReportTypeInactive {
		return domain.ReportType{}, ErrInvalidStatus
	}
	if err := s.Store.ReportTypes().UpdateReportType(ctx, id, name, description, status); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ReportType{}, ErrReportTypeTaken
		}
		return domain.ReportType{}, err
	}
	return s.Store.ReportTypes().GetReportTypeByID(ctx, id)
}

func (s *ReportService) DeleteReportType(ctx context.Context, id string) error {
	return s.Store.ReportTypes().DeleteReportType(ctx, id)
}

// ListReports is the moderation queue: reports joined with reporter, post
// and reason.
func (s *ReportService) ListReports(ctx context.Context, limit, offset int) ([]domain.ReportDetail, int, error) {
	reports, err := s.Store.Reports().ListReports(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Reports().CountReports(ctx)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// CreateReport files a report. The post and report type must exist, and the
// type must still be active.
func (s *ReportService) CreateReport(ctx context.Context, userID string, postID, reportTypeID idx.ID, note string) (domain.Report, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, string(postID)); err != nil {
		return domain.Report{}, err
	}
	rt, err := s.Store.ReportTypes().GetReportTypeByID(ctx, string(reportTypeID))
	if err != nil {
		return domain.Report{}, err
	}
	if rt.Status != domain.ReportTypeActive {
		return domain.Report{}, ErrReportTypeInactive
	}

	report := domain.Report{
		ID:           idx.New(),
		PostID:       postID,
		UserID:       idx.ID(userID),
		ReportTypeID: reportTypeID,
		Note:         note,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Reports().CreateReport(ctx, report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}
