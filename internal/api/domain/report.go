package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// Report type lifecycle.
const (
	ReportTypeActive   = "active"
	ReportTypeInactive = "inactive"
)

// ReportType is an admin-managed reason a post can be reported for.
type ReportType struct {
	ID          idx.ID    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Report is a user flagging a post.
type Report struct {
	ID           idx.ID    `json:"id"`
	PostID       idx.ID    `json:"post_id"`
	UserID       idx.ID    `json:"user_id"`
	ReportTypeID idx.ID    `json:"report_type_id"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportDetail is the admin list view: the report joined with who filed it,
// what it targets, and why.
type ReportDetail struct {
	Report
	ReporterName   string `json:"reporter_name"`
	PostFoodName   string `json:"post_food_name"`
	ReportTypeName string `json:"report_type_name"`
}
