package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type ReportHandler struct {
	ReportService *service.ReportService
}

// HandleList is the moderation queue. Admin or subadmin (route guard).
//
//	@Summary	List reports
//	@Tags		Reports
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope
//	@Router		/api/v1/report [get].
func (h *ReportHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	reports, total, err := h.ReportService.ListReports(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, "report", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(reports, "Get reports successfully", pageMeta(total, page, limit)))
}

type reportCreateRequest struct {
	PostID       string `json:"post_id"`
	ReportTypeID string `json:"report_type_id"`
	Note         string `json:"note"`
}

// HandleCreate files a report against a post.
//
//	@Summary	Report a post
//	@Tags		Reports
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		reportCreateRequest	true	"Report"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/report/create [post].
func (h *ReportHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reportCreateRequest
	if !decodeJSON(w, r, "report", &req) {
		return
	}
	if !requireFields(w, "report", map[string]string{
		"post_id":        req.PostID,
		"report_type_id": req.ReportTypeID,
	}) {
		return
	}

	report, err := h.ReportService.CreateReport(ctx, httpx.UserIDFrom(ctx),
		idx.ID(req.PostID), idx.ID(req.ReportTypeID), req.Note)
	if err != nil {
		writeServiceError(w, r, "report", err)
		return
	}

	httpx.Write(w, httpx.Success(report, "Create report successfully"))
}
