package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
)

type ReportTypeHandler struct {
	ReportService *service.ReportService
}

// HandleList returns a page of report types.
//
//	@Summary	List report types
//	@Tags		Reports
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope
//	@Router		/api/v1/report-type [get].
func (h *ReportTypeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	types, total, err := h.ReportService.ListReportTypes(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, "report-type", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(types, "Get report types successfully", pageMeta(total, page, limit)))
}

type reportTypeCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreate adds a report reason. Admin only (route guard).
//
//	@Summary	Create a report type
//	@Tags		Reports
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		reportTypeCreateRequest	true	"Report type fields"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/api/v1/report-type/create [post].
func (h *ReportTypeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req reportTypeCreateRequest
	if !decodeJSON(w, r, "report-type", &req) {
		return
	}
	if !requireFields(w, "report-type", map[string]string{"name": req.Name}) {
		return
	}

	rt, err := h.ReportService.CreateReportType(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, "report-type", err)
		return
	}
	httpx.Write(w, httpx.Success(rt, "Create report type successfully"))
}

type reportTypeUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// HandleUpdate edits a report reason, including flipping it inactive.
//
//	@Summary	Update a report type
//	@Tags		Reports
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Report type id"
//	@Param		body	body		reportTypeUpdateRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/report-type/update/{id} [patch].
func (h *ReportTypeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req reportTypeUpdateRequest
	if !decodeJSON(w, r, "report-type", &req) {
		return
	}

	rt, err := h.ReportService.UpdateReportType(r.Context(), r.PathValue("id"), req.Name, req.Description, req.Status)
	if err != nil {
		writeServiceError(w, r, "report-type", err)
		return
	}
	httpx.Write(w, httpx.Success(rt, "Update report type successfully"))
}

// HandleDelete removes a report reason.
//
//	@Summary	Delete a report type
//	@Tags		Reports
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Report type id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/report-type/delete/{id} [delete].
func (h *ReportTypeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ReportService.DeleteReportType(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, "report-type", err)
		return
	}
	httpx.Write(w, httpx.Success(nil, "Delete report type successfully"))
}
