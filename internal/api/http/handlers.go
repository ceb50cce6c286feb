// Package http wires the REST surface: routing, request decoding, and the
// translation of service errors into result envelopes.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/slogx"
)

// Pagination defaults shared by every list endpoint.
const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// decodeJSON parses the request body into dst, writing a 400 envelope when
// it can't. Returns false when the caller should bail.
func decodeJSON(w http.ResponseWriter, r *http.Request, source string, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.Write(w, httpx.Error(httpx.BadRequest(source, "invalid request body")))
		return false
	}
	return true
}

// requireFields is the generic field-presence guard: every named field must
// be non-empty or the request dies with a 400 naming the first gap.
func requireFields(w http.ResponseWriter, source string, fields map[string]string) bool {
	for name, value := range fields {
		if value == "" {
			httpx.Write(w, httpx.Error(httpx.BadRequest(source, name+" is required")))
			return false
		}
	}
	return true
}

// parsePagination reads ?page and ?limit with the service-wide defaults.
func parsePagination(r *http.Request) (page, limit, offset int) {
	page = defaultPage
	limit = defaultLimit

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = min(v, maxLimit)
	}
	return page, limit, (page - 1) * limit
}

// pageMeta builds the pagination meta block for list envelopes.
func pageMeta(total, page, limit int) httpx.Meta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return httpx.Meta{Total: total, CurrentPage: page, TotalPages: totalPages}
}

// writeServiceError maps service sentinels onto the error taxonomy. The
// client gets a stable detail string; the real cause goes to the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, source string, err error) {
	var detail httpx.ErrorDetail

	switch {
	case errors.Is(err, store.ErrNotFound):
		detail = httpx.NotFound(source, source+" not found")
	case errors.Is(err, service.ErrForbidden):
		detail = httpx.Forbidden(source, "insufficient permissions")
	case errors.Is(err, service.ErrInvalidCredentials):
		detail = httpx.Unauthorized(source, "invalid email or password")
	case errors.Is(err, service.ErrInvalidRefresh):
		detail = httpx.Unauthorized(source, "invalid refresh token")
	case errors.Is(err, service.ErrEmailTaken):
		detail = httpx.BadRequest(source, "email is already registered")
	case errors.Is(err, service.ErrCategoryTaken):
		detail = httpx.BadRequest(source, "category name is already taken")
	case errors.Is(err, service.ErrReportTypeTaken):
		detail = httpx.BadRequest(source, "report type name is already taken")
	case errors.Is(err, service.ErrReportTypeInactive):
		detail = httpx.BadRequest(source, "report type is inactive")
	case errors.Is(err, service.ErrAlreadyWishlisted):
		detail = httpx.BadRequest(source, "post is already in the wishlist")
	case errors.Is(err, service.ErrInvalidRate):
		detail = httpx.BadRequest(source, "rate must be between 1 and 5")
	case errors.Is(err, service.ErrInvalidStatus):
		detail = httpx.BadRequest(source, "invalid status")
	case errors.Is(err, service.ErrInvalidParent):
		detail = httpx.BadRequest(source, "invalid parent comment")
	case errors.Is(err, service.ErrFileTooLarge):
		detail = httpx.BadRequest(source, "file exceeds the size limit")
	case errors.Is(err, service.ErrUnsupportedFile):
		detail = httpx.BadRequest(source, "unsupported file type")
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error",
			"source", source, "error", err)
		detail = httpx.InternalError(source, "unexpected error")
	}

	httpx.Write(w, httpx.Error(detail))
}
