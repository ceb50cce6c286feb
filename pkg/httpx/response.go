// Package httpx holds the request-authentication pipeline and the uniform
// result envelope every business operation reports through.
package httpx

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorDetail classifies a failure for the client. Detail carries a stable
// message; the underlying cause only ever goes to the log.
type ErrorDetail struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Source string `json:"source"`
}

// Meta carries pagination info for list results.
type Meta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// Envelope is the uniform result contract. Exactly one of Data/Errors is
// set; the constructors below are the only way handlers build one.
type Envelope struct {
	Status  string
	Message string
	Data    any
	Meta    *Meta
	Errors  *ErrorDetail
}

// Success builds a success envelope.
func Success(data any, message string) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}

// SuccessWithMeta builds a success envelope for a paginated list.
func SuccessWithMeta(data any, message string, meta Meta) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data, Meta: &meta}
}

// Error builds an error envelope.
func Error(detail ErrorDetail) Envelope {
	return Envelope{Status: StatusError, Errors: &detail}
}

// IsError reports whether the envelope carries an error.
func (e Envelope) IsError() bool { return e.Errors != nil }

// HTTPStatus applies the translation rule: recognized error statuses render
// as themselves, anything else errors as 500, success as 200.
func (e Envelope) HTTPStatus() int {
	if e.Errors == nil {
		return http.StatusOK
	}
	switch e.Errors.Status {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests:
		return e.Errors.Status
	default:
		return http.StatusInternalServerError
	}
}

// MarshalJSON renders the wire shape: error envelopes are {status, errors},
// success envelopes are {status, message, data, meta?}.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Errors != nil {
		return json.Marshal(struct {
			Status string       `json:"status"`
			Errors *ErrorDetail `json:"errors"`
		}{e.Status, e.Errors})
	}
	return json.Marshal(struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
		Data    any    `json:"data"`
		Meta    *Meta  `json:"meta,omitempty"`
	}{e.Status, e.Message, e.Data, e.Meta})
}

// Write renders the envelope with its mapped HTTP status.
func Write(w http.ResponseWriter, e Envelope) {
	WriteJSON(w, e.HTTPStatus(), e)
}

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache prevents caching of responses, required for anything carrying
// tokens or user data.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// Canned detail constructors matching the error taxonomy.

func BadRequest(source, detail string) ErrorDetail {
	return ErrorDetail{Status: http.StatusBadRequest, Title: "Bad Request", Detail: detail, Source: source}
}

func Unauthorized(source, detail string) ErrorDetail {
	return ErrorDetail{Status: http.StatusUnauthorized, Title: "Unauthorized", Detail: detail, Source: source}
}

func Forbidden(source, detail string) ErrorDetail {
	return ErrorDetail{Status: http.StatusForbidden, Title: "Forbidden", Detail: detail, Source: source}
}

func NotFound(source, detail string) ErrorDetail {
	return ErrorDetail{Status: http.StatusNotFound, Title: "Not Found", Detail: detail, Source: source}
}

func InternalError(source, detail string) ErrorDetail {
	return ErrorDetail{Status: http.StatusInternalServerError, Title: "Internal Server Error", Detail: detail, Source: source}
}
