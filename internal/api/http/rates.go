package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type RateHandler struct {
	RateService *service.RateService
}

// HandleListByPost returns a post's ratings plus the average.
//
//	@Summary	List ratings for a post
//	@Tags		Rates
//	@Produce	json
//	@Param		postId	path		string	true	"Post id"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/rate/{postId} [get].
func (h *RateHandler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	summary, err := h.RateService.ListByPost(r.Context(), r.PathValue("postId"))
	if err != nil {
		writeServiceError(w, r, "rate", err)
		return
	}
	httpx.Write(w, httpx.Success(summary, "Get rates successfully"))
}

type rateCreateRequest struct {
	PostID string `json:"post_id"`
	Rate   int    `json:"rate"`
}

// HandleCreate records a rating. The rater is the verified caller.
//
//	@Summary	Rate a post
//	@Tags		Rates
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		rateCreateRequest	true	"Rating"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/rate/create [post].
func (h *RateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rateCreateRequest
	if !decodeJSON(w, r, "rate", &req) {
		return
	}
	if !requireFields(w, "rate", map[string]string{"post_id": req.PostID}) {
		return
	}

	rate, err := h.RateService.Create(ctx, httpx.UserIDFrom(ctx), idx.ID(req.PostID), req.Rate)
	if err != nil {
		writeServiceError(w, r, "rate", err)
		return
	}

	httpx.Write(w, httpx.Success(rate, "Create rate successfully"))
}
