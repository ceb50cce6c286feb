package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type WishlistHandler struct {
	WishlistService *service.WishlistService
}

// HandleList returns the caller's wishlist with posts attached.
//
//	@Summary	List the wishlist
//	@Tags		Wishlist
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope
//	@Router		/api/v1/wishlist [get].
func (h *WishlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, limit, offset := parsePagination(r)

	items, total, err := h.WishlistService.List(ctx, httpx.UserIDFrom(ctx), limit, offset)
	if err != nil {
		writeServiceError(w, r, "wishlist", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(items, "Get wishlist successfully", pageMeta(total, page, limit)))
}

type wishlistCreateRequest struct {
	PostID string `json:"post_id"`
}

// HandleCreate saves a post for later.
//
//	@Summary	Add a post to the wishlist
//	@Tags		Wishlist
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		wishlistCreateRequest	true	"Post to save"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/wishlist/create [post].
func (h *WishlistHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req wishlistCreateRequest
	if !decodeJSON(w, r, "wishlist", &req) {
		return
	}
	if !requireFields(w, "wishlist", map[string]string{"post_id": req.PostID}) {
		return
	}

	item, err := h.WishlistService.Add(ctx, httpx.UserIDFrom(ctx), idx.ID(req.PostID))
	if err != nil {
		writeServiceError(w, r, "wishlist", err)
		return
	}

	httpx.Write(w, httpx.Success(item, "Add to wishlist successfully"))
}

// HandleDelete removes one saved post. Strictly owner-only.
//
//	@Summary	Remove a wishlist entry
//	@Tags		Wishlist
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Wishlist entry id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	403	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/wishlist/delete/{id} [delete].
func (h *WishlistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.WishlistService.Remove(ctx, httpx.UserIDFrom(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "wishlist", err)
		return
	}
	httpx.Write(w, httpx.Success(nil, "Remove from wishlist successfully"))
}

type wishlistClearResponse struct {
	Deleted int `json:"deleted"`
}

// HandleClear wipes the caller's wishlist.
//
//	@Summary	Clear the wishlist
//	@Tags		Wishlist
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope
//	@Router		/api/v1/wishlist/clear [delete].
func (h *WishlistHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.WishlistService.Clear(ctx, httpx.UserIDFrom(ctx))
	if err != nil {
		writeServiceError(w, r, "wishlist", err)
		return
	}

	httpx.Write(w, httpx.Success(wishlistClearResponse{Deleted: n}, "Clear wishlist successfully"))
}
