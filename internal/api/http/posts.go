package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type PostHandler struct {
	PostService *service.PostService
}

// HandleList returns a page of posts.
//
//	@Summary	List posts
//	@Tags		Posts
//	@Produce	json
//	@Param		page	query		int	false	"Page (default 1)"
//	@Param		limit	query		int	false	"Page size (default 20)"
//	@Success	200		{object}	httpx.Envelope
//	@Router		/api/v1/post [get].
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	posts, total, err := h.PostService.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, "post", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(posts, "Get posts successfully", pageMeta(total, page, limit)))
}

// HandleGet returns one post with its categories.
//
//	@Summary	Get a post
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		string	true	"Post id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/post/{id} [get].
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "post", err)
		return
	}
	httpx.Write(w, httpx.Success(post, "Get post successfully"))
}

type postCreateRequest struct {
	FoodName    string           `json:"food_name"`
	Position    string           `json:"position"`
	Province    string           `json:"province"`
	Maps        *domain.GeoPoint `json:"maps"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail"`
	Images      []string         `json:"images"`
	Videos      []string         `json:"videos"`
	Hashtags    []string         `json:"hashtags"`
	CategoryIDs []string         `json:"category_ids"`
}

// HandleCreate publishes a new review. It always starts pending.
//
//	@Summary	Create a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		postCreateRequest	true	"Post fields"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/api/v1/post/create [post].
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postCreateRequest
	if !decodeJSON(w, r, "post", &req) {
		return
	}
	if !requireFields(w, "post", map[string]string{
		"food_name": req.FoodName,
		"province":  req.Province,
	}) {
		return
	}

	post, err := h.PostService.Create(ctx, httpx.UserIDFrom(ctx), service.PostCreateParams{
		FoodName:    req.FoodName,
		Position:    req.Position,
		Province:    req.Province,
		Maps:        req.Maps,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Images:      req.Images,
		Videos:      req.Videos,
		Hashtags:    req.Hashtags,
		CategoryIDs: toIDs(req.CategoryIDs),
	})
	if err != nil {
		writeServiceError(w, r, "post", err)
		return
	}

	httpx.Write(w, httpx.Success(post, "Create post successfully"))
}

type postUpdateRequest struct {
	FoodName    *string          `json:"food_name"`
	Position    *string          `json:"position"`
	Province    *string          `json:"province"`
	Maps        *domain.GeoPoint `json:"maps"`
	Description *string          `json:"description"`
	Thumbnail   *string          `json:"thumbnail"`
	Images      []string         `json:"images"`
	Videos      []string         `json:"videos"`
	Hashtags    []string         `json:"hashtags"`
	CategoryIDs []string         `json:"category_ids"`
}

// HandleUpdate edits a post. Author or admin.
//
//	@Summary	Update a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Post id"
//	@Param		body	body		postUpdateRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	403		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/post/update/{id} [patch].
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postUpdateRequest
	if !decodeJSON(w, r, "post", &req) {
		return
	}

	upd := domain.PostUpdate{
		FoodName:    req.FoodName,
		Position:    req.Position,
		Province:    req.Province,
		Maps:        req.Maps,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Images:      req.Images,
		Videos:      req.Videos,
		Hashtags:    req.Hashtags,
	}
	if req.CategoryIDs != nil {
		upd.CategoryIDs = toIDs(req.CategoryIDs)
	}

	post, err := h.PostService.Update(ctx,
		httpx.UserIDFrom(ctx), httpx.RoleFrom(ctx), r.PathValue("id"), upd)
	if err != nil {
		writeServiceError(w, r, "post", err)
		return
	}

	httpx.Write(w, httpx.Success(post, "Update post successfully"))
}

type postStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus moves a post through moderation. Admin or subadmin
// (route guard).
//
//	@Summary	Moderate a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Post id"
//	@Param		body	body		postStatusRequest	true	"Target status"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/post/status/{id} [patch].
func (h *PostHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req postStatusRequest
	if !decodeJSON(w, r, "post", &req) {
		return
	}
	if !requireFields(w, "post", map[string]string{"status": req.Status}) {
		return
	}

	post, err := h.PostService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, "post", err)
		return
	}

	httpx.Write(w, httpx.Success(post, "Update post status successfully"))
}

// HandleDelete removes a post. Author or admin.
//
//	@Summary	Delete a post
//	@Tags		Posts
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Post id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	403	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/post/delete/{id} [delete].
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.PostService.Delete(ctx, httpx.UserIDFrom(ctx), httpx.RoleFrom(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "post", err)
		return
	}
	httpx.Write(w, httpx.Success(nil, "Delete post successfully"))
}

func toIDs(raw []string) []idx.ID {
	ids := make([]idx.ID, 0, len(raw))
	for _, s := range raw {
		ids = append(ids, idx.ID(s))
	}
	return ids
}
