package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleList returns a page of users.
//
//	@Summary	List users
//	@Tags		Users
//	@Produce	json
//	@Param		page	query		int	false	"Page (default 1)"
//	@Param		limit	query		int	false	"Page size (default 20)"
//	@Success	200		{object}	httpx.Envelope
//	@Router		/api/v1/user [get].
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	users, total, err := h.UserService.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, "user", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(users, "Get users successfully", pageMeta(total, page, limit)))
}

// HandleGet returns one user.
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/user/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "user", err)
		return
	}
	httpx.Write(w, httpx.Success(user, "Get user successfully"))
}

type userUpdateRequest struct {
	UserName    *string  `json:"user_name"`
	Avatar      *string  `json:"avatar"`
	Bio         *string  `json:"bio"`
	SocialLinks []string `json:"social_links"`
	Password    *string  `json:"password"`
}

// HandleUpdate edits a profile. Self or admin.
//
//	@Summary	Update a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"User id"
//	@Param		body	body		userUpdateRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	403		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/user/update/{id} [patch].
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req userUpdateRequest
	if !decodeJSON(w, r, "user", &req) {
		return
	}

	user, err := h.UserService.Update(ctx,
		httpx.UserIDFrom(ctx), httpx.RoleFrom(ctx), r.PathValue("id"),
		service.UserUpdateParams{
			UserName:    req.UserName,
			Avatar:      req.Avatar,
			Bio:         req.Bio,
			SocialLinks: req.SocialLinks,
			Password:    req.Password,
		})
	if err != nil {
		writeServiceError(w, r, "user", err)
		return
	}

	httpx.Write(w, httpx.Success(user, "Update user successfully"))
}

// HandleDelete removes an account. Admin only (route guard).
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"User id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/user/delete/{id} [delete].
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, "user", err)
		return
	}
	httpx.Write(w, httpx.Success(nil, "Delete user successfully"))
}
