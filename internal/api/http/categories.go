package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
)

type CategoryHandler struct {
	CategoryService *service.CategoryService
}

// HandleList returns a page of categories.
//
//	@Summary	List categories
//	@Tags		Categories
//	@Produce	json
//	@Success	200	{object}	httpx.Envelope
//	@Router		/api/v1/category [get].
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	cats, total, err := h.CategoryService.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, "category", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(cats, "Get categories successfully", pageMeta(total, page, limit)))
}

// HandleGet returns one category.
//
//	@Summary	Get a category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		string	true	"Category id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/category/{id} [get].
func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cat, err := h.CategoryService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "category", err)
		return
	}
	httpx.Write(w, httpx.Success(cat, "Get category successfully"))
}

type categoryCreateRequest struct {
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
}

// HandleCreate adds a category.
//
//	@Summary	Create a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		categoryCreateRequest	true	"Category fields"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/api/v1/category/create [post].
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req categoryCreateRequest
	if !decodeJSON(w, r, "category", &req) {
		return
	}
	if !requireFields(w, "category", map[string]string{"category_name": req.CategoryName}) {
		return
	}

	cat, err := h.CategoryService.Create(r.Context(), req.CategoryName, req.Description)
	if err != nil {
		writeServiceError(w, r, "category", err)
		return
	}
	httpx.Write(w, httpx.Success(cat, "Create category successfully"))
}

type categoryUpdateRequest struct {
	CategoryName *string `json:"category_name"`
	Description  *string `json:"description"`
}

// HandleUpdate edits a category.
//
//	@Summary	Update a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Category id"
//	@Param		body	body		categoryUpdateRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/category/update/{id} [patch].
func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req categoryUpdateRequest
	if !decodeJSON(w, r, "category", &req) {
		return
	}

	cat, err := h.CategoryService.Update(r.Context(), r.PathValue("id"), req.CategoryName, req.Description)
	if err != nil {
		writeServiceError(w, r, "category", err)
		return
	}
	httpx.Write(w, httpx.Success(cat, "Update category successfully"))
}

// HandleDelete removes a category. Admin only (route guard).
//
//	@Summary	Delete a category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Category id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/category/delete/{id} [delete].
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CategoryService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, "category", err)
		return
	}
	httpx.Write(w, httpx.Success(nil, "Delete category successfully"))
}
