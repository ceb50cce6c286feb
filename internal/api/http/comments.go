package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

type CommentHandler struct {
	CommentService *service.CommentService
}

// HandleListByPost returns the top-level comments of a post with reply
// counts.
//
//	@Summary	List comments on a post
//	@Tags		Comments
//	@Produce	json
//	@Param		postId	path		string	true	"Post id"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/comment/{postId} [get].
func (h *CommentHandler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	comments, total, err := h.CommentService.ListByPost(r.Context(), r.PathValue("postId"), limit, offset)
	if err != nil {
		writeServiceError(w, r, "comment", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(comments, "Get comments successfully", pageMeta(total, page, limit)))
}

// HandleListReplies returns a comment's replies, oldest first.
//
//	@Summary	List replies to a comment
//	@Tags		Comments
//	@Produce	json
//	@Param		commentId	path		string	true	"Comment id"
//	@Success	200			{object}	httpx.Envelope
//	@Failure	404			{object}	httpx.Envelope
//	@Router		/api/v1/comment/reply/{commentId} [get].
func (h *CommentHandler) HandleListReplies(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	replies, total, err := h.CommentService.ListReplies(r.Context(), r.PathValue("commentId"), limit, offset)
	if err != nil {
		writeServiceError(w, r, "comment", err)
		return
	}

	httpx.Write(w, httpx.SuccessWithMeta(replies, "Get replies successfully", pageMeta(total, page, limit)))
}

type commentCreateRequest struct {
	PostID        string   `json:"post_id"`
	ParentID      *string  `json:"parent_id"`
	ReplyToUserID *string  `json:"reply_to_user_id"`
	Content       string   `json:"content"`
	Images        []string `json:"images"`
	Videos        []string `json:"videos"`
}

// HandleCreate posts a comment or reply.
//
//	@Summary	Create a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		commentCreateRequest	true	"Comment fields"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/comment/create [post].
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req commentCreateRequest
	if !decodeJSON(w, r, "comment", &req) {
		return
	}
	if !requireFields(w, "comment", map[string]string{
		"post_id": req.PostID,
		"content": req.Content,
	}) {
		return
	}

	params := service.CommentCreateParams{
		PostID:  idx.ID(req.PostID),
		Content: req.Content,
		Images:  req.Images,
		Videos:  req.Videos,
	}
	if req.ParentID != nil {
		pid := idx.ID(*req.ParentID)
		params.ParentID = &pid
	}
	if req.ReplyToUserID != nil {
		rid := idx.ID(*req.ReplyToUserID)
		params.ReplyToUserID = &rid
	}

	comment, err := h.CommentService.Create(ctx, httpx.UserIDFrom(ctx), params)
	if err != nil {
		writeServiceError(w, r, "comment", err)
		return
	}

	httpx.Write(w, httpx.Success(comment, "Create comment successfully"))
}

type commentUpdateRequest struct {
	Content string `json:"content"`
}

// HandleUpdate edits a comment. Author only.
//
//	@Summary	Update a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Comment id"
//	@Param		body	body		commentUpdateRequest	true	"New content"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	403		{object}	httpx.Envelope
//	@Failure	404		{object}	httpx.Envelope
//	@Router		/api/v1/comment/update/{id} [patch].
func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req commentUpdateRequest
	if !decodeJSON(w, r, "comment", &req) {
		return
	}
	if !requireFields(w, "comment", map[string]string{"content": req.Content}) {
		return
	}

	comment, err := h.CommentService.Update(ctx, httpx.UserIDFrom(ctx), r.PathValue("id"), req.Content)
	if err != nil {
		writeServiceError(w, r, "comment", err)
		return
	}

	httpx.Write(w, httpx.Success(comment, "Update comment successfully"))
}

// HandleDelete removes a comment and its replies. Author or admin.
//
//	@Summary	Delete a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Comment id"
//	@Success	200	{object}	httpx.Envelope
//	@Failure	403	{object}	httpx.Envelope
//	@Failure	404	{object}	httpx.Envelope
//	@Router		/api/v1/comment/delete/{id} [delete].
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.CommentService.Delete(ctx, httpx.UserIDFrom(ctx), httpx.RoleFrom(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "comment", err)
		return
	}
	httpx.Write(w, httpx.Success(nil, "Delete comment successfully"))
}
