package service

import (
	"context"
	"errors"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/idx"
)

var ErrInvalidParent = errors.New("invalid_parent_comment")

type CommentService struct {
	Store store.Store
}

// CommentCreateParams carries a new comment. ParentID makes it a reply;
// replies to replies are flattened onto the top-level parent.
type CommentCreateParams struct {
	PostID        idx.ID
	ParentID      *idx.ID
	ReplyToUserID *idx.ID
	Content       string
	Images        []string
	Videos        []string
}

func (s *CommentService) ListByPost(ctx context.Context, postID string, limit, offset int) ([]domain.Comment, int, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		return nil, 0, err
	}
	comments, err := s.Store.Comments().ListTopLevelByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Comments().CountTopLevelByPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *CommentService) ListReplies(ctx context.Context, commentID string, limit, offset int) ([]domain.Comment, int, error) {
	if _, err := s.Store.Comments().GetCommentByID(ctx, commentID); err != nil {
		return nil, 0, err
	}
	replies, err := s.Store.Comments().ListReplies(ctx, commentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.Store.Comments().CountReplies(ctx, commentID)
	if err != nil {
		return nil, 0, err
	}
	return replies, total, nil
}

func (s *CommentService) Create(ctx context.Context, authorID string, params CommentCreateParams) (domain.Comment, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, string(params.PostID)); err != nil {
		return domain.Comment{}, err
	}

	parentID := params.ParentID
	if parentID != nil {
		parent, err := s.Store.Comments().GetCommentByID(ctx, string(*parentID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Comment{}, ErrInvalidParent
			}
			return domain.Comment{}, err
		}
		if parent.PostID != params.PostID {
			return domain.Comment{}, ErrInvalidParent
		}
		// Keep the thread one level deep.
		if parent.ParentID != nil {
			parentID = parent.ParentID
		}
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		ID:            idx.New(),
		PostID:        params.PostID,
		UserID:        idx.ID(authorID),
		ParentID:      parentID,
		ReplyToUserID: params.ReplyToUserID,
		Content:       params.Content,
		Images:        params.Images,
		Videos:        params.Videos,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Store.Comments().CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// Update edits a comment's content. Author only.
func (s *CommentService) Update(ctx context.Context, actorID, id, content string) (domain.Comment, error) {
	comment, err := s.Store.Comments().GetCommentByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if string(comment.UserID) != actorID {
		return domain.Comment{}, ErrForbidden
	}
	if err := s.Store.Comments().UpdateCommentContent(ctx, id, content); err != nil {
		return domain.Comment{}, err
	}
	return s.Store.Comments().GetCommentByID(ctx, id)
}

// Delete removes a comment and its replies. Author or admin.
func (s *CommentService) Delete(ctx context.Context, actorID, actorRole, id string) error {
	comment, err := s.Store.Comments().GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if string(comment.UserID) != actorID && actorRole != domain.RoleAdmin {
		return ErrForbidden
	}
	return s.Store.Comments().DeleteComment(ctx, id)
}
