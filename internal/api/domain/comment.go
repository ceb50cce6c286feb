package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// Comment is a post comment. Threading is one level deep: a top-level
// comment has no ParentID; a reply points at the top-level comment it
// belongs to and optionally at the user it answers.
type Comment struct {
	ID            idx.ID    `json:"id"`
	PostID        idx.ID    `json:"post_id"`
	UserID        idx.ID    `json:"user_id"`
	ParentID      *idx.ID   `json:"parent_id,omitempty"`
	ReplyToUserID *idx.ID   `json:"reply_to_user_id,omitempty"`
	Content       string    `json:"content"`
	Images        []string  `json:"images,omitempty"`
	Videos        []string  `json:"videos,omitempty"`
	ReplyCount    int       `json:"reply_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
