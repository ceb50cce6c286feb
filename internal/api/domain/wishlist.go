package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// WishlistItem is a post a user saved for later.
type WishlistItem struct {
	ID        idx.ID    `json:"id"`
	UserID    idx.ID    `json:"user_id"`
	PostID    idx.ID    `json:"post_id"`
	Post      *Post     `json:"post,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
