package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// Rate is a 1-5 star rating a user gave a post.
type Rate struct {
	ID        idx.ID    `json:"id"`
	PostID    idx.ID    `json:"post_id"`
	UserID    idx.ID    `json:"user_id"`
	Rate      int       `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
}

// RateSummary is the list result for a post: every rating plus the average.
type RateSummary struct {
	Rates   []Rate  `json:"rates"`
	Average float64 `json:"average"`
}
