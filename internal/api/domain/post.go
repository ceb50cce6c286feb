package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// Post moderation lifecycle. New posts start pending; moderators move them
// to approved, rejected, or warn.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
	PostStatusWarn     = "warn"
)

// ValidPostStatus reports whether s is a known moderation status.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusPending, PostStatusApproved, PostStatusRejected, PostStatusWarn:
		return true
	}
	return false
}

// GeoPoint is a map pin for where the food was found.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Post is a food review.
type Post struct {
	ID          idx.ID     `json:"id"`
	UserID      idx.ID     `json:"user_id"`
	FoodName    string     `json:"food_name"`
	Position    string     `json:"position"`
	Province    string     `json:"province"`
	Maps        *GeoPoint  `json:"maps,omitempty"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Images      []string   `json:"images,omitempty"`
	Videos      []string   `json:"videos,omitempty"`
	Hashtags    []string   `json:"hashtags,omitempty"`
	Status      string     `json:"status"`
	Categories  []Category `json:"categories,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PostUpdate holds the author-editable fields. Nil means "leave alone".
// Status changes go through the moderation endpoint, never here.
type PostUpdate struct {
	FoodName    *string
	Position    *string
	Province    *string
	Maps        *GeoPoint
	Description *string
	Thumbnail   *string
	Images      []string
	Videos      []string
	Hashtags    []string
	CategoryIDs []idx.ID
}
