package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// Category groups posts by cuisine or dish type.
type Category struct {
	ID           idx.ID    `json:"id"`
	CategoryName string    `json:"category_name"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
