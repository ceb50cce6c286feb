// Package domain defines the entities the food-review service persists and
// serves. Structs carry their wire representation; password hashes never
// leave the server.
package domain

import (
	"time"

	"github.com/angicungduoc/foodreview/pkg/idx"
)

// Roles a user account can hold. Admins moderate everything, subadmins
// handle content moderation, users own their content.
const (
	RoleAdmin    = "admin"
	RoleSubadmin = "subadmin"
	RoleUser     = "user"
)

// User is a registered account.
type User struct {
	ID           idx.ID    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UserName     string    `json:"user_name"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	SocialLinks  []string  `json:"social_links,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate holds the fields a profile update may change. Nil means
// "leave alone"; the password arrives pre-hashed.
type UserUpdate struct {
	UserName     *string
	Avatar       *string
	Bio          *string
	SocialLinks  []string
	PasswordHash *string
}
