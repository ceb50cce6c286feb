package store

import (
	"context"
	"errors"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for
// now) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Posts() Posts
	Categories() Categories
	Comments() Comments
	Rates() Rates
	ReportTypes() ReportTypes
	Reports() Reports
	Wishlists() Wishlists
	RevokedTokens() RevokedTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers returns a page of users, newest first.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// CountUsers returns the total user count for pagination meta.
	CountUsers(ctx context.Context) (int, error)

	// UpdateUser applies the non-nil fields and bumps updated_at.
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) error

	// DeleteUser cascades to the user's posts, comments, rates, reports
	// and wishlist entries (per schema).
	DeleteUser(ctx context.Context, id string) error
}

type Posts interface {
	// CreatePost inserts a post together with its category links.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID returns a post with its categories attached.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns a page of posts, newest first, categories attached.
	ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, error)

	// CountPosts returns the total post count.
	CountPosts(ctx context.Context) (int, error)

	// UpdatePost applies the non-nil fields and bumps updated_at. A non-nil
	// CategoryIDs replaces the category links wholesale.
	UpdatePost(ctx context.Context, id string, upd domain.PostUpdate) error

	// UpdatePostStatus moves a post through the moderation lifecycle.
	UpdatePostStatus(ctx context.Context, id string, status string) error

	// DeletePost cascades to comments, rates, reports and wishlist entries.
	DeletePost(ctx context.Context, id string) error
}

type Categories interface {
	CreateCategory(ctx context.Context, c domain.Category) error
	GetCategoryByID(ctx context.Context, id string) (domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
	CountCategories(ctx context.Context) (int, error)
	UpdateCategory(ctx context.Context, id string, name, description *string) error
	DeleteCategory(ctx context.Context, id string) error
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) error

	GetCommentByID(ctx context.Context, id string) (domain.Comment, error)

	// ListTopLevelByPost returns a page of parentless comments for a post,
	// newest first, each with its reply count.
	ListTopLevelByPost(ctx context.Context, postID string, limit, offset int) ([]domain.Comment, error)

	// CountTopLevelByPost returns how many top-level comments a post has.
	CountTopLevelByPost(ctx context.Context, postID string) (int, error)

	// ListReplies returns a page of replies to a comment, oldest first.
	ListReplies(ctx context.Context, parentID string, limit, offset int) ([]domain.Comment, error)

	CountReplies(ctx context.Context, parentID string) (int, error)

	// UpdateCommentContent replaces the content and bumps updated_at.
	UpdateCommentContent(ctx context.Context, id string, content string) error

	// DeleteComment removes the comment and its replies.
	DeleteComment(ctx context.Context, id string) error
}

type Rates interface {
	CreateRate(ctx context.Context, r domain.Rate) error

	// ListRatesByPost returns every rating for a post, newest first.
	ListRatesByPost(ctx context.Context, postID string) ([]domain.Rate, error)

	// AverageRateByPost returns the mean rating, 0 when nobody rated yet.
	AverageRateByPost(ctx context.Context, postID string) (float64, error)
}

type ReportTypes interface {
	CreateReportType(ctx context.Context, rt domain.ReportType) error
	GetReportTypeByID(ctx context.Context, id string) (domain.ReportType, error)
	ListReportTypes(ctx context.Context, limit, offset int) ([]domain.ReportType, error)
	CountReportTypes(ctx context.Context) (int, error)
	UpdateReportType(ctx context.Context, id string, name, description, status *string) error
	DeleteReportType(ctx context.Context, id string) error
}

type Reports interface {
	CreateReport(ctx context.Context, r domain.Report) error

	// ListReports returns a page of reports joined with reporter, post and
	// report type, newest first.
	ListReports(ctx context.Context, limit, offset int) ([]domain.ReportDetail, error)

	CountReports(ctx context.Context) (int, error)
}

type Wishlists interface {
	CreateWishlistItem(ctx context.Context, w domain.WishlistItem) error

	GetWishlistItemByID(ctx context.Context, id string) (domain.WishlistItem, error)

	// ListWishlistByUser returns the user's saved posts, newest first, with
	// the post attached.
	ListWishlistByUser(ctx context.Context, userID string, limit, offset int) ([]domain.WishlistItem, error)

	CountWishlistByUser(ctx context.Context, userID string) (int, error)

	DeleteWishlistItem(ctx context.Context, id string) error

	// ClearWishlist removes everything the user saved, returning how many
	// rows went away.
	ClearWishlist(ctx context.Context, userID string) (int, error)
}

type RevokedTokens interface {
	// RevokeToken blacklists a token string. Revoking an already-revoked
	// token is a no-op, not an error.
	RevokeToken(ctx context.Context, t domain.RevokedToken) error

	// IsTokenRevoked reports whether the exact token string is blacklisted.
	IsTokenRevoked(ctx context.Context, token string) (bool, error)

	// DeleteExpiredRevocations drops entries whose natural expiry is older
	// than the cutoff. Housekeeping calls this periodically.
	DeleteExpiredRevocations(ctx context.Context, cutoff time.Time) (int, error)
}
