package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/pkg/httpx"
	"github.com/angicungduoc/foodreview/pkg/jwtx"
	"github.com/angicungduoc/foodreview/pkg/slogx"

	_ "github.com/angicungduoc/foodreview/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService     *service.AuthService
	UserService     *service.UserService
	PostService     *service.PostService
	CategoryService *service.CategoryService
	CommentService  *service.CommentService
	RateService     *service.RateService
	ReportService   *service.ReportService
	WishlistService *service.WishlistService
	UploadService   *service.UploadService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerPosts()
	r.registerCategories()
	r.registerComments()
	r.registerRates()
	r.registerReports()
	r.registerWishlists()
	r.registerUploads()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			Food Review API
//	@version		0.1.0
//	@description	REST API for a food review community: posts, threaded comments,
//	@description	ratings, wishlists and moderation, guarded by RS256 JWT sessions
//	@description	with server-side revocation.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn builds the standard authentication middleware for guarded routes.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, revocationChecker{r.store})
}

// revocationChecker adapts the store to the middleware's interface.
type revocationChecker struct {
	store store.Store
}

func (c revocationChecker) IsRevoked(ctx context.Context, token string) (bool, error) {
	return c.store.RevokedTokens().IsTokenRevoked(ctx, token)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints get the strict limit: brute force territory.
	r.Mux.Handle("POST /api/v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/v1/user",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/user/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("PATCH /api/v1/user/update/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/user/delete/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostHandler{PostService: r.PostService}

	r.Mux.Handle("GET /api/v1/post",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/post/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/post/create",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /api/v1/post/update/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /api/v1/post/status/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateStatus),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin, httpx.RoleSubadmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/post/delete/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCategories() {
	h := &CategoryHandler{CategoryService: r.CategoryService}

	r.Mux.Handle("GET /api/v1/category",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/category/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/category/create",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /api/v1/category/update/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/category/delete/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerComments() {
	h := &CommentHandler{CommentService: r.CommentService}

	r.Mux.Handle("GET /api/v1/comment/{postId}",
		httpx.Chain(http.HandlerFunc(h.HandleListByPost),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/v1/comment/reply/{commentId}",
		httpx.Chain(http.HandlerFunc(h.HandleListReplies),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/comment/create",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /api/v1/comment/update/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/comment/delete/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerRates() {
	h := &RateHandler{RateService: r.RateService}

	r.Mux.Handle("GET /api/v1/rate/{postId}",
		httpx.Chain(http.HandlerFunc(h.HandleListByPost),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/rate/create",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerReports() {
	rt := &ReportTypeHandler{ReportService: r.ReportService}
	rep := &ReportHandler{ReportService: r.ReportService}

	r.Mux.Handle("GET /api/v1/report-type",
		httpx.Chain(http.HandlerFunc(rt.HandleList),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/report-type/create",
		httpx.Chain(http.HandlerFunc(rt.HandleCreate),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /api/v1/report-type/update/{id}",
		httpx.Chain(http.HandlerFunc(rt.HandleUpdate),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/report-type/delete/{id}",
		httpx.Chain(http.HandlerFunc(rt.HandleDelete),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/v1/report",
		httpx.Chain(http.HandlerFunc(rep.HandleList),
			r.authn(),
			httpx.RequireAnyRole(httpx.RoleAdmin, httpx.RoleSubadmin),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/report/create",
		httpx.Chain(http.HandlerFunc(rep.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerWishlists() {
	h := &WishlistHandler{WishlistService: r.WishlistService}

	r.Mux.Handle("GET /api/v1/wishlist",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/wishlist/create",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/wishlist/delete/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/v1/wishlist/clear",
		httpx.Chain(http.HandlerFunc(h.HandleClear),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUploads() {
	h := &UploadHandler{UploadService: r.UploadService}

	r.Mux.Handle("POST /api/v1/upload",
		httpx.Chain(http.HandlerFunc(h.HandleUpload),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/v1/upload-multiple",
		httpx.Chain(http.HandlerFunc(h.HandleUploadMultiple),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Serve the stored files back out of the same directory the service
	// writes to.
	r.Mux.Handle("GET /uploads/",
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.UploadService.Dir))),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.store, r.startTime, r.buildVersion))
}
