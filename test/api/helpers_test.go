package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/angicungduoc/foodreview/internal/api/domain"
	httpapi "github.com/angicungduoc/foodreview/internal/api/http"
	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/internal/api/store"
	"github.com/angicungduoc/foodreview/internal/api/store/drivers/sqlite"
	"github.com/angicungduoc/foodreview/pkg/cryptox"
	"github.com/angicungduoc/foodreview/pkg/idx"
	"github.com/angicungduoc/foodreview/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

/*
 * In-process end-to-end tests: a real HTTP server over a real SQLite file,
 * only the listening socket is fake. Each test gets its own server so rate
 * limit buckets and databases never bleed between tests.
 */

const (
	testIssuer   = "foodreview-api"
	testPassword = "Sup3rSecret!"
)

// envelope mirrors the wire shape of every API response.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total       int `json:"total"`
		CurrentPage int `json:"currentPage"`
		TotalPages  int `json:"totalPages"`
	} `json:"meta"`
	Errors *struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Source string `json:"source"`
	} `json:"errors"`
}

type testServer struct {
	*httptest.Server
	store store.Store
}

// startServer wires the full stack the way the application does, minus the
// listener and the housekeeping loop.
func startServer(t *testing.T) *testServer {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "api.db") + "?_pragma=busy_timeout(5000)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	pemKey, err := cryptox.GenerateRSAKey(2048)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerRS256(pemKey)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierRS256(signer.Public(), testIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(verifier, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:      st,
		Signer:     signer,
		Verifier:   verifier,
		Issuer:     testIssuer,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.PostService = &service.PostService{Store: st}
	router.CategoryService = &service.CategoryService{Store: st}
	router.CommentService = &service.CommentService{Store: st}
	router.RateService = &service.RateService{Store: st}
	router.ReportService = &service.ReportService{Store: st}
	router.WishlistService = &service.WishlistService{Store: st}
	router.UploadService = &service.UploadService{
		Dir:      t.TempDir(),
		BasePath: "/uploads",
		MaxSize:  service.DefaultMaxUploadSize,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: st}
}

// doJSON sends a request with an optional bearer token and JSON body and
// decodes the response envelope.
func doJSON(t *testing.T, srv *testServer, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	return resp.StatusCode, env
}

// registerAndLogin creates an account through the API and returns the token
// pair from a fresh login.
func registerAndLogin(t *testing.T, srv *testServer, email string) tokenPair {
	t.Helper()

	code, _ := doJSON(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, code)

	return login(t, srv, email, testPassword)
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func login(t *testing.T, srv *testServer, email, password string) tokenPair {
	t.Helper()

	code, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, code)

	var pair tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.Equal(t, "Bearer", pair.TokenType)
	return pair
}

// seedStaff plants an account with an elevated role directly in the store
// (there is deliberately no API route for that) and logs it in.
func seedStaff(t *testing.T, srv *testServer, email, role string) tokenPair {
	t.Helper()

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	now := time.Now().UTC()
	require.NoError(t, srv.store.Users().CreateUser(context.Background(), domain.User{
		ID:           idx.New(),
		Email:        email,
		PasswordHash: hash,
		UserName:     role,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}))

	return login(t, srv, email, testPassword)
}
