package http

import (
	"net/http"

	"github.com/angicungduoc/foodreview/internal/api/service"
	"github.com/angicungduoc/foodreview/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new account.
//
//	@Summary	Register a new user
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registerRequest	true	"Credentials"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	400		{object}	httpx.Envelope
//	@Router		/api/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, "auth", &req) {
		return
	}
	if !requireFields(w, "auth", map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}) {
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, "auth", err)
		return
	}

	httpx.Write(w, httpx.Success(user, "Register successfully"))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin exchanges credentials for a token pair.
//
//	@Summary	Log in
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		loginRequest	true	"Credentials"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	401		{object}	httpx.Envelope
//	@Router		/api/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, "auth", &req) {
		return
	}
	if !requireFields(w, "auth", map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}) {
		return
	}

	pair, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, "auth", err)
		return
	}

	httpx.Write(w, httpx.Success(pair, "Login successfully"))
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleLogout blacklists the presented access token and, optionally, the
// caller's refresh token. The access token comes from the verified bearer
// header, never from the body.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		logoutRequest	false	"Refresh token to revoke alongside"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	401		{object}	httpx.Envelope
//	@Router		/api/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFrom(ctx)
	if !ok {
		httpx.Write(w, httpx.Error(httpx.Unauthorized("auth", "access token not found")))
		return
	}

	var req logoutRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeJSON(w, r, "auth", &req) {
			return
		}
	}

	err := h.AuthService.Logout(ctx, httpx.BearerTokenFrom(ctx), claims, req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, "auth", err)
		return
	}

	httpx.Write(w, httpx.Success(nil, "Logout successfully"))
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleRefresh mints a fresh access token from a refresh token.
//
//	@Summary	Refresh the access token
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		refreshRequest	true	"Refresh token"
//	@Success	200		{object}	httpx.Envelope
//	@Failure	401		{object}	httpx.Envelope
//	@Router		/api/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, "auth", &req) {
		return
	}
	if !requireFields(w, "auth", map[string]string{"refreshToken": req.RefreshToken}) {
		return
	}

	pair, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, "auth", err)
		return
	}

	httpx.Write(w, httpx.Success(pair, "Refresh token successfully"))
}
