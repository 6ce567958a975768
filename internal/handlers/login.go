package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/services"
)

// refreshCookieName is the cookie that carries the refresh token.
const refreshCookieName = "refreshToken"

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
}

// LoginRequest represents the JSON body for user login.
// The username field carries the account email.
// swagger:model LoginRequest
type LoginRequest struct {
	// Email used as the login name
	// required: true
	// default: alice@example.com
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response. The refresh token
// is delivered only as an http-only cookie, never in the body.
// swagger:model LoginResponse
type LoginResponse struct {
	// Access token for the Authorization header
	// default: JWT_TOKEN
	AccessToken string `json:"accessToken"`
}

// setRefreshCookie attaches the refresh token as an http-only, secure,
// cross-site cookie.
func setRefreshCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearRefreshCookie expires the refresh token cookie.
func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email and password. Returns the access token in the body and sets the refresh token as an http-only cookie.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Access token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer, refreshExp time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		accessToken, refreshToken, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		setRefreshCookie(w, refreshToken, refreshExp)
		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: accessToken,
		})
	}
}
