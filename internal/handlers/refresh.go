package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/services"
)

// Refresher defines the interface that the token refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, err error)
}

// NewRefreshHandler returns an HTTP handler that mints a new access token
// from the refresh token cookie. When the service rotates the refresh
// token, the cookie is re-set with the new value.
// @Summary Refresh access token
// @Description Validates the refreshToken cookie against the token store and returns a new access token.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.LoginResponse "New access token returned"
// @Failure 401 {object} handlers.ErrorResponse "Missing, invalid or revoked refresh token"
// @Router /users/refresh [post]
func NewRefreshHandler(svc Refresher, refreshExp time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(refreshCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Refresh token not found")
			return
		}

		accessToken, newRefreshToken, err := svc.Refresh(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken):
				writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			case errors.Is(err, services.ErrTokenNotFound):
				writeError(w, http.StatusUnauthorized, "Refresh token not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		if newRefreshToken != "" {
			setRefreshCookie(w, newRefreshToken, refreshExp)
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: accessToken,
		})
	}
}
