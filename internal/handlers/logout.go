package handlers

import (
	"context"
	"net/http"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, subject string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's
// refresh token and clears the cookie.
// @Summary User logout
// @Description Deletes the stored refresh token for the authenticated user.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /users/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := middlewares.SubjectFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		if err := svc.Logout(r.Context(), subject); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		clearRefreshCookie(w)
		writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logged out"})
	}
}
