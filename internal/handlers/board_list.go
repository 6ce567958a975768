package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/models"
)

// BoardLister defines the interface that the board listing service must implement.
type BoardLister interface {
	List(ctx context.Context) ([]models.BoardDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BoardDB, error)
}

// NewBoardListHandler returns an HTTP handler listing all board posts.
// @Summary List board posts
// @Tags boards
// @Produce json
// @Success 200 {array} models.BoardDB "All board posts"
// @Router /boards [get]
func NewBoardListHandler(svc BoardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boards, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, boards)
	}
}

// NewBoardListByUserHandler returns an HTTP handler listing one user's board posts.
// @Summary List board posts by user
// @Tags boards
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} models.BoardDB "The user's board posts"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Router /boards/user/{userId} [get]
func NewBoardListByUserHandler(svc BoardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		boards, err := svc.ListByUserID(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, boards)
	}
}
