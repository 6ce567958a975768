package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sh-lee/mygallery/internal/models"
)

// BoardGetter defines the interface that the single-post read service must implement.
type BoardGetter interface {
	Get(ctx context.Context, boardID uuid.UUID) (*models.BoardDB, error)
}

// NewBoardGetHandler returns an HTTP handler reading one board post.
// Each read increments the post's view counter.
// @Summary Get a board post
// @Tags boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} models.BoardDB "The board post with its images"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Router /boards/{id} [get]
func NewBoardGetHandler(svc BoardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid board id")
			return
		}

		board, err := svc.Get(r.Context(), boardID)
		if err != nil {
			writeBoardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}
