package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sh-lee/mygallery/internal/middlewares"
	"github.com/sh-lee/mygallery/internal/models"
)

// BoardUpdater defines the interface that the board update service must implement.
type BoardUpdater interface {
	Update(ctx context.Context, subject string, boardID uuid.UUID, title, content string) (*models.BoardDB, error)
}

// NewBoardUpdateHandler returns an HTTP handler updating a board post.
// Only the owner may update.
// @Summary Update a board post
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Param boardRequest body handlers.BoardRequest true "New title and content"
// @Success 200 {object} models.BoardDB "Updated board post"
// @Failure 400 {object} handlers.ErrorResponse "Missing title / no permission"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Router /boards/{id} [put]
func NewBoardUpdateHandler(svc BoardUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid board id")
			return
		}

		var req BoardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		subject, _ := middlewares.SubjectFromContext(r.Context())

		board, err := svc.Update(r.Context(), subject, boardID, req.Title, req.Content)
		if err != nil {
			writeBoardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}
