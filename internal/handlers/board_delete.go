package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sh-lee/mygallery/internal/middlewares"
)

// BoardDeleter defines the interface that the board delete service must implement.
type BoardDeleter interface {
	Delete(ctx context.Context, subject string, boardID uuid.UUID) error
}

// NewBoardDeleteHandler returns an HTTP handler deleting a board post and
// its image attachments. Only the owner may delete.
// @Summary Delete a board post
// @Tags boards
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Success 204 "Board deleted"
// @Failure 400 {object} handlers.ErrorResponse "No permission"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Router /boards/{id} [delete]
func NewBoardDeleteHandler(svc BoardDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid board id")
			return
		}

		subject, _ := middlewares.SubjectFromContext(r.Context())

		if err := svc.Delete(r.Context(), subject, boardID); err != nil {
			writeBoardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
