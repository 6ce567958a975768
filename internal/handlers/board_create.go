package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/middlewares"
	"github.com/sh-lee/mygallery/internal/models"
	"github.com/sh-lee/mygallery/internal/services"
)

// BoardCreator defines the interface that the board creation service must implement.
type BoardCreator interface {
	Create(ctx context.Context, subject, title, content string, imageNames []string) (*models.BoardDB, error)
}

// BoardRequest represents the JSON body for creating or updating a board post
// swagger:model BoardRequest
type BoardRequest struct {
	// Title, required and non-blank
	// required: true
	// default: my first post
	Title string `json:"title"`

	// Content
	// default: hello gallery
	Content string `json:"content"`

	// Original filenames of images to attach (create only)
	Images []string `json:"images,omitempty"`
}

// writeBoardError maps board service errors onto the HTTP error taxonomy.
func writeBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoTitle):
		writeError(w, http.StatusBadRequest, "Title is required")
	case errors.Is(err, services.ErrNotUser):
		writeError(w, http.StatusBadRequest, "Authentication required to write")
	case errors.Is(err, services.ErrNoPermission):
		writeError(w, http.StatusBadRequest, "No permission to modify or delete this board")
	case errors.Is(err, services.ErrBoardNotFound):
		writeError(w, http.StatusNotFound, "Board not found")
	case errors.Is(err, services.ErrImageNotFound):
		writeError(w, http.StatusNotFound, "Image not found")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// NewBoardCreateHandler returns an HTTP handler for writing a new board post.
// @Summary Create a board post
// @Description Creates a board post owned by the authenticated user, optionally attaching images.
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param boardRequest body handlers.BoardRequest true "Board post"
// @Success 200 {object} models.BoardDB "Created board post"
// @Failure 400 {object} handlers.ErrorResponse "Missing title / not authenticated"
// @Router /boards [post]
func NewBoardCreateHandler(svc BoardCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BoardRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		subject, _ := middlewares.SubjectFromContext(r.Context())

		board, err := svc.Create(r.Context(), subject, req.Title, req.Content, req.Images)
		if err != nil {
			writeBoardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, board)
	}
}
