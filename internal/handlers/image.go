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

// ImageAttacher defines the interface that the image attach service must implement.
type ImageAttacher interface {
	AttachImage(ctx context.Context, subject string, boardID uuid.UUID, originalName string) (*models.ImageDB, error)
}

// ImageRemover defines the interface that the image remove service must implement.
type ImageRemover interface {
	RemoveImage(ctx context.Context, subject string, boardID, imageID uuid.UUID) error
}

// ImageRequest represents the JSON body for attaching an image
// swagger:model ImageRequest
type ImageRequest struct {
	// Original filename
	// required: true
	// default: cat.jpg
	OriginalName string `json:"originalName"`
}

// NewImageAttachHandler returns an HTTP handler attaching an image to a board post.
// @Summary Attach an image
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Param imageRequest body handlers.ImageRequest true "Image metadata"
// @Success 200 {object} models.ImageDB "Created image attachment"
// @Failure 400 {object} handlers.ErrorResponse "No permission"
// @Failure 404 {object} handlers.ErrorResponse "Board not found"
// @Router /boards/{id}/images [post]
func NewImageAttachHandler(svc ImageAttacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid board id")
			return
		}

		var req ImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		subject, _ := middlewares.SubjectFromContext(r.Context())

		image, err := svc.AttachImage(r.Context(), subject, boardID, req.OriginalName)
		if err != nil {
			writeBoardError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, image)
	}
}

// NewImageRemoveHandler returns an HTTP handler removing an image from a board post.
// @Summary Remove an image
// @Tags boards
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Param imageId path string true "Image ID"
// @Success 204 "Image removed"
// @Failure 400 {object} handlers.ErrorResponse "No permission"
// @Failure 404 {object} handlers.ErrorResponse "Board or image not found"
// @Router /boards/{id}/images/{imageId} [delete]
func NewImageRemoveHandler(svc ImageRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boardID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid board id")
			return
		}

		imageID, err := uuid.Parse(chi.URLParam(r, "imageId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid image id")
			return
		}

		subject, _ := middlewares.SubjectFromContext(r.Context())

		if err := svc.RemoveImage(r.Context(), subject, boardID, imageID); err != nil {
			writeBoardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
