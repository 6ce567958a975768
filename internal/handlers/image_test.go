package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sh-lee/mygallery/internal/models"
	"github.com/sh-lee/mygallery/internal/services"
)

func TestImageAttachHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardID := uuid.New()
	imageID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockImageAttacher(ctrl)
		mockSvc.EXPECT().
			AttachImage(gomock.Any(), "owner@example.com", boardID, "cat.jpg").
			Return(&models.ImageDB{ImageID: imageID, OriginalName: "cat.jpg", BoardID: boardID}, nil)

		bodyBytes, _ := json.Marshal(ImageRequest{OriginalName: "cat.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/boards/"+boardID.String()+"/images", bytes.NewBuffer(bodyBytes))
		req = withChiParams(req, map[string]string{"id": boardID.String()})
		req = withSubject(req, "owner@example.com")

		rr := httptest.NewRecorder()
		NewImageAttachHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var image models.ImageDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &image))
		assert.Equal(t, imageID, image.ImageID)
		assert.Equal(t, "cat.jpg", image.OriginalName)
	})

	t.Run("no permission", func(t *testing.T) {
		mockSvc := NewMockImageAttacher(ctrl)
		mockSvc.EXPECT().
			AttachImage(gomock.Any(), "other@example.com", boardID, "cat.jpg").
			Return(nil, services.ErrNoPermission)

		bodyBytes, _ := json.Marshal(ImageRequest{OriginalName: "cat.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/boards/"+boardID.String()+"/images", bytes.NewBuffer(bodyBytes))
		req = withChiParams(req, map[string]string{"id": boardID.String()})
		req = withSubject(req, "other@example.com")

		rr := httptest.NewRecorder()
		NewImageAttachHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid board id", func(t *testing.T) {
		mockSvc := NewMockImageAttacher(ctrl)

		bodyBytes, _ := json.Marshal(ImageRequest{OriginalName: "cat.jpg"})
		req := httptest.NewRequest(http.MethodPost, "/boards/not-a-uuid/images", bytes.NewBuffer(bodyBytes))
		req = withChiParams(req, map[string]string{"id": "not-a-uuid"})

		rr := httptest.NewRecorder()
		NewImageAttachHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestImageRemoveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boardID := uuid.New()
	imageID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockImageRemover(ctrl)
		mockSvc.EXPECT().
			RemoveImage(gomock.Any(), "owner@example.com", boardID, imageID).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/boards/"+boardID.String()+"/images/"+imageID.String(), nil)
		req = withChiParams(req, map[string]string{"id": boardID.String(), "imageId": imageID.String()})
		req = withSubject(req, "owner@example.com")

		rr := httptest.NewRecorder()
		NewImageRemoveHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("image not found", func(t *testing.T) {
		mockSvc := NewMockImageRemover(ctrl)
		mockSvc.EXPECT().
			RemoveImage(gomock.Any(), "owner@example.com", boardID, imageID).
			Return(services.ErrImageNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/boards/"+boardID.String()+"/images/"+imageID.String(), nil)
		req = withChiParams(req, map[string]string{"id": boardID.String(), "imageId": imageID.String()})
		req = withSubject(req, "owner@example.com")

		rr := httptest.NewRecorder()
		NewImageRemoveHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Image not found", resp.Error)
	})

	t.Run("invalid image id", func(t *testing.T) {
		mockSvc := NewMockImageRemover(ctrl)

		req := httptest.NewRequest(http.MethodDelete, "/boards/"+boardID.String()+"/images/not-a-uuid", nil)
		req = withChiParams(req, map[string]string{"id": boardID.String(), "imageId": "not-a-uuid"})

		rr := httptest.NewRecorder()
		NewImageRemoveHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
