package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sh-lee/mygallery/internal/models"
)

var imageRowColumns = []string{"image_id", "original_name", "stored_name", "path", "board_id", "created_at"}

func TestImageReadRepository_GetByID(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := NewImageReadRepository(db)
	ctx := context.Background()

	imageID := uuid.New()
	boardID := uuid.New()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("FROM images").
			WithArgs(imageID).
			WillReturnRows(sqlmock.NewRows(imageRowColumns).
				AddRow(imageID.String(), "cat.jpg", "stored.jpg", "uploads/stored.jpg", boardID.String(), now))

		image, err := repo.GetByID(ctx, imageID)
		assert.NoError(t, err)
		assert.NotNil(t, image)
		assert.Equal(t, imageID, image.ImageID)
		assert.Equal(t, "cat.jpg", image.OriginalName)
		assert.Equal(t, boardID, image.BoardID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM images").
			WithArgs(imageID).
			WillReturnRows(sqlmock.NewRows(imageRowColumns))

		image, err := repo.GetByID(ctx, imageID)
		assert.NoError(t, err)
		assert.Nil(t, image)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageReadRepository_ListByBoardID(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := NewImageReadRepository(db)
	ctx := context.Background()

	boardID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("FROM images").
		WithArgs(boardID).
		WillReturnRows(sqlmock.NewRows(imageRowColumns).
			AddRow(uuid.New().String(), "a.jpg", "s1.jpg", "uploads/s1.jpg", boardID.String(), now).
			AddRow(uuid.New().String(), "b.png", "s2.png", "uploads/s2.png", boardID.String(), now))

	images, err := repo.ListByBoardID(ctx, boardID)
	assert.NoError(t, err)
	assert.Len(t, images, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageWriteRepository_Save(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := NewImageWriteRepository(db)
	ctx := context.Background()

	image := &models.ImageDB{
		ImageID:      uuid.New(),
		OriginalName: "cat.jpg",
		StoredName:   "stored.jpg",
		Path:         "uploads/stored.jpg",
		BoardID:      uuid.New(),
	}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO images").
		WithArgs(image.ImageID, image.OriginalName, image.StoredName, image.Path, image.BoardID).
		WillReturnRows(sqlmock.NewRows(imageRowColumns).
			AddRow(image.ImageID.String(), image.OriginalName, image.StoredName, image.Path, image.BoardID.String(), now))

	saved, err := repo.Save(ctx, image)
	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, image.ImageID, saved.ImageID)
	assert.Equal(t, "cat.jpg", saved.OriginalName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageWriteRepository_Delete(t *testing.T) {
	db, mock, closeFn := newMockDB(t)
	defer closeFn()

	repo := NewImageWriteRepository(db)
	ctx := context.Background()

	imageID := uuid.New()

	mock.ExpectExec("DELETE FROM images").
		WithArgs(imageID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(ctx, imageID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
