package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/models"
)

// ImageReadRepository reads image attachments from PostgreSQL.
type ImageReadRepository struct {
	db *sqlx.DB
}

// NewImageReadRepository creates a new ImageReadRepository.
func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

const imageColumns = `image_id, original_name, stored_name, path, board_id, created_at`

// GetByID returns the image with the given id, or nil if none exists.
func (r *ImageReadRepository) GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error) {
	const query = `
		SELECT ` + imageColumns + `
		FROM images
		WHERE image_id = $1
	`

	var image models.ImageDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &image, query, imageID)

	logger.Log.Infow("image query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", imageID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByBoardID returns all images attached to a board.
func (r *ImageReadRepository) ListByBoardID(ctx context.Context, boardID uuid.UUID) ([]models.ImageDB, error) {
	const query = `
		SELECT ` + imageColumns + `
		FROM images
		WHERE board_id = $1
		ORDER BY created_at
	`

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query, boardID)

	logger.Log.Infow("image list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", boardID,
		"count", len(images),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return images, nil
}

// ImageWriteRepository writes image attachments to PostgreSQL.
type ImageWriteRepository struct {
	db *sqlx.DB
}

// NewImageWriteRepository creates a new ImageWriteRepository.
func NewImageWriteRepository(db *sqlx.DB) *ImageWriteRepository {
	return &ImageWriteRepository{db: db}
}

// Save inserts a new image row and returns the created record.
func (r *ImageWriteRepository) Save(ctx context.Context, image *models.ImageDB) (*models.ImageDB, error) {
	const query = `
		INSERT INTO images (image_id, original_name, stored_name, path, board_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + imageColumns + `
	`
	args := []any{image.ImageID, image.OriginalName, image.StoredName, image.Path, image.BoardID}

	var saved models.ImageDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &saved, query, args...)

	logger.Log.Infow("image insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{image.OriginalName, image.BoardID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes a single image attachment.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID uuid.UUID) error {
	const query = `DELETE FROM images WHERE image_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, imageID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("image delete",
		"query", query,
		"args", imageID,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
