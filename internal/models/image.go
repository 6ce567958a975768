package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageDB represents an image attachment owned by a board post.
type ImageDB struct {
	ImageID      uuid.UUID `json:"image_id" db:"image_id"`           // Primary key
	OriginalName string    `json:"original_name" db:"original_name"` // Filename as uploaded
	StoredName   string    `json:"stored_name" db:"stored_name"`     // Collision-resistant name on disk
	Path         string    `json:"path" db:"path"`                   // Storage path
	BoardID      uuid.UUID `json:"board_id" db:"board_id"`           // Owning board
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
