package models

import (
	"time"

	"github.com/google/uuid"
)

// BoardDB represents a board post in the database.
type BoardDB struct {
	BoardID   uuid.UUID `json:"board_id" db:"board_id"`     // Primary key
	Title     string    `json:"title" db:"title"`           // Required, non-blank
	Content   string    `json:"content" db:"content"`       // Post body
	ViewCount int       `json:"view_count" db:"view_count"` // Incremented on single-post reads
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Images    []ImageDB `json:"images,omitempty" db:"-"` // Attachments, loaded separately
}

// BoardEvent is published to Kafka after a successful board mutation.
type BoardEvent struct {
	EventID   string `json:"event_id"`
	BoardID   string `json:"board_id"`
	UserID    string `json:"user_id"`
	Operation string `json:"operation"` // created, updated or deleted
	Timestamp int64  `json:"timestamp"`
}
