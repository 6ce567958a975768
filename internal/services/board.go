package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/models"
)

var (
	// ErrNoTitle is returned when a board post is created or updated without a title.
	ErrNoTitle = errors.New("title is required")
	// ErrNotUser is returned when a write is attempted without an authenticated user.
	ErrNotUser = errors.New("authentication required to write")
	// ErrNoPermission is returned when the requester does not own the board.
	ErrNoPermission = errors.New("no permission to modify or delete this board")
	// ErrBoardNotFound is returned when the board does not exist.
	ErrBoardNotFound = errors.New("board not found")
	// ErrImageNotFound is returned when the image does not exist on the board.
	ErrImageNotFound = errors.New("image not found")
)

// BoardReader defines read-only operations for board posts.
type BoardReader interface {
	GetByID(ctx context.Context, boardID uuid.UUID) (*models.BoardDB, error)
	List(ctx context.Context) ([]models.BoardDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BoardDB, error)
	GetAndIncrementViews(ctx context.Context, boardID uuid.UUID) (*models.BoardDB, error)
}

// BoardWriter defines write operations for board posts.
type BoardWriter interface {
	Save(ctx context.Context, title, content string, userID uuid.UUID) (*models.BoardDB, error)
	Update(ctx context.Context, boardID uuid.UUID, title, content string) (*models.BoardDB, error)
	Delete(ctx context.Context, boardID uuid.UUID) error
}

// ImageReader defines read-only operations for image attachments.
type ImageReader interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error)
	ListByBoardID(ctx context.Context, boardID uuid.UUID) ([]models.ImageDB, error)
}

// ImageWriter defines write operations for image attachments.
type ImageWriter interface {
	Save(ctx context.Context, image *models.ImageDB) (*models.ImageDB, error)
	Delete(ctx context.Context, imageID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BoardService handles board CRUD with ownership checks and publishes
// board events. Validation order is fixed: field validity, then existence,
// then ownership.
type BoardService struct {
	boardReader BoardReader
	boardWriter BoardWriter
	imageReader ImageReader
	imageWriter ImageWriter
	users       UserReader
	kafkaWriter KafkaWriter
	uploadDir   string
}

// NewBoardService creates a new BoardService. kafkaWriter may be nil, in
// which case event publishing is skipped.
func NewBoardService(
	boardReader BoardReader,
	boardWriter BoardWriter,
	imageReader ImageReader,
	imageWriter ImageWriter,
	users UserReader,
	kafkaWriter KafkaWriter,
	uploadDir string,
) *BoardService {
	return &BoardService{
		boardReader: boardReader,
		boardWriter: boardWriter,
		imageReader: imageReader,
		imageWriter: imageWriter,
		users:       users,
		kafkaWriter: kafkaWriter,
		uploadDir:   uploadDir,
	}
}

// publishBoardEvent publishes a board mutation event to Kafka.
func (s *BoardService) publishBoardEvent(ctx context.Context, event models.BoardEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "board_id", event.BoardID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal board event", "board_id", event.BoardID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BoardID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish board event", "board_id", event.BoardID, "error", err)
	} else {
		logger.Log.Infow("board event published", "board_id", event.BoardID, "operation", event.Operation)
	}
}

// resolveOwner maps the authenticated subject to its user record.
func (s *BoardService) resolveOwner(ctx context.Context, subject string) (*models.UserDB, error) {
	if subject == "" {
		return nil, ErrNotUser
	}
	user, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		logger.Log.Errorw("failed to resolve subject", "subject", subject, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotUser
	}
	return user, nil
}

// newImage builds an image row with a collision-resistant stored filename.
func (s *BoardService) newImage(boardID uuid.UUID, originalName string) *models.ImageDB {
	storedName := uuid.NewString() + filepath.Ext(originalName)
	return &models.ImageDB{
		ImageID:      uuid.New(),
		OriginalName: originalName,
		StoredName:   storedName,
		Path:         filepath.Join(s.uploadDir, storedName),
		BoardID:      boardID,
	}
}

// Create writes a new board post owned by the authenticated subject,
// attaching image rows for any supplied filenames.
func (s *BoardService) Create(ctx context.Context, subject, title, content string, imageNames []string) (*models.BoardDB, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrNoTitle
	}

	user, err := s.resolveOwner(ctx, subject)
	if err != nil {
		return nil, err
	}

	board, err := s.boardWriter.Save(ctx, title, content, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to save board", "err", err)
		return nil, err
	}

	for _, name := range imageNames {
		image, err := s.imageWriter.Save(ctx, s.newImage(board.BoardID, name))
		if err != nil {
			logger.Log.Errorw("failed to save image", "board_id", board.BoardID, "err", err)
			return nil, err
		}
		board.Images = append(board.Images, *image)
	}

	s.publishBoardEvent(ctx, models.BoardEvent{
		EventID:   uuid.NewString(),
		BoardID:   board.BoardID.String(),
		UserID:    user.UserID.String(),
		Operation: "created",
		Timestamp: time.Now().Unix(),
	})

	return board, nil
}

// List returns all board posts.
func (s *BoardService) List(ctx context.Context) ([]models.BoardDB, error) {
	return s.boardReader.List(ctx)
}

// ListByUserID returns the board posts written by one user.
func (s *BoardService) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BoardDB, error) {
	return s.boardReader.ListByUserID(ctx, userID)
}

// Get returns a single board post with its images, bumping the view counter.
func (s *BoardService) Get(ctx context.Context, boardID uuid.UUID) (*models.BoardDB, error) {
	board, err := s.boardReader.GetAndIncrementViews(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	images, err := s.imageReader.ListByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	board.Images = images

	return board, nil
}

// Update modifies an existing board post. Only the owner may update.
func (s *BoardService) Update(ctx context.Context, subject string, boardID uuid.UUID, title, content string) (*models.BoardDB, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrNoTitle
	}

	existing, err := s.boardReader.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBoardNotFound
	}

	user, err := s.resolveOwner(ctx, subject)
	if err != nil {
		return nil, err
	}
	if existing.UserID != user.UserID {
		logger.Log.Errorw("update denied", "board_id", boardID, "subject", subject)
		return nil, ErrNoPermission
	}

	updated, err := s.boardWriter.Update(ctx, boardID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update board", "board_id", boardID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBoardNotFound
	}

	s.publishBoardEvent(ctx, models.BoardEvent{
		EventID:   uuid.NewString(),
		BoardID:   boardID.String(),
		UserID:    user.UserID.String(),
		Operation: "updated",
		Timestamp: time.Now().Unix(),
	})

	return updated, nil
}

// Delete removes a board post and, through the cascade, its images.
// Only the owner may delete.
func (s *BoardService) Delete(ctx context.Context, subject string, boardID uuid.UUID) error {
	existing, err := s.boardReader.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBoardNotFound
	}

	user, err := s.resolveOwner(ctx, subject)
	if err != nil {
		return err
	}
	if existing.UserID != user.UserID {
		logger.Log.Errorw("delete denied", "board_id", boardID, "subject", subject)
		return ErrNoPermission
	}

	if err := s.boardWriter.Delete(ctx, boardID); err != nil {
		logger.Log.Errorw("failed to delete board", "board_id", boardID, "err", err)
		return err
	}

	s.publishBoardEvent(ctx, models.BoardEvent{
		EventID:   uuid.NewString(),
		BoardID:   boardID.String(),
		UserID:    user.UserID.String(),
		Operation: "deleted",
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// AttachImage adds an image attachment to an existing board post.
// Only the owner may attach.
func (s *BoardService) AttachImage(ctx context.Context, subject string, boardID uuid.UUID, originalName string) (*models.ImageDB, error) {
	if strings.TrimSpace(originalName) == "" {
		return nil, ErrImageNotFound
	}

	board, err := s.boardReader.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	user, err := s.resolveOwner(ctx, subject)
	if err != nil {
		return nil, err
	}
	if board.UserID != user.UserID {
		return nil, ErrNoPermission
	}

	image, err := s.imageWriter.Save(ctx, s.newImage(boardID, originalName))
	if err != nil {
		logger.Log.Errorw("failed to save image", "board_id", boardID, "err", err)
		return nil, err
	}
	return image, nil
}

// RemoveImage deletes an image attachment from a board post.
// Only the owner may remove.
func (s *BoardService) RemoveImage(ctx context.Context, subject string, boardID, imageID uuid.UUID) error {
	board, err := s.boardReader.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if board == nil {
		return ErrBoardNotFound
	}

	user, err := s.resolveOwner(ctx, subject)
	if err != nil {
		return err
	}
	if board.UserID != user.UserID {
		return ErrNoPermission
	}

	image, err := s.imageReader.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image == nil || image.BoardID != boardID {
		return ErrImageNotFound
	}

	if err := s.imageWriter.Delete(ctx, imageID); err != nil {
		logger.Log.Errorw("failed to delete image", "image_id", imageID, "err", err)
		return err
	}
	return nil
}
