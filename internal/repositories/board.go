package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/middlewares"
	"github.com/sh-lee/mygallery/internal/models"
)

// ext returns the executor for the current request: the transaction stored
// in the context when the mutation middleware is active, the plain pool
// otherwise. Update and delete must share one transaction with their
// existence and ownership checks.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// BoardReadRepository reads board posts from PostgreSQL.
type BoardReadRepository struct {
	db *sqlx.DB
}

// NewBoardReadRepository creates a new BoardReadRepository.
func NewBoardReadRepository(db *sqlx.DB) *BoardReadRepository {
	return &BoardReadRepository{db: db}
}

const boardColumns = `board_id, title, content, view_count, user_id, created_at, updated_at`

// GetByID returns the board with the given id, or nil if none exists.
func (r *BoardReadRepository) GetByID(ctx context.Context, boardID uuid.UUID) (*models.BoardDB, error) {
	const query = `
		SELECT ` + boardColumns + `
		FROM boards
		WHERE board_id = $1
	`

	var board models.BoardDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &board, query, boardID)

	logger.Log.Infow("board query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", boardID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &board, nil
}

// List returns all board posts, newest first.
func (r *BoardReadRepository) List(ctx context.Context) ([]models.BoardDB, error) {
	const query = `
		SELECT ` + boardColumns + `
		FROM boards
		ORDER BY created_at DESC
	`

	var boards []models.BoardDB
	err := r.db.SelectContext(ctx, &boards, query)

	logger.Log.Infow("board list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(boards),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return boards, nil
}

// ListByUserID returns all board posts written by the given user, newest first.
func (r *BoardReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.BoardDB, error) {
	const query = `
		SELECT ` + boardColumns + `
		FROM boards
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var boards []models.BoardDB
	err := r.db.SelectContext(ctx, &boards, query, userID)

	logger.Log.Infow("board list by user",
		"query", strings.Join(strings.Fields(query), " "),
		"args", userID,
		"count", len(boards),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return boards, nil
}

// GetAndIncrementViews bumps the view counter and returns the updated board,
// or nil if none exists. One statement, so concurrent reads never lose counts.
func (r *BoardReadRepository) GetAndIncrementViews(ctx context.Context, boardID uuid.UUID) (*models.BoardDB, error) {
	const query = `
		UPDATE boards
		SET view_count = view_count + 1
		WHERE board_id = $1
		RETURNING ` + boardColumns + `
	`

	var board models.BoardDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &board, query, boardID)

	logger.Log.Infow("board view increment",
		"query", strings.Join(strings.Fields(query), " "),
		"args", boardID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &board, nil
}

// BoardWriteRepository writes board posts to PostgreSQL.
type BoardWriteRepository struct {
	db *sqlx.DB
}

// NewBoardWriteRepository creates a new BoardWriteRepository.
func NewBoardWriteRepository(db *sqlx.DB) *BoardWriteRepository {
	return &BoardWriteRepository{db: db}
}

// Save inserts a new board post and returns the created record.
func (r *BoardWriteRepository) Save(ctx context.Context, title, content string, userID uuid.UUID) (*models.BoardDB, error) {
	const query = `
		INSERT INTO boards (board_id, title, content, view_count, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, NOW(), NOW())
		RETURNING ` + boardColumns + `
	`
	args := []any{uuid.New(), title, content, userID}

	var board models.BoardDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &board, query, args...)

	logger.Log.Infow("board insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Update changes title and content of an existing board post and returns
// the updated record, or nil if the board no longer exists.
func (r *BoardWriteRepository) Update(ctx context.Context, boardID uuid.UUID, title, content string) (*models.BoardDB, error) {
	const query = `
		UPDATE boards
		SET title = $2, content = $3, updated_at = NOW()
		WHERE board_id = $1
		RETURNING ` + boardColumns + `
	`

	var board models.BoardDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &board, query, boardID, title, content)

	logger.Log.Infow("board update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{boardID, title},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// Delete removes a board post. Image rows cascade via the foreign key.
func (r *BoardWriteRepository) Delete(ctx context.Context, boardID uuid.UUID) error {
	const query = `DELETE FROM boards WHERE board_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, boardID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("board delete",
		"query", query,
		"args", boardID,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
