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

// UserReadRepository reads user records from PostgreSQL.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, role, locked, login_type, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, role, locked, login_type, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository writes user records to PostgreSQL.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with registration defaults and returns the created record.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, role, locked, login_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, NOW(), NOW())
		RETURNING user_id, username, email, password_hash, role, locked, login_type, created_at, updated_at
	`
	args := []any{uuid.New(), username, email, passwordHash, models.RoleUser, models.LoginTypeLocal}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
