package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/models"
)

// RefreshTokenRepository keeps one refresh token per subject in Redis.
// Every key carries the refresh TTL, so records expire on their own even
// if logout never runs. A reverse index by token value answers "is this
// the token currently on file".
type RefreshTokenRepository struct {
	client *redis.Client
	exp    time.Duration // TTL for both the record and its reverse index
}

// NewRefreshTokenRepository creates a new repository with the given TTL.
func NewRefreshTokenRepository(client *redis.Client, expiration time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		client: client,
		exp:    expiration,
	}
}

func subjectKey(subject string) string {
	return "refreshToken:" + subject
}

func tokenKey(token string) string {
	return "refreshToken:token:" + token
}

// Save upserts the refresh token for a subject, overwriting any previous
// record. The superseded token's reverse-index entry is removed so a stale
// token can no longer be found.
func (r *RefreshTokenRepository) Save(ctx context.Context, subject, token string) error {
	old, err := r.client.Get(ctx, subjectKey(subject)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Errorw("refresh token lookup before save failed", "subject", subject, "error", err)
		return err
	}

	pipe := r.client.TxPipeline()
	if old != "" && old != token {
		pipe.Del(ctx, tokenKey(old))
	}
	pipe.Set(ctx, subjectKey(subject), token, r.exp)
	pipe.Set(ctx, tokenKey(token), subject, r.exp)
	_, err = pipe.Exec(ctx)

	logger.Log.Infow("refresh token saved",
		"key", subjectKey(subject),
		"superseded", old != "" && old != token,
		"error", err,
	)

	return err
}

// FindByToken resolves a presented token back to its record. Returns nil
// when the token is unknown, expired, or no longer the current one for
// its subject.
func (r *RefreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshTokenDB, error) {
	subject, err := r.client.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("refresh token reverse lookup failed", "error", err)
		return nil, err
	}

	// The index entry may outlive an overwrite by a hair; the subject
	// record is the source of truth.
	current, err := r.client.Get(ctx, subjectKey(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("refresh token lookup failed", "subject", subject, "error", err)
		return nil, err
	}
	if current != token {
		return nil, nil
	}

	return &models.RefreshTokenDB{Subject: subject, Token: token}, nil
}

// DeleteBySubject removes the subject's record and its reverse index (logout).
func (r *RefreshTokenRepository) DeleteBySubject(ctx context.Context, subject string) error {
	token, err := r.client.Get(ctx, subjectKey(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		logger.Log.Errorw("refresh token lookup before delete failed", "subject", subject, "error", err)
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, subjectKey(subject))
	pipe.Del(ctx, tokenKey(token))
	_, err = pipe.Exec(ctx)

	logger.Log.Infow("refresh token deleted", "key", subjectKey(subject), "error", err)

	return err
}
