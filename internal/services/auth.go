package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sh-lee/mygallery/internal/logger"
	"github.com/sh-lee/mygallery/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrTokenNotFound      = errors.New("refresh token not found or revoked")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, email string) (*models.UserDB, error)
}

// TokenIssuer defines the token codec operations the service orchestrates.
type TokenIssuer interface {
	GenerateAccessToken(ctx context.Context, subject string) (string, error)
	GenerateRefreshToken(ctx context.Context, subject string) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// TokenStorer defines the server-side refresh token store.
type TokenStorer interface {
	Save(ctx context.Context, subject, token string) error
	FindByToken(ctx context.Context, token string) (*models.RefreshTokenDB, error)
	DeleteBySubject(ctx context.Context, subject string) error
}

// AuthService handles registration, login, token refresh and logout.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
	tokens TokenStorer
	rotate bool
}

// AuthOpt configures an AuthService.
type AuthOpt func(*AuthService)

// WithRotation enables refresh token rotation: every successful refresh
// issues and persists a new refresh token, invalidating the presented one.
func WithRotation(enabled bool) AuthOpt {
	return func(svc *AuthService) {
		svc.rotate = enabled
	}
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer, tokens TokenStorer, opts ...AuthOpt) *AuthService {
	svc := &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Register creates a new user account. The email must not be on file yet.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	created, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return created, nil
}

// Login authenticates a user by email and password, issues an access and a
// refresh token, and persists the refresh token. A new login overwrites the
// subject's previous refresh token, which invalidates the older session.
func (svc *AuthService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = svc.jwt.GenerateAccessToken(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	refreshToken, err = svc.jwt.GenerateRefreshToken(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	if err := svc.tokens.Save(ctx, user.Email, refreshToken); err != nil {
		logger.Log.Errorw("failed to persist refresh token", "err", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh validates a presented refresh token against the codec and the
// store, and issues a new access token. The store must hold exactly this
// token for its subject; anything else means the token was revoked or
// superseded by a newer login. When rotation is enabled a new refresh
// token is issued and persisted as well.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, err error) {
	subject, err := svc.jwt.GetSubject(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("refresh token rejected", "err", err)
		return "", "", ErrInvalidToken
	}

	record, err := svc.tokens.FindByToken(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return "", "", err
	}
	if record == nil {
		logger.Log.Errorw("refresh token not on file", "subject", subject)
		return "", "", ErrTokenNotFound
	}

	accessToken, err = svc.jwt.GenerateAccessToken(ctx, subject)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	if svc.rotate {
		newRefreshToken, err = svc.jwt.GenerateRefreshToken(ctx, subject)
		if err != nil {
			logger.Log.Errorw("failed to rotate refresh token", "err", err)
			return "", "", err
		}
		if err := svc.tokens.Save(ctx, subject, newRefreshToken); err != nil {
			logger.Log.Errorw("failed to persist rotated refresh token", "err", err)
			return "", "", err
		}
	}

	return accessToken, newRefreshToken, nil
}

// Logout removes the subject's refresh token from the store.
func (svc *AuthService) Logout(ctx context.Context, subject string) error {
	if err := svc.tokens.DeleteBySubject(ctx, subject); err != nil {
		logger.Log.Errorw("failed to delete refresh token", "subject", subject, "err", err)
		return err
	}
	return nil
}
