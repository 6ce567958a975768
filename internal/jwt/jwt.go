package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWT issues and validates the signed tokens used by the auth flow.
// Access tokens are short-lived and self-contained; refresh tokens
// additionally carry a unique token id (jti) so two logins for the
// same subject never produce identical tokens.
type JWT struct {
	secretKey  string        // Shared HMAC signing key, loaded once at startup
	accessExp  time.Duration // Access token lifetime
	refreshExp time.Duration // Refresh token lifetime
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) {
		j.secretKey = key
	}
}

// WithAccessExpiration sets the access token lifetime.
func WithAccessExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.accessExp = exp
	}
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.refreshExp = exp
	}
}

// New creates a new JWT instance. Defaults: 30 minute access tokens,
// 7 day refresh tokens.
func New(opts ...Opt) *JWT {
	j := &JWT{
		accessExp:  30 * time.Minute,
		refreshExp: 7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateAccessToken creates a signed access token for the given subject.
func (j *JWT) GenerateAccessToken(ctx context.Context, subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(j.accessExp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GenerateRefreshToken creates a signed refresh token for the given subject
// with a fresh random token id.
func (j *JWT) GenerateRefreshToken(ctx context.Context, subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(j.refreshExp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// Validate checks the signature and expiry of a token string.
// Any parse failure is returned as an error, never a panic.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.parse(tokenString)
	return err
}

// GetSubject parses the token string and returns the subject if the token
// is valid.
func (j *JWT) GetSubject(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return "", err
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("subject not found in token")
	}
	return subject, nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// parse verifies the signature and expiry and returns the claims.
func (j *JWT) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
