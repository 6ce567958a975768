package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidateAccessToken(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithAccessExpiration(time.Minute))

	subject := "user@example.com"
	ctx := context.Background()

	token, err := j.GenerateAccessToken(ctx, subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	// Subject round-trips through the token
	got, err := j.GetSubject(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestJWT_GenerateAndValidateRefreshToken(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithRefreshExpiration(time.Minute))

	subject := "user@example.com"
	ctx := context.Background()

	token, err := j.GenerateRefreshToken(ctx, subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	err = j.Validate(ctx, token)
	assert.NoError(t, err)

	got, err := j.GetSubject(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestJWT_RefreshTokensAreUnique(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	// Two refresh tokens for the same subject must differ (random jti)
	first, err := j.GenerateRefreshToken(ctx, "user@example.com")
	assert.NoError(t, err)
	second, err := j.GenerateRefreshToken(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithAccessExpiration(-time.Minute)) // already expired

	ctx := context.Background()

	token, err := j.GenerateAccessToken(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail
	err = j.Validate(ctx, token)
	assert.Error(t, err)

	subject, err := j.GetSubject(ctx, token)
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	// Totally invalid string
	err := j.Validate(ctx, "invalid.token.string")
	assert.Error(t, err)

	subject, err := j.GetSubject(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	// Create token with one secret
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.GenerateAccessToken(ctx, "user@example.com")
	assert.NoError(t, err)

	// Validate with wrong secret should fail
	err = j2.Validate(ctx, token)
	assert.Error(t, err)
}
