package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("valid-token", nil)
	tokener.EXPECT().
		GetSubject(gomock.Any(), "valid-token").
		Return("user@example.com", nil)

	var gotSubject string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, gotOK = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(tokener)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotOK)
	assert.Equal(t, "user@example.com", gotSubject)
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("authorization header missing"))

	// Request continues without an authenticated subject
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		_, ok := SubjectFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(tokener)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("bad-token", nil)
	tokener.EXPECT().
		GetSubject(gomock.Any(), "bad-token").
		Return("", errors.New("invalid token"))

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		_, ok := SubjectFromContext(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	handler := AuthMiddleware(tokener)(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSubjectFromContext_EmptySubject(t *testing.T) {
	ctx := SetSubjectToContext(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "")

	subject, ok := SubjectFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, subject)
}
