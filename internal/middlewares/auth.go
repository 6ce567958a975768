package middlewares

import (
	"context"
	"net/http"

	"github.com/sh-lee/mygallery/internal/logger"
)

// Tokener defines the minimal token operations the gate needs.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware returns the request gate. It extracts the bearer token,
// validates it, and stores the authenticated subject in the request context.
// On a missing or invalid token the request continues without a subject;
// handlers that need identity reject it themselves.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err == nil {
				subject, err := tokener.GetSubject(ctx, tokenString)
				if err == nil {
					ctx = SetSubjectToContext(ctx, subject)
				} else {
					logger.Log.Debugw("access token rejected", "err", err)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// subjectContextKey is an unexported type for the subject context key.
type subjectContextKey struct{}

var subjectKey = subjectContextKey{}

// SetSubjectToContext stores the authenticated subject in the context.
func SetSubjectToContext(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authenticated subject established by the
// gate, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}
