package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sh-lee/mygallery/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refreshExp := 7 * 24 * time.Hour

	tests := []struct {
		name          string
		reqBody       LoginRequest
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
		rawBody       bool
	}{
		{
			name: "success",
			reqBody: LoginRequest{
				Username: "john@example.com",
				Password: "secret",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret").
					Return("access-token", "refresh-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			reqBody: LoginRequest{
				Username: "john@example.com",
				Password: "wrong",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
		{
			name: "unknown user",
			reqBody: LoginRequest{
				Username: "ghost@example.com",
				Password: "secret",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "secret").
					Return("", "", services.ErrUserDoesNotExist)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid email or password",
		},
		{
			name: "internal server error",
			reqBody: LoginRequest{
				Username: "john@example.com",
				Password: "secret",
			},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret").
					Return("", "", errors.New("redis down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc, refreshExp)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp LoginResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "access-token", resp.AccessToken)

			// Refresh token travels only in the cookie
			assert.NotContains(t, rr.Body.String(), "refresh-token")

			cookies := rr.Result().Cookies()
			var refreshCookie *http.Cookie
			for _, c := range cookies {
				if c.Name == refreshCookieName {
					refreshCookie = c
				}
			}
			assert.NotNil(t, refreshCookie)
			assert.Equal(t, "refresh-token", refreshCookie.Value)
			assert.True(t, refreshCookie.HttpOnly)
			assert.True(t, refreshCookie.Secure)
			assert.Equal(t, "/", refreshCookie.Path)
			assert.Equal(t, http.SameSiteNoneMode, refreshCookie.SameSite)
			assert.Equal(t, int(refreshExp.Seconds()), refreshCookie.MaxAge)
		})
	}
}
