package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/cqrs"
)

type mockAuthQuerier struct {
	loginFn   func(cqrs.LoginCommand) (string, error)
	refreshFn func(cqrs.RefreshTokenCommand) (string, error)
}

func (m *mockAuthQuerier) Login(_ context.Context, cmd cqrs.LoginCommand) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(cmd)
	}
	return "", fmt.Errorf("not configured")
}

func (m *mockAuthQuerier) RefreshToken(_ context.Context, cmd cqrs.RefreshTokenCommand) (string, error) {
	if m.refreshFn != nil {
		return m.refreshFn(cmd)
	}
	return "", fmt.Errorf("not configured")
}

func newAuthTestRouter(qrys AuthQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(qrys)
	api := r.Group("/api")
	api.POST("/auth/login", h.Login)
	api.POST("/auth/refresh", h.RefreshToken)
	return r
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		loginFn        func(cqrs.LoginCommand) (string, error)
		expectedStatus int
	}{
		{
			name:           "success",
			body:           map[string]any{"email": "kim.soonja@example.com", "password": "demo1234"},
			loginFn:        func(cmd cqrs.LoginCommand) (string, error) { return "signed.jwt.token", nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorized - wrong password",
			body:           map[string]any{"email": "kim.soonja@example.com", "password": "wrongpass"},
			loginFn:        func(cmd cqrs.LoginCommand) (string, error) { return "", fmt.Errorf("invalid credentials") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - invalid email",
			body:           map[string]any{"email": "not-an-email", "password": "demo1234"},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]any{"email": "kim.soonja@example.com"},
			loginFn:        nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthQuerier{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/api/auth/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestLoginReturnsToken(t *testing.T) {
	router := newAuthTestRouter(&mockAuthQuerier{
		loginFn: func(cmd cqrs.LoginCommand) (string, error) { return "signed.jwt.token", nil },
	})

	w := doRequest(router, http.MethodPost, "/api/auth/login", map[string]any{
		"email": "kim.soonja@example.com", "password": "demo1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Token != "signed.jwt.token" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
}

func TestRefreshTokenHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		refreshFn      func(cqrs.RefreshTokenCommand) (string, error)
		expectedStatus int
	}{
		{
			name:           "success",
			body:           map[string]any{"token": "old.jwt.token"},
			refreshFn:      func(cmd cqrs.RefreshTokenCommand) (string, error) { return "new.jwt.token", nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorized - expired token",
			body:           map[string]any{"token": "expired.jwt.token"},
			refreshFn:      func(cmd cqrs.RefreshTokenCommand) (string, error) { return "", fmt.Errorf("token expired") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - missing token",
			body:           map[string]any{},
			refreshFn:      nil,
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthQuerier{refreshFn: tt.refreshFn})
			w := doRequest(router, http.MethodPost, "/api/auth/refresh", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
