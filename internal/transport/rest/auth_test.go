package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
	"github.com/harviniv9/task-booking-management/internal/service/auth"
)

type authServiceMock struct {
	LoginFunc func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	return m.LoginFunc(ctx, input)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(_ context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
			if input.Username != "carol" || input.Password != "s3cret" {
				t.Errorf("unexpected credentials: %+v", input)
			}
			return &auth.LoginResult{
				AccessToken: "signed-token",
				TokenType:   "Bearer",
				ExpiresIn:   8 * time.Hour,
				UserID:      uuid.NewString(),
				Username:    "carol",
				Name:        "Carol",
				Role:        domain.UserRoleManager,
			}, nil
		},
	}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"carol","password":"s3cret"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Errorf("accessToken = %q", resp.AccessToken)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("tokenType = %q", resp.TokenType)
	}
	if resp.ExpiresIn != int64((8 * time.Hour).Seconds()) {
		t.Errorf("expiresIn = %d", resp.ExpiresIn)
	}
	if resp.User.Role != "MANAGER" {
		t.Errorf("user role = %q", resp.User.Role)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(context.Context, auth.LoginInput) (*auth.LoginResult, error) {
			return nil, fmt.Errorf("password mismatch: %w", domain.ErrUnauthorized)
		},
	}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"carol","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(context.Context, auth.LoginInput) (*auth.LoginResult, error) {
			t.Error("service should not be called for malformed JSON")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
