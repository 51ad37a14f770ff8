//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harviniv9/task-booking-management/internal/adapter/notify"
	"github.com/harviniv9/task-booking-management/internal/adapter/postgres"
	taskrepo "github.com/harviniv9/task-booking-management/internal/adapter/postgres/task"
	"github.com/harviniv9/task-booking-management/internal/adapter/postgres/testhelper"
	userrepo "github.com/harviniv9/task-booking-management/internal/adapter/postgres/user"
	authpkg "github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/config"
	"github.com/harviniv9/task-booking-management/internal/domain"
	authsvc "github.com/harviniv9/task-booking-management/internal/service/auth"
	tasksvc "github.com/harviniv9/task-booking-management/internal/service/task"
	usersvc "github.com/harviniv9/task-booking-management/internal/service/user"
	"github.com/harviniv9/task-booking-management/internal/transport/middleware"
	"github.com/harviniv9/task-booking-management/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	tasks := taskrepo.New(pool)
	users := userrepo.New(pool)
	sink := notify.NewConsoleSink(logger)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	taskService := tasksvc.NewService(logger, tasks, users, sink, txm)
	userService := usersvc.NewService(logger, users)
	authService := authsvc.NewService(logger, users, jwtMgr)

	mux := rest.NewRouter(
		rest.NewTaskHandler(taskService, logger),
		rest.NewUserHandler(userService, logger),
		rest.NewAuthHandler(authService, logger),
		rest.NewHealthHandler(pool, "test-version"),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
		middleware.Logger(logger),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// Account helpers
// ---------------------------------------------------------------------------

// createAccount inserts an enabled user with a bcrypt-hashed password and
// returns it. The username is unique per call.
func (ts *testServer) createAccount(t *testing.T, role domain.UserRole, password string) domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := &domain.User{
		ID:           uuid.New(),
		Name:         "E2E " + string(role),
		Username:     "e2e-" + uuid.New().String()[:8],
		PasswordHash: string(hash),
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := userrepo.New(ts.Pool).Create(context.Background(), u)
	require.NoError(t, err)
	return *created
}

// login exchanges credentials for an access token via the real endpoint.
func (ts *testServer) login(t *testing.T, username, password string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/login",
		map[string]any{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in login response")
	require.NotEmpty(t, token)
	return token
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// doJSON sends a JSON request and returns status + decoded body.
// A nil payload sends an empty body; a non-JSON response yields a nil map.
func (ts *testServer) doJSON(t *testing.T, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if len(raw) > 0 {
		// Some endpoints (export) return non-JSON bodies.
		_ = json.Unmarshal(raw, &result)
	}
	return resp.StatusCode, result
}

// doRaw sends a request without a body and returns status, headers and raw body.
func (ts *testServer) doRaw(t *testing.T, method, path, token string) (int, http.Header, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, raw
}
