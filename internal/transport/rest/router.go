package rest

import "net/http"

// NewRouter registers all API routes on a fresh mux. Middleware is applied
// by the caller around the returned handler.
func NewRouter(tasks *TaskHandler, users *UserHandler, authH *AuthHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", authH.Login)

	mux.HandleFunc("POST /api/tasks", tasks.Create)
	mux.HandleFunc("GET /api/tasks", tasks.List)
	mux.HandleFunc("GET /api/tasks/export", tasks.Export)
	mux.HandleFunc("PUT /api/tasks/{id}/approve", tasks.Decide)

	mux.HandleFunc("GET /api/users", users.List)
	mux.HandleFunc("GET /api/me", users.Me)

	mux.HandleFunc("GET /api/health", health.Health)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	return mux
}
