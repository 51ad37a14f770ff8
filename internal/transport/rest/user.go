package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/harviniv9/task-booking-management/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	List(ctx context.Context) ([]user.Record, error)
	Me(ctx context.Context) (*user.Record, error)
}

// UserHandler serves user directory REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// List handles GET /api/users, the assignee selector source.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := make([]userResponse, len(records))
	for i, rec := range records {
		resp[i] = toUserResponse(rec)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*record))
}

func toUserResponse(rec user.Record) userResponse {
	return userResponse{
		ID:       rec.ID.String(),
		Name:     rec.Name,
		Username: rec.Username,
		Role:     rec.Role.String(),
	}
}
