// Package user exposes read access to the user directory: the assignee
// selector listing and caller self-lookup.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// Service provides user directory queries.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new user service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}
