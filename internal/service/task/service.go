// Package task implements the task lifecycle engine: creation, the one-shot
// approve/reject decision, and the listing/export views. All state transitions
// and their notification side effects live here.
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	SetDecision(ctx context.Context, id uuid.UUID, status domain.TaskStatus, decidedBy uuid.UUID, decidedAt, updatedAt time.Time) error
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notificationSink interface {
	Notify(ctx context.Context, n domain.Notification) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides task lifecycle and query operations.
type Service struct {
	tasks taskRepo
	users userRepo
	sink  notificationSink
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new task service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	users userRepo,
	sink notificationSink,
	tx txManager,
) *Service {
	return &Service{
		tasks: tasks,
		users: users,
		sink:  sink,
		tx:    tx,
		log:   log.With("service", "task"),
	}
}
