package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Create validates the request, resolves the assignee and the caller in the
// user directory, persists a new PENDING task and notifies the assignee.
// Notification dispatch is best-effort: once the row is written the persisted
// record is returned even if the sink fails.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Record, error) {
	identity, ok := auth.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	assignee, err := s.users.GetByID(ctx, input.AssignedUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve assigned user: %w", err)
	}

	// Authentication already vouched for the caller; a missing directory row
	// at this point is a data-integrity fault, not a 404.
	creator, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("caller %s not present in user directory: %w", identity.UserID, domain.ErrInvalidState)
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}

	now := time.Now().UTC()
	t := &domain.Task{
		ID:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		Status:       domain.TaskStatusPending,
		Priority:     input.Priority,
		TaskDateTime: input.TaskDateTime,
		AssignedUser: assignee.Ref(),
		CreatedBy:    creator.Ref(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	persisted, err := s.tasks.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.notifyCreated(ctx, persisted)

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", persisted.ID.String()),
		slog.String("created_by", persisted.CreatedBy.Username),
		slog.String("assigned_to", persisted.AssignedUser.Username),
		slog.String("priority", persisted.Priority.String()),
	)

	record := toRecord(persisted)
	return &record, nil
}
