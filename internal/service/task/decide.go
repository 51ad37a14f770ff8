package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Decide applies the one-shot approve/reject transition to a pending task.
//
// The role check runs before any store access: a USER-role caller learns
// nothing about task existence. The load-check-write sequence runs inside a
// transaction with a row lock, so two concurrent decisions on the same
// pending task cannot both succeed; the loser gets ErrInvalidState rather
// than a silent no-op.
func (s *Service) Decide(ctx context.Context, input DecideInput) (*Record, error) {
	identity, ok := auth.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !identity.Role.CanDecide() {
		return nil, fmt.Errorf("role %s may not decide tasks: %w", identity.Role, domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var decided *domain.Task

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.tasks.GetByIDForUpdate(txCtx, input.TaskID)
		if err != nil {
			return fmt.Errorf("load task: %w", err)
		}

		if !t.IsPending() {
			return fmt.Errorf("task %s is %s, only pending tasks may be decided: %w",
				t.ID, t.Status, domain.ErrInvalidState)
		}

		now := time.Now().UTC()
		status := input.Decision.Status()

		if err := s.tasks.SetDecision(txCtx, t.ID, status, identity.UserID, now, now); err != nil {
			return err
		}

		decider := domain.UserRef{ID: identity.UserID, Username: identity.Username}
		t.Status = status
		t.DecisionBy = &decider
		t.DecisionAt = &now
		t.UpdatedAt = now
		decided = t

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fires after commit; a sink failure never rolls the decision back.
	s.notifyDecided(ctx, decided)

	s.log.InfoContext(ctx, "task decided",
		slog.String("task_id", decided.ID.String()),
		slog.String("decision", input.Decision.String()),
		slog.String("decided_by", identity.Username),
	)

	record := toRecord(decided)
	return &record, nil
}
