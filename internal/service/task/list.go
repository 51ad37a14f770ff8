package task

import (
	"context"
	"fmt"

	"github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

// List returns tasks matching the filter, ordered per the sort contract:
// default taskDateTime ascending, "desc" (case-insensitive) flips the
// direction, ties broken by id.
func (s *Service) List(ctx context.Context, input ListInput) ([]Record, error) {
	if _, ok := auth.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return toRecords(tasks), nil
}
