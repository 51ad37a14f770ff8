package user

import (
	"context"
	"fmt"

	"github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

// List returns all directory users ordered by username, for the task
// assignment selector.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	if _, ok := auth.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	records := make([]Record, len(users))
	for i, u := range users {
		records[i] = toRecord(u)
	}
	return records, nil
}
