package user

import (
	"context"
	"fmt"

	"github.com/harviniv9/task-booking-management/internal/auth"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Me resolves the calling identity against the directory.
func (s *Service) Me(ctx context.Context) (*Record, error) {
	identity, ok := auth.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve caller %s: %w", identity.UserID, err)
	}

	record := toRecord(u)
	return &record, nil
}
