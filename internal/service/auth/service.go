// Package auth implements credential login against the user directory and
// access token issuance.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(user *domain.User) (string, error)
	AccessTTL() time.Duration
}

// Service authenticates users and issues access tokens.
type Service struct {
	users  userRepo
	tokens tokenIssuer
	log    *slog.Logger
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, tokens tokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		log:    log.With("service", "auth"),
	}
}
