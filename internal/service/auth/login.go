package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// LoginInput holds the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration

	UserID   string
	Username string
	Name     string
	Role     domain.UserRole
}

// Login verifies the credentials against the directory and issues an access
// token. Unknown usernames, wrong passwords and disabled accounts all come
// back as ErrUnauthorized so the response does not reveal which check failed.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown username: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if !u.Enabled {
		s.log.WarnContext(ctx, "login attempt for disabled account",
			slog.String("username", u.Username),
		)
		return nil, fmt.Errorf("account disabled: %w", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("password mismatch: %w", domain.ErrUnauthorized)
	}

	token, err := s.tokens.GenerateAccessToken(u)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("username", u.Username),
		slog.String("role", u.Role.String()),
	)

	return &LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokens.AccessTTL(),
		UserID:      u.ID.String(),
		Username:    u.Username,
		Name:        u.Name,
		Role:        u.Role,
	}, nil
}
