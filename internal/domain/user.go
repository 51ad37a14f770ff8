package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the user directory.
type User struct {
	ID           uuid.UUID
	Name         string
	Username     string
	PasswordHash string
	Role         UserRole
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the identity+username pair used inside tasks and notifications.
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username}
}
