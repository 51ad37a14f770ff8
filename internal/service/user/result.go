package user

import (
	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Record is the transport-neutral projection of a directory user.
// Password material never leaves the adapter layer through it.
type Record struct {
	ID       uuid.UUID
	Name     string
	Username string
	Role     domain.UserRole
	Enabled  bool
}

func toRecord(u *domain.User) Record {
	return Record{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
		Enabled:  u.Enabled,
	}
}
