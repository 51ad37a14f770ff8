package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxDescriptionLength is the storage cap on the free-text description column.
const MaxDescriptionLength = 2000

// UserRef is an eagerly resolved identity+username pair. Tasks carry UserRefs
// instead of full User rows so that notification and response building never
// need a second directory lookup.
type UserRef struct {
	ID       uuid.UUID
	Username string
}

// IsZero reports whether the reference is unset.
func (r UserRef) IsZero() bool { return r.ID == uuid.Nil }

// Task is the central entity: a unit of work assigned by one user to another,
// resolved exactly once by a manager or admin decision.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority

	// TaskDateTime is the caller-supplied scheduling timestamp. It has no
	// ordering relationship to CreatedAt.
	TaskDateTime time.Time

	AssignedUser UserRef
	CreatedBy    UserRef

	DecisionBy *UserRef
	DecisionAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the task can still be decided.
func (t *Task) IsPending() bool {
	return t.Status == TaskStatusPending
}

// SelfAssigned reports whether the creator assigned the task to themselves.
// Used by notification fan-out to suppress the duplicate creator message.
func (t *Task) SelfAssigned() bool {
	return t.CreatedBy.ID == t.AssignedUser.ID
}
