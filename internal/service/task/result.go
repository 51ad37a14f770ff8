package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Record is the transport-neutral projection of a persisted task.
type Record struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	Status       domain.TaskStatus
	Priority     domain.TaskPriority
	TaskDateTime time.Time

	AssignedUserID   uuid.UUID
	AssignedUsername string

	CreatedByUserID   uuid.UUID
	CreatedByUsername string

	CreatedAt time.Time
	UpdatedAt time.Time

	DecisionAt         *time.Time
	DecisionByUsername *string
}

// ExportResult is a rendered CSV export plus its transport metadata.
type ExportResult struct {
	Filename    string
	Data        []byte
	GeneratedAt time.Time
}

func toRecord(t *domain.Task) Record {
	r := Record{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Status:            t.Status,
		Priority:          t.Priority,
		TaskDateTime:      t.TaskDateTime,
		AssignedUserID:    t.AssignedUser.ID,
		AssignedUsername:  t.AssignedUser.Username,
		CreatedByUserID:   t.CreatedBy.ID,
		CreatedByUsername: t.CreatedBy.Username,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		DecisionAt:        t.DecisionAt,
	}

	if t.DecisionBy != nil {
		username := t.DecisionBy.Username
		r.DecisionByUsername = &username
	}

	return r
}

func toRecords(tasks []*domain.Task) []Record {
	records := make([]Record, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}
	return records
}
