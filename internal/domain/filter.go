package domain

import "strings"

// SortDirection is the normalized sort order applied to task listings.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection normalizes a caller-supplied direction string.
// "desc" (case-insensitive) means descending; anything else, including the
// empty string, means ascending.
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), "desc") {
		return SortDesc
	}
	return SortAsc
}

// TaskSortField names a sortable field of the task listing contract.
// Values use the transport-level camelCase names.
type TaskSortField string

const (
	SortFieldID           TaskSortField = "id"
	SortFieldTitle        TaskSortField = "title"
	SortFieldStatus       TaskSortField = "status"
	SortFieldPriority     TaskSortField = "priority"
	SortFieldTaskDateTime TaskSortField = "taskDateTime"
	SortFieldCreatedAt    TaskSortField = "createdAt"
	SortFieldUpdatedAt    TaskSortField = "updatedAt"
	SortFieldDecisionAt   TaskSortField = "decisionAt"
)

func (f TaskSortField) String() string { return string(f) }

func (f TaskSortField) IsValid() bool {
	switch f {
	case SortFieldID, SortFieldTitle, SortFieldStatus, SortFieldPriority,
		SortFieldTaskDateTime, SortFieldCreatedAt, SortFieldUpdatedAt, SortFieldDecisionAt:
		return true
	}
	return false
}

// ParseTaskSortField validates a caller-supplied sort field name.
// A blank name falls back to taskDateTime. An unknown name is rejected here
// so that storage errors never leak to the caller.
func ParseTaskSortField(raw string) (TaskSortField, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortFieldTaskDateTime, nil
	}
	f := TaskSortField(raw)
	if !f.IsValid() {
		return "", NewValidationError("sortBy", "unknown sort field: "+raw)
	}
	return f, nil
}

// TaskFilter defines the filter and ordering for task listings and exports.
// The resulting order is fully determined by (SortBy, Direction); the store
// breaks ties by id ascending.
type TaskFilter struct {
	// Status restricts the listing to tasks with that exact status.
	// nil means all tasks.
	Status *TaskStatus

	SortBy    TaskSortField
	Direction SortDirection
}
