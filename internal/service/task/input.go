package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// CreateInput holds the parameters for creating a task.
type CreateInput struct {
	Title          string
	Description    *string
	TaskDateTime   time.Time
	Priority       domain.TaskPriority
	AssignedUserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if i.Description != nil && len(*i.Description) > domain.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if i.TaskDateTime.IsZero() {
		errs = append(errs, domain.FieldError{Field: "taskDateTime", Message: "required"})
	}

	if i.Priority == "" {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "required"})
	} else if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be LOW, MEDIUM or HIGH"})
	}

	if i.AssignedUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assignedUserId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DecideInput holds the parameters for resolving a pending task.
type DecideInput struct {
	TaskID   uuid.UUID
	Decision domain.Decision
}

// Validate checks all fields and collects all errors.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be APPROVE or REJECT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the raw listing parameters as received at the transport
// boundary. Filter() validates and normalizes them into a domain.TaskFilter.
type ListInput struct {
	Status  string
	SortBy  string
	SortDir string
}

// Filter converts the raw input into a normalized task filter.
func (i ListInput) Filter() (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	if s := strings.TrimSpace(i.Status); s != "" {
		status := domain.TaskStatus(s)
		if !status.IsValid() {
			return domain.TaskFilter{}, domain.NewValidationError("status", "must be PENDING, APPROVED or REJECTED")
		}
		filter.Status = &status
	}

	sortBy, err := domain.ParseTaskSortField(i.SortBy)
	if err != nil {
		return domain.TaskFilter{}, err
	}
	filter.SortBy = sortBy
	filter.Direction = domain.ParseSortDirection(i.SortDir)

	return filter, nil
}
