package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// notifyCreated tells the assignee a task was created for them. The creator
// is never separately notified on create.
func (s *Service) notifyCreated(ctx context.Context, t *domain.Task) {
	s.dispatch(ctx, domain.Notification{
		Recipient: t.AssignedUser,
		Event:     domain.TaskEventCreated,
		Task:      *t,
		Message:   "A task was created and assigned to you.",
	})
}

// notifyDecided fans a decision out to its recipients: the assignee always,
// the creator additionally unless they assigned the task to themselves.
func (s *Service) notifyDecided(ctx context.Context, t *domain.Task) {
	event := domain.TaskEventApproved
	verb := "approved"
	if t.Status == domain.TaskStatusRejected {
		event = domain.TaskEventRejected
		verb = "rejected"
	}

	decider := ""
	if t.DecisionBy != nil {
		decider = t.DecisionBy.Username
	}

	s.dispatch(ctx, domain.Notification{
		Recipient: t.AssignedUser,
		Event:     event,
		Task:      *t,
		Message:   fmt.Sprintf("Task %s by %s.", verb, decider),
	})

	if !t.SelfAssigned() {
		s.dispatch(ctx, domain.Notification{
			Recipient: t.CreatedBy,
			Event:     event,
			Task:      *t,
			Message:   fmt.Sprintf("Your task was %s by %s.", verb, decider),
		})
	}
}

// dispatch hands one notification to the sink. Failures are logged and
// swallowed: by the time a notification fires the state change is already
// committed, and delivery problems must not surface as request errors.
func (s *Service) dispatch(ctx context.Context, n domain.Notification) {
	if err := s.sink.Notify(ctx, n); err != nil {
		s.log.ErrorContext(ctx, "notification dispatch failed",
			slog.String("event", n.Event.String()),
			slog.String("task_id", n.Task.ID.String()),
			slog.String("recipient", n.Recipient.Username),
			slog.String("error", err.Error()),
		)
	}
}
