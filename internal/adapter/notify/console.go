// Package notify contains Notification Sink implementations. The sink
// contract is owned by the task service; delivery is pluggable. The console
// sink below writes structured log records, a future implementation could
// hand the same payload to email, a webhook, or a queue.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// ConsoleSink delivers notifications to the application log.
type ConsoleSink struct {
	log *slog.Logger
}

// NewConsoleSink creates a sink writing to the given logger.
func NewConsoleSink(log *slog.Logger) *ConsoleSink {
	return &ConsoleSink{log: log.With("sink", "console")}
}

// Notify writes one notification record. A notification without a recipient
// indicates a data-integrity bug upstream and is rejected rather than
// silently dropped.
func (s *ConsoleSink) Notify(ctx context.Context, n domain.Notification) error {
	if n.Recipient.IsZero() {
		return fmt.Errorf("notification %s for task %s: recipient reference is empty", n.Event, n.Task.ID)
	}

	s.log.InfoContext(ctx, "notification dispatched",
		slog.String("recipient", n.Recipient.Username),
		slog.String("recipient_id", n.Recipient.ID.String()),
		slog.String("event", n.Event.String()),
		slog.String("task_id", n.Task.ID.String()),
		slog.String("title", n.Task.Title),
		slog.String("status", n.Task.Status.String()),
		slog.String("priority", n.Task.Priority.String()),
		slog.Time("task_datetime", n.Task.TaskDateTime),
		slog.String("assigned_to", n.Task.AssignedUser.Username),
		slog.String("created_by", n.Task.CreatedBy.Username),
		slog.String("message", n.Message),
	)

	return nil
}
