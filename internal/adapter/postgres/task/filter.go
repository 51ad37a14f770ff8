package task

import "github.com/harviniv9/task-booking-management/internal/domain"

// sortColumn maps a transport-level sort field onto its SQL column.
// domain.ParseTaskSortField has already rejected unknown names, so the
// default arm only guards against future enum additions.
func sortColumn(f domain.TaskSortField) string {
	switch f {
	case domain.SortFieldID:
		return "t.id"
	case domain.SortFieldTitle:
		return "t.title"
	case domain.SortFieldStatus:
		return "t.status"
	case domain.SortFieldPriority:
		return "t.priority"
	case domain.SortFieldCreatedAt:
		return "t.created_at"
	case domain.SortFieldUpdatedAt:
		return "t.updated_at"
	case domain.SortFieldDecisionAt:
		return "t.decision_at"
	default:
		return "t.task_datetime"
	}
}
