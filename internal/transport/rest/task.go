package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
	"github.com/harviniv9/task-booking-management/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	Create(ctx context.Context, input task.CreateInput) (*task.Record, error)
	Decide(ctx context.Context, input task.DecideInput) (*task.Record, error)
	List(ctx context.Context, input task.ListInput) ([]task.Record, error)
	Export(ctx context.Context, input task.ListInput) (*task.ExportResult, error)
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	TaskDateTime   time.Time `json:"taskDateTime"`
	Priority       string    `json:"priority"`
	AssignedUserID uuid.UUID `json:"assignedUserId"`
}

type decideTaskRequest struct {
	Decision string `json:"decision"`
}

type taskResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	TaskDateTime       time.Time  `json:"taskDateTime"`
	AssignedUserID     string     `json:"assignedUserId"`
	AssignedUsername   string     `json:"assignedUsername"`
	CreatedByUserID    string     `json:"createdByUserId"`
	CreatedByUsername  string     `json:"createdByUsername"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	DecisionAt         *time.Time `json:"decisionAt"`
	DecisionByUsername *string    `json:"decisionByUsername"`
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Create(r.Context(), task.CreateInput{
		Title:          req.Title,
		Description:    req.Description,
		TaskDateTime:   req.TaskDateTime,
		Priority:       domain.TaskPriority(req.Priority),
		AssignedUserID: req.AssignedUserID,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(record))
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context(), listInputFromQuery(r))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := make([]taskResponse, len(records))
	for i := range records {
		resp[i] = toTaskResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Decide handles PUT /api/tasks/{id}/approve. The request body names the
// decision, APPROVE or REJECT.
func (h *TaskHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req decideTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Decide(r.Context(), task.DecideInput{
		TaskID:   id,
		Decision: domain.Decision(req.Decision),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(record))
}

// Export handles GET /api/tasks/export. The response is a CSV attachment
// with a timestamped filename.
func (h *TaskHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Export(r.Context(), listInputFromQuery(r))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data) //nolint:errcheck
}

func listInputFromQuery(r *http.Request) task.ListInput {
	q := r.URL.Query()
	return task.ListInput{
		Status:  q.Get("status"),
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
	}
}

func toTaskResponse(rec *task.Record) taskResponse {
	return taskResponse{
		ID:                 rec.ID.String(),
		Title:              rec.Title,
		Description:        rec.Description,
		Status:             rec.Status.String(),
		Priority:           rec.Priority.String(),
		TaskDateTime:       rec.TaskDateTime,
		AssignedUserID:     rec.AssignedUserID.String(),
		AssignedUsername:   rec.AssignedUsername,
		CreatedByUserID:    rec.CreatedByUserID.String(),
		CreatedByUsername:  rec.CreatedByUsername,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
		DecisionAt:         rec.DecisionAt,
		DecisionByUsername: rec.DecisionByUsername,
	}
}
