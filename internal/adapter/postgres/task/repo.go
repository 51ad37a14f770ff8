// Package task implements the task store using PostgreSQL. Reads join the
// users table three ways so that every returned task carries eagerly resolved
// assignee/creator/decider references.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/harviniv9/task-booking-management/internal/adapter/postgres"
	"github.com/harviniv9/task-booking-management/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const taskColumns = `t.id, t.title, t.description, t.status, t.priority, t.task_datetime,
t.assigned_user_id, au.username,
t.created_by_user_id, cu.username,
t.decision_by_user_id, du.username,
t.decision_at, t.created_at, t.updated_at`

const taskJoins = `
FROM tasks t
JOIN users au ON au.id = t.assigned_user_id
JOIN users cu ON cu.id = t.created_by_user_id
LEFT JOIN users du ON du.id = t.decision_by_user_id`

const createSQL = `
INSERT INTO tasks (id, title, description, status, priority, task_datetime,
                   assigned_user_id, created_by_user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getByIDSQL = `
SELECT ` + taskColumns + taskJoins + `
WHERE t.id = $1`

// FOR UPDATE OF t locks only the task row; the joined user rows stay free.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE OF t`

// The status guard makes the decision a compare-and-set: a concurrent decide
// that commits first leaves zero rows for the loser.
const setDecisionSQL = `
UPDATE tasks
SET status = $2, decision_by_user_id = $3, decision_at = $4, updated_at = $5
WHERE id = $1 AND status = $6`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new task. The caller supplies the fully built task,
// timestamps included; the row is written verbatim.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		t.ID, t.Title, t.Description, t.Status.String(), t.Priority.String(), t.TaskDateTime,
		t.AssignedUser.ID, t.CreatedBy.ID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "task", t.ID)
	}

	return t, nil
}

// SetDecision applies the terminal transition to a PENDING task.
// Returns domain.ErrInvalidState when the row is no longer pending (or has
// vanished), which the service surfaces as a repeated-decision conflict.
func (r *Repo) SetDecision(ctx context.Context, id uuid.UUID, status domain.TaskStatus, decidedBy uuid.UUID, decidedAt, updatedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setDecisionSQL,
		id, status.String(), decidedBy, decidedAt, updatedAt, domain.TaskStatusPending.String(),
	)
	if err != nil {
		return mapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: only pending tasks may be decided: %w", id, domain.ErrInvalidState)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key with user references resolved.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "task", id)
	}
	return t, nil
}

// GetByIDForUpdate returns a task by primary key and takes a row-level lock
// on it. Must be called inside a transaction; used by the decide operation to
// serialize concurrent decisions on the same task.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTask(q.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, mapError(err, "task", id)
	}
	return t, nil
}

// List returns tasks matching the filter, ordered by the filter's sort field
// and direction with ties broken by id ascending.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	qb := sq.Select(taskColumns).
		From("tasks t").
		Join("users au ON au.id = t.assigned_user_id").
		Join("users cu ON cu.id = t.created_by_user_id").
		LeftJoin("users du ON du.id = t.decision_by_user_id").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != nil {
		qb = qb.Where(sq.Eq{"t.status": filter.Status.String()})
	}

	qb = qb.OrderBy(
		sortColumn(filter.SortBy)+" "+string(filter.Direction),
		"t.id ASC",
	)

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// ---------------------------------------------------------------------------
// Scanning and error mapping
// ---------------------------------------------------------------------------

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t                 domain.Task
		status, priority  string
		assignedUsername  string
		createdByUsername string
		decisionByID      *uuid.UUID
		decisionByName    *string
	)

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &status, &priority, &t.TaskDateTime,
		&t.AssignedUser.ID, &assignedUsername,
		&t.CreatedBy.ID, &createdByUsername,
		&decisionByID, &decisionByName,
		&t.DecisionAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(priority)
	t.AssignedUser.Username = assignedUsername
	t.CreatedBy.Username = createdByUsername

	if decisionByID != nil {
		ref := domain.UserRef{ID: *decisionByID}
		if decisionByName != nil {
			ref.Username = *decisionByName
		}
		t.DecisionBy = &ref
	}

	return &t, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
