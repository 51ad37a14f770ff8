package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an enabled user with the given role and a placeholder
// password hash. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Username:     "testuser-" + suffix,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceha",
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, username, password_hash, role, enabled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Name, user.Username, user.PasswordHash, string(user.Role), user.Enabled, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTask creates a PENDING task created by creator and assigned to assignee.
// Returns a filled domain.Task.
func SeedTask(t *testing.T, pool *pgxpool.Pool, creator, assignee domain.User) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "Seeded description " + suffix
	task := domain.Task{
		ID:           uuid.New(),
		Title:        "Seeded task " + suffix,
		Description:  &desc,
		Status:       domain.TaskStatusPending,
		Priority:     domain.TaskPriorityMedium,
		TaskDateTime: now.Add(24 * time.Hour),
		AssignedUser: assignee.Ref(),
		CreatedBy:    creator.Ref(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, title, description, status, priority, task_datetime,
		                    assigned_user_id, created_by_user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		task.ID, task.Title, task.Description, string(task.Status), string(task.Priority),
		task.TaskDateTime, task.AssignedUser.ID, task.CreatedBy.ID, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTask insert task: %v", err)
	}

	return task
}

// SeedDecidedTask creates a task already resolved by decider with the given
// terminal status. Returns a filled domain.Task.
func SeedDecidedTask(t *testing.T, pool *pgxpool.Pool, creator, assignee, decider domain.User, status domain.TaskStatus) domain.Task {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	decidedAt := now.Add(time.Hour)
	deciderRef := decider.Ref()
	task := domain.Task{
		ID:           uuid.New(),
		Title:        "Decided task " + suffix,
		Status:       status,
		Priority:     domain.TaskPriorityHigh,
		TaskDateTime: now.Add(48 * time.Hour),
		AssignedUser: assignee.Ref(),
		CreatedBy:    creator.Ref(),
		DecisionBy:   &deciderRef,
		DecisionAt:   &decidedAt,
		CreatedAt:    now,
		UpdatedAt:    decidedAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tasks (id, title, status, priority, task_datetime,
		                    assigned_user_id, created_by_user_id, decision_by_user_id, decision_at,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		task.ID, task.Title, string(task.Status), string(task.Priority), task.TaskDateTime,
		task.AssignedUser.ID, task.CreatedBy.ID, deciderRef.ID, decidedAt,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDecidedTask insert task: %v", err)
	}

	return task
}
