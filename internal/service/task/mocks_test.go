package task

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CreateFunc           func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	SetDecisionFunc      func(ctx context.Context, id uuid.UUID, status domain.TaskStatus, decidedBy uuid.UUID, decidedAt, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)

	calls struct {
		Create           []struct{ T *domain.Task }
		GetByID          []struct{ ID uuid.UUID }
		GetByIDForUpdate []struct{ ID uuid.UUID }
		SetDecision      []struct {
			ID        uuid.UUID
			Status    domain.TaskStatus
			DecidedBy uuid.UUID
		}
		List []struct{ Filter domain.TaskFilter }
	}
	mu sync.Mutex
}

func (m *taskRepoMock) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if m.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, struct{ T *domain.Task }{t})
	m.mu.Unlock()
	return m.CreateFunc(ctx, t)
}

func (m *taskRepoMock) CreateCalls() []struct{ T *domain.Task } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *taskRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, struct{ ID uuid.UUID }{id})
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *taskRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("taskRepoMock.GetByIDForUpdateFunc: method is nil but taskRepo.GetByIDForUpdate was just called")
	}
	m.mu.Lock()
	m.calls.GetByIDForUpdate = append(m.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{id})
	m.mu.Unlock()
	return m.GetByIDForUpdateFunc(ctx, id)
}

func (m *taskRepoMock) GetByIDForUpdateCalls() []struct{ ID uuid.UUID } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByIDForUpdate
}

func (m *taskRepoMock) SetDecision(ctx context.Context, id uuid.UUID, status domain.TaskStatus, decidedBy uuid.UUID, decidedAt, updatedAt time.Time) error {
	if m.SetDecisionFunc == nil {
		panic("taskRepoMock.SetDecisionFunc: method is nil but taskRepo.SetDecision was just called")
	}
	m.mu.Lock()
	m.calls.SetDecision = append(m.calls.SetDecision, struct {
		ID        uuid.UUID
		Status    domain.TaskStatus
		DecidedBy uuid.UUID
	}{id, status, decidedBy})
	m.mu.Unlock()
	return m.SetDecisionFunc(ctx, id, status, decidedBy, decidedAt, updatedAt)
}

func (m *taskRepoMock) SetDecisionCalls() []struct {
	ID        uuid.UUID
	Status    domain.TaskStatus
	DecidedBy uuid.UUID
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetDecision
}

func (m *taskRepoMock) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, struct{ Filter domain.TaskFilter }{filter})
	m.mu.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *taskRepoMock) ListCalls() []struct{ Filter domain.TaskFilter } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct{ ID uuid.UUID }
	}
	mu sync.Mutex
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, struct{ ID uuid.UUID }{id})
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

var _ notificationSink = &notificationSinkMock{}

type notificationSinkMock struct {
	NotifyFunc func(ctx context.Context, n domain.Notification) error

	calls struct {
		Notify []struct{ N domain.Notification }
	}
	mu sync.Mutex
}

func (m *notificationSinkMock) Notify(ctx context.Context, n domain.Notification) error {
	m.mu.Lock()
	m.calls.Notify = append(m.calls.Notify, struct{ N domain.Notification }{n})
	m.mu.Unlock()
	if m.NotifyFunc == nil {
		return nil
	}
	return m.NotifyFunc(ctx, n)
}

func (m *notificationSinkMock) NotifyCalls() []struct{ N domain.Notification } {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Notify
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, mimicking a committed transaction.
// Set RunInTxFunc to simulate begin/commit failures.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
