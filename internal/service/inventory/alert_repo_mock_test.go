package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/powerline/gridstock/internal/domain"
)

var _ alertRepo = &alertRepoMock{}

type alertRepoMock struct {
	UpsertActiveFunc func(ctx context.Context, a *domain.ReorderAlert) (*domain.ReorderAlert, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.ReorderAlert, error)
	AcknowledgeFunc  func(ctx context.Context, id, byUser uuid.UUID, at time.Time) error
	ListActiveFunc   func(ctx context.Context, f domain.AlertFilter) ([]domain.ReorderAlert, error)

	calls struct {
		UpsertActive []struct {
			Ctx   context.Context
			Alert *domain.ReorderAlert
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Acknowledge []struct {
			Ctx    context.Context
			ID     uuid.UUID
			ByUser uuid.UUID
			At     time.Time
		}
		ListActive []struct {
			Ctx    context.Context
			Filter domain.AlertFilter
		}
	}
	lockUpsertActive sync.RWMutex
	lockGetByID      sync.RWMutex
	lockAcknowledge  sync.RWMutex
	lockListActive   sync.RWMutex
}

func (mock *alertRepoMock) UpsertActive(ctx context.Context, a *domain.ReorderAlert) (*domain.ReorderAlert, error) {
	if mock.UpsertActiveFunc == nil {
		panic("alertRepoMock.UpsertActiveFunc: method is nil but alertRepo.UpsertActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Alert *domain.ReorderAlert
	}{Ctx: ctx, Alert: a}
	mock.lockUpsertActive.Lock()
	mock.calls.UpsertActive = append(mock.calls.UpsertActive, callInfo)
	mock.lockUpsertActive.Unlock()
	return mock.UpsertActiveFunc(ctx, a)
}

func (mock *alertRepoMock) UpsertActiveCalls() []struct {
	Ctx   context.Context
	Alert *domain.ReorderAlert
} {
	mock.lockUpsertActive.RLock()
	calls := mock.calls.UpsertActive
	mock.lockUpsertActive.RUnlock()
	return calls
}

func (mock *alertRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReorderAlert, error) {
	if mock.GetByIDFunc == nil {
		panic("alertRepoMock.GetByIDFunc: method is nil but alertRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *alertRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *alertRepoMock) Acknowledge(ctx context.Context, id, byUser uuid.UUID, at time.Time) error {
	if mock.AcknowledgeFunc == nil {
		panic("alertRepoMock.AcknowledgeFunc: method is nil but alertRepo.Acknowledge was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		ByUser uuid.UUID
		At     time.Time
	}{Ctx: ctx, ID: id, ByUser: byUser, At: at}
	mock.lockAcknowledge.Lock()
	mock.calls.Acknowledge = append(mock.calls.Acknowledge, callInfo)
	mock.lockAcknowledge.Unlock()
	return mock.AcknowledgeFunc(ctx, id, byUser, at)
}

func (mock *alertRepoMock) AcknowledgeCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	ByUser uuid.UUID
	At     time.Time
} {
	mock.lockAcknowledge.RLock()
	calls := mock.calls.Acknowledge
	mock.lockAcknowledge.RUnlock()
	return calls
}

func (mock *alertRepoMock) ListActive(ctx context.Context, f domain.AlertFilter) ([]domain.ReorderAlert, error) {
	if mock.ListActiveFunc == nil {
		panic("alertRepoMock.ListActiveFunc: method is nil but alertRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.AlertFilter
	}{Ctx: ctx, Filter: f}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, f)
}

func (mock *alertRepoMock) ListActiveCalls() []struct {
	Ctx    context.Context
	Filter domain.AlertFilter
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
