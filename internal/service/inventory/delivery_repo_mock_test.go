package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/powerline/gridstock/internal/domain"
)

var _ deliveryRepo = &deliveryRepoMock{}

type deliveryRepoMock struct {
	CreateFunc            func(ctx context.Context, e *domain.DeliveryEntry) (*domain.DeliveryEntry, error)
	SumByPairFunc         func(ctx context.Context, materialID, projectID uuid.UUID) (float64, error)
	ExistsForPairFunc     func(ctx context.Context, materialID, projectID uuid.UUID) (bool, error)
	ExistsForMaterialFunc func(ctx context.Context, materialID uuid.UUID) (bool, error)
	ListActivePairsFunc   func(ctx context.Context) ([]domain.LedgerPair, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.DeliveryEntry
		}
		SumByPair []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			ProjectID  uuid.UUID
		}
		ExistsForPair []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			ProjectID  uuid.UUID
		}
		ExistsForMaterial []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
		}
		ListActivePairs []struct {
			Ctx context.Context
		}
	}
	lockCreate            sync.RWMutex
	lockSumByPair         sync.RWMutex
	lockExistsForPair     sync.RWMutex
	lockExistsForMaterial sync.RWMutex
	lockListActivePairs   sync.RWMutex
}

func (mock *deliveryRepoMock) Create(ctx context.Context, e *domain.DeliveryEntry) (*domain.DeliveryEntry, error) {
	if mock.CreateFunc == nil {
		panic("deliveryRepoMock.CreateFunc: method is nil but deliveryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.DeliveryEntry
	}{Ctx: ctx, Entry: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *deliveryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.DeliveryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deliveryRepoMock) SumByPair(ctx context.Context, materialID, projectID uuid.UUID) (float64, error) {
	if mock.SumByPairFunc == nil {
		panic("deliveryRepoMock.SumByPairFunc: method is nil but deliveryRepo.SumByPair was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		ProjectID  uuid.UUID
	}{Ctx: ctx, MaterialID: materialID, ProjectID: projectID}
	mock.lockSumByPair.Lock()
	mock.calls.SumByPair = append(mock.calls.SumByPair, callInfo)
	mock.lockSumByPair.Unlock()
	return mock.SumByPairFunc(ctx, materialID, projectID)
}

func (mock *deliveryRepoMock) SumByPairCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	ProjectID  uuid.UUID
} {
	mock.lockSumByPair.RLock()
	calls := mock.calls.SumByPair
	mock.lockSumByPair.RUnlock()
	return calls
}

func (mock *deliveryRepoMock) ExistsForPair(ctx context.Context, materialID, projectID uuid.UUID) (bool, error) {
	if mock.ExistsForPairFunc == nil {
		panic("deliveryRepoMock.ExistsForPairFunc: method is nil but deliveryRepo.ExistsForPair was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		ProjectID  uuid.UUID
	}{Ctx: ctx, MaterialID: materialID, ProjectID: projectID}
	mock.lockExistsForPair.Lock()
	mock.calls.ExistsForPair = append(mock.calls.ExistsForPair, callInfo)
	mock.lockExistsForPair.Unlock()
	return mock.ExistsForPairFunc(ctx, materialID, projectID)
}

func (mock *deliveryRepoMock) ExistsForPairCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	ProjectID  uuid.UUID
} {
	mock.lockExistsForPair.RLock()
	calls := mock.calls.ExistsForPair
	mock.lockExistsForPair.RUnlock()
	return calls
}

func (mock *deliveryRepoMock) ExistsForMaterial(ctx context.Context, materialID uuid.UUID) (bool, error) {
	if mock.ExistsForMaterialFunc == nil {
		panic("deliveryRepoMock.ExistsForMaterialFunc: method is nil but deliveryRepo.ExistsForMaterial was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
	}{Ctx: ctx, MaterialID: materialID}
	mock.lockExistsForMaterial.Lock()
	mock.calls.ExistsForMaterial = append(mock.calls.ExistsForMaterial, callInfo)
	mock.lockExistsForMaterial.Unlock()
	return mock.ExistsForMaterialFunc(ctx, materialID)
}

func (mock *deliveryRepoMock) ExistsForMaterialCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
} {
	mock.lockExistsForMaterial.RLock()
	calls := mock.calls.ExistsForMaterial
	mock.lockExistsForMaterial.RUnlock()
	return calls
}

func (mock *deliveryRepoMock) ListActivePairs(ctx context.Context) ([]domain.LedgerPair, error) {
	if mock.ListActivePairsFunc == nil {
		panic("deliveryRepoMock.ListActivePairsFunc: method is nil but deliveryRepo.ListActivePairs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActivePairs.Lock()
	mock.calls.ListActivePairs = append(mock.calls.ListActivePairs, callInfo)
	mock.lockListActivePairs.Unlock()
	return mock.ListActivePairsFunc(ctx)
}

func (mock *deliveryRepoMock) ListActivePairsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActivePairs.RLock()
	calls := mock.calls.ListActivePairs
	mock.lockListActivePairs.RUnlock()
	return calls
}
