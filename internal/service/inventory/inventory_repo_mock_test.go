package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/powerline/gridstock/internal/domain"
)

var _ inventoryRepo = &inventoryRepoMock{}

type inventoryRepoMock struct {
	EnsureRecordFunc    func(ctx context.Context, materialID uuid.UUID, now time.Time) error
	GetByMaterialFunc   func(ctx context.Context, materialID uuid.UUID) (*domain.InventoryRecord, error)
	ListFunc            func(ctx context.Context) ([]domain.InventoryRecord, error)
	AddStockFunc        func(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error
	DeductStockFunc     func(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error
	AddReservedFunc     func(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error
	SetReorderPointFunc func(ctx context.Context, materialID uuid.UUID, point float64, now time.Time) error

	calls struct {
		EnsureRecord []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			Now        time.Time
		}
		GetByMaterial []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		AddStock []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			Qty        float64
			Now        time.Time
		}
		DeductStock []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			Qty        float64
			Now        time.Time
		}
		AddReserved []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			Qty        float64
			Now        time.Time
		}
		SetReorderPoint []struct {
			Ctx        context.Context
			MaterialID uuid.UUID
			Point      float64
			Now        time.Time
		}
	}
	lockEnsureRecord    sync.RWMutex
	lockGetByMaterial   sync.RWMutex
	lockList            sync.RWMutex
	lockAddStock        sync.RWMutex
	lockDeductStock     sync.RWMutex
	lockAddReserved     sync.RWMutex
	lockSetReorderPoint sync.RWMutex
}

func (mock *inventoryRepoMock) EnsureRecord(ctx context.Context, materialID uuid.UUID, now time.Time) error {
	if mock.EnsureRecordFunc == nil {
		panic("inventoryRepoMock.EnsureRecordFunc: method is nil but inventoryRepo.EnsureRecord was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Now        time.Time
	}{Ctx: ctx, MaterialID: materialID, Now: now}
	mock.lockEnsureRecord.Lock()
	mock.calls.EnsureRecord = append(mock.calls.EnsureRecord, callInfo)
	mock.lockEnsureRecord.Unlock()
	return mock.EnsureRecordFunc(ctx, materialID, now)
}

func (mock *inventoryRepoMock) EnsureRecordCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	Now        time.Time
} {
	mock.lockEnsureRecord.RLock()
	calls := mock.calls.EnsureRecord
	mock.lockEnsureRecord.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) GetByMaterial(ctx context.Context, materialID uuid.UUID) (*domain.InventoryRecord, error) {
	if mock.GetByMaterialFunc == nil {
		panic("inventoryRepoMock.GetByMaterialFunc: method is nil but inventoryRepo.GetByMaterial was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
	}{Ctx: ctx, MaterialID: materialID}
	mock.lockGetByMaterial.Lock()
	mock.calls.GetByMaterial = append(mock.calls.GetByMaterial, callInfo)
	mock.lockGetByMaterial.Unlock()
	return mock.GetByMaterialFunc(ctx, materialID)
}

func (mock *inventoryRepoMock) GetByMaterialCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
} {
	mock.lockGetByMaterial.RLock()
	calls := mock.calls.GetByMaterial
	mock.lockGetByMaterial.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	if mock.ListFunc == nil {
		panic("inventoryRepoMock.ListFunc: method is nil but inventoryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *inventoryRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) AddStock(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error {
	if mock.AddStockFunc == nil {
		panic("inventoryRepoMock.AddStockFunc: method is nil but inventoryRepo.AddStock was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Qty        float64
		Now        time.Time
	}{Ctx: ctx, MaterialID: materialID, Qty: qty, Now: now}
	mock.lockAddStock.Lock()
	mock.calls.AddStock = append(mock.calls.AddStock, callInfo)
	mock.lockAddStock.Unlock()
	return mock.AddStockFunc(ctx, materialID, qty, now)
}

func (mock *inventoryRepoMock) AddStockCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	Qty        float64
	Now        time.Time
} {
	mock.lockAddStock.RLock()
	calls := mock.calls.AddStock
	mock.lockAddStock.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) DeductStock(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error {
	if mock.DeductStockFunc == nil {
		panic("inventoryRepoMock.DeductStockFunc: method is nil but inventoryRepo.DeductStock was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Qty        float64
		Now        time.Time
	}{Ctx: ctx, MaterialID: materialID, Qty: qty, Now: now}
	mock.lockDeductStock.Lock()
	mock.calls.DeductStock = append(mock.calls.DeductStock, callInfo)
	mock.lockDeductStock.Unlock()
	return mock.DeductStockFunc(ctx, materialID, qty, now)
}

func (mock *inventoryRepoMock) DeductStockCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	Qty        float64
	Now        time.Time
} {
	mock.lockDeductStock.RLock()
	calls := mock.calls.DeductStock
	mock.lockDeductStock.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) AddReserved(ctx context.Context, materialID uuid.UUID, qty float64, now time.Time) error {
	if mock.AddReservedFunc == nil {
		panic("inventoryRepoMock.AddReservedFunc: method is nil but inventoryRepo.AddReserved was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Qty        float64
		Now        time.Time
	}{Ctx: ctx, MaterialID: materialID, Qty: qty, Now: now}
	mock.lockAddReserved.Lock()
	mock.calls.AddReserved = append(mock.calls.AddReserved, callInfo)
	mock.lockAddReserved.Unlock()
	return mock.AddReservedFunc(ctx, materialID, qty, now)
}

func (mock *inventoryRepoMock) AddReservedCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	Qty        float64
	Now        time.Time
} {
	mock.lockAddReserved.RLock()
	calls := mock.calls.AddReserved
	mock.lockAddReserved.RUnlock()
	return calls
}

func (mock *inventoryRepoMock) SetReorderPoint(ctx context.Context, materialID uuid.UUID, point float64, now time.Time) error {
	if mock.SetReorderPointFunc == nil {
		panic("inventoryRepoMock.SetReorderPointFunc: method is nil but inventoryRepo.SetReorderPoint was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaterialID uuid.UUID
		Point      float64
		Now        time.Time
	}{Ctx: ctx, MaterialID: materialID, Point: point, Now: now}
	mock.lockSetReorderPoint.Lock()
	mock.calls.SetReorderPoint = append(mock.calls.SetReorderPoint, callInfo)
	mock.lockSetReorderPoint.Unlock()
	return mock.SetReorderPointFunc(ctx, materialID, point, now)
}

func (mock *inventoryRepoMock) SetReorderPointCalls() []struct {
	Ctx        context.Context
	MaterialID uuid.UUID
	Point      float64
	Now        time.Time
} {
	mock.lockSetReorderPoint.RLock()
	calls := mock.calls.SetReorderPoint
	mock.lockSetReorderPoint.RUnlock()
	return calls
}
