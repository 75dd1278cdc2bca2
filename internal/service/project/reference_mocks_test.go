package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/internal/provider"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ materialRepo = &materialRepoMock{}

type materialRepoMock struct {
	GetByKindFunc func(ctx context.Context, kind domain.MaterialKind) (*domain.Material, error)

	calls struct {
		GetByKind []struct {
			Ctx  context.Context
			Kind domain.MaterialKind
		}
	}
	lockGetByKind sync.RWMutex
}

func (mock *materialRepoMock) GetByKind(ctx context.Context, kind domain.MaterialKind) (*domain.Material, error) {
	if mock.GetByKindFunc == nil {
		panic("materialRepoMock.GetByKindFunc: method is nil but materialRepo.GetByKind was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.MaterialKind
	}{Ctx: ctx, Kind: kind}
	mock.lockGetByKind.Lock()
	mock.calls.GetByKind = append(mock.calls.GetByKind, callInfo)
	mock.lockGetByKind.Unlock()
	return mock.GetByKindFunc(ctx, kind)
}

func (mock *materialRepoMock) GetByKindCalls() []struct {
	Ctx  context.Context
	Kind domain.MaterialKind
} {
	mock.lockGetByKind.RLock()
	calls := mock.calls.GetByKind
	mock.lockGetByKind.RUnlock()
	return calls
}

var _ forecaster = &forecasterMock{}

type forecasterMock struct {
	PredictAllFunc func(ctx context.Context, attrs domain.ProjectAttributes) (*provider.ForecastResult, error)

	calls struct {
		PredictAll []struct {
			Ctx   context.Context
			Attrs domain.ProjectAttributes
		}
	}
	lockPredictAll sync.RWMutex
}

func (mock *forecasterMock) PredictAll(ctx context.Context, attrs domain.ProjectAttributes) (*provider.ForecastResult, error) {
	if mock.PredictAllFunc == nil {
		panic("forecasterMock.PredictAllFunc: method is nil but forecaster.PredictAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Attrs domain.ProjectAttributes
	}{Ctx: ctx, Attrs: attrs}
	mock.lockPredictAll.Lock()
	mock.calls.PredictAll = append(mock.calls.PredictAll, callInfo)
	mock.lockPredictAll.Unlock()
	return mock.PredictAllFunc(ctx, attrs)
}

func (mock *forecasterMock) PredictAllCalls() []struct {
	Ctx   context.Context
	Attrs domain.ProjectAttributes
} {
	mock.lockPredictAll.RLock()
	calls := mock.calls.PredictAll
	mock.lockPredictAll.RUnlock()
	return calls
}

var _ stockReserver = &stockReserverMock{}

type stockReserverMock struct {
	ReserveForForecastFunc func(ctx context.Context, projectID, materialID uuid.UUID, quantity float64, byUser uuid.UUID) error

	calls struct {
		ReserveForForecast []struct {
			Ctx        context.Context
			ProjectID  uuid.UUID
			MaterialID uuid.UUID
			Quantity   float64
			ByUser     uuid.UUID
		}
	}
	lockReserveForForecast sync.RWMutex
}

func (mock *stockReserverMock) ReserveForForecast(ctx context.Context, projectID, materialID uuid.UUID, quantity float64, byUser uuid.UUID) error {
	if mock.ReserveForForecastFunc == nil {
		panic("stockReserverMock.ReserveForForecastFunc: method is nil but stockReserver.ReserveForForecast was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ProjectID  uuid.UUID
		MaterialID uuid.UUID
		Quantity   float64
		ByUser     uuid.UUID
	}{Ctx: ctx, ProjectID: projectID, MaterialID: materialID, Quantity: quantity, ByUser: byUser}
	mock.lockReserveForForecast.Lock()
	mock.calls.ReserveForForecast = append(mock.calls.ReserveForForecast, callInfo)
	mock.lockReserveForForecast.Unlock()
	return mock.ReserveForForecastFunc(ctx, projectID, materialID, quantity, byUser)
}

func (mock *stockReserverMock) ReserveForForecastCalls() []struct {
	Ctx        context.Context
	ProjectID  uuid.UUID
	MaterialID uuid.UUID
	Quantity   float64
	ByUser     uuid.UUID
} {
	mock.lockReserveForForecast.RLock()
	calls := mock.calls.ReserveForForecast
	mock.lockReserveForForecast.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		// Default passthrough keeps most tests from having to wire this.
		return fn(ctx)
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
