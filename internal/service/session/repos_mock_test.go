package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	PickRandomFunc func(ctx context.Context, userID uuid.UUID) (*domain.StudyCard, error)

	calls struct {
		PickRandom []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockPickRandom sync.RWMutex
}

func (mock *cardRepoMock) PickRandom(ctx context.Context, userID uuid.UUID) (*domain.StudyCard, error) {
	if mock.PickRandomFunc == nil {
		panic("cardRepoMock.PickRandomFunc: method is nil but cardRepo.PickRandom was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockPickRandom.Lock()
	mock.calls.PickRandom = append(mock.calls.PickRandom, callInfo)
	mock.lockPickRandom.Unlock()
	return mock.PickRandomFunc(ctx, userID)
}

func (mock *cardRepoMock) PickRandomCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockPickRandom.RLock()
	calls := mock.calls.PickRandom
	mock.lockPickRandom.RUnlock()
	return calls
}

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc     func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Log *domain.ReviewLog
		}
		CountSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockCreate     sync.RWMutex
	lockCountSince sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.ReviewLog
	}{Ctx: ctx, Log: log}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log *domain.ReviewLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	if mock.CountSinceFunc == nil {
		panic("reviewLogRepoMock.CountSinceFunc: method is nil but reviewLogRepo.CountSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockCountSince.Lock()
	mock.calls.CountSince = append(mock.calls.CountSince, callInfo)
	mock.lockCountSince.Unlock()
	return mock.CountSinceFunc(ctx, userID, since)
}

func (mock *reviewLogRepoMock) CountSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockCountSince.RLock()
	calls := mock.calls.CountSince
	mock.lockCountSince.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
