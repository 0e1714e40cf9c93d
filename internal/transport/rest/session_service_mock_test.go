package rest

import (
	"context"
	"sync"

	"github.com/tcf245/dabia/internal/domain"
	"github.com/tcf245/dabia/internal/service/session"
)

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	NextCardFunc func(ctx context.Context, answer *session.PreviousAnswerInput) (*domain.NextCard, error)

	calls struct {
		NextCard []struct {
			Ctx    context.Context
			Answer *session.PreviousAnswerInput
		}
	}
	lockNextCard sync.RWMutex
}

func (mock *sessionServiceMock) NextCard(ctx context.Context, answer *session.PreviousAnswerInput) (*domain.NextCard, error) {
	if mock.NextCardFunc == nil {
		panic("sessionServiceMock.NextCardFunc: method is nil but sessionService.NextCard was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Answer *session.PreviousAnswerInput
	}{Ctx: ctx, Answer: answer}
	mock.lockNextCard.Lock()
	mock.calls.NextCard = append(mock.calls.NextCard, callInfo)
	mock.lockNextCard.Unlock()
	return mock.NextCardFunc(ctx, answer)
}

func (mock *sessionServiceMock) NextCardCalls() []struct {
	Ctx    context.Context
	Answer *session.PreviousAnswerInput
} {
	mock.lockNextCard.RLock()
	calls := mock.calls.NextCard
	mock.lockNextCard.RUnlock()
	return calls
}
