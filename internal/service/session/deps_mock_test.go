package session

import (
	"sync"
)

var _ mediaResolver = &mediaResolverMock{}

type mediaResolverMock struct {
	URLFunc func(name *string) *string

	calls struct {
		URL []struct {
			Name *string
		}
	}
	lockURL sync.RWMutex
}

func (mock *mediaResolverMock) URL(name *string) *string {
	if mock.URLFunc == nil {
		panic("mediaResolverMock.URLFunc: method is nil but mediaResolver.URL was just called")
	}
	callInfo := struct{ Name *string }{Name: name}
	mock.lockURL.Lock()
	mock.calls.URL = append(mock.calls.URL, callInfo)
	mock.lockURL.Unlock()
	return mock.URLFunc(name)
}

func (mock *mediaResolverMock) URLCalls() []struct{ Name *string } {
	mock.lockURL.RLock()
	calls := mock.calls.URL
	mock.lockURL.RUnlock()
	return calls
}

var _ sessionMetrics = &sessionMetricsMock{}

type sessionMetricsMock struct {
	ReviewRecordedFunc func(correct bool)
	NextCardServedFunc func(found bool, completedToday int)

	calls struct {
		ReviewRecorded []struct {
			Correct bool
		}
		NextCardServed []struct {
			Found          bool
			CompletedToday int
		}
	}
	lockReviewRecorded sync.RWMutex
	lockNextCardServed sync.RWMutex
}

func (mock *sessionMetricsMock) ReviewRecorded(correct bool) {
	if mock.ReviewRecordedFunc == nil {
		panic("sessionMetricsMock.ReviewRecordedFunc: method is nil but sessionMetrics.ReviewRecorded was just called")
	}
	callInfo := struct{ Correct bool }{Correct: correct}
	mock.lockReviewRecorded.Lock()
	mock.calls.ReviewRecorded = append(mock.calls.ReviewRecorded, callInfo)
	mock.lockReviewRecorded.Unlock()
	mock.ReviewRecordedFunc(correct)
}

func (mock *sessionMetricsMock) ReviewRecordedCalls() []struct{ Correct bool } {
	mock.lockReviewRecorded.RLock()
	calls := mock.calls.ReviewRecorded
	mock.lockReviewRecorded.RUnlock()
	return calls
}

func (mock *sessionMetricsMock) NextCardServed(found bool, completedToday int) {
	if mock.NextCardServedFunc == nil {
		panic("sessionMetricsMock.NextCardServedFunc: method is nil but sessionMetrics.NextCardServed was just called")
	}
	callInfo := struct {
		Found          bool
		CompletedToday int
	}{Found: found, CompletedToday: completedToday}
	mock.lockNextCardServed.Lock()
	mock.calls.NextCardServed = append(mock.calls.NextCardServed, callInfo)
	mock.lockNextCardServed.Unlock()
	mock.NextCardServedFunc(found, completedToday)
}

func (mock *sessionMetricsMock) NextCardServedCalls() []struct {
	Found          bool
	CompletedToday int
} {
	mock.lockNextCardServed.RLock()
	calls := mock.calls.NextCardServed
	mock.lockNextCardServed.RUnlock()
	return calls
}
