// Package session implements the study session flow: record the previous
// answer, report today's progress and hand out the next card.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	PickRandom(ctx context.Context, userID uuid.UUID) (*domain.StudyCard, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type mediaResolver interface {
	URL(name *string) *string
}

type sessionMetrics interface {
	ReviewRecorded(correct bool)
	NextCardServed(found bool, completedToday int)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds session parameters.
type Config struct {
	DailyGoal int
	Location  *time.Location
}

// Service implements the session business logic.
type Service struct {
	cards     cardRepo
	reviews   reviewLogRepo
	tx        txManager
	media     mediaResolver
	metrics   sessionMetrics
	log       *slog.Logger
	dailyGoal int
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a session service. A zero DailyGoal falls back to
// domain.DefaultDailyGoal and a nil Location to UTC.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewLogRepo,
	tx txManager,
	media mediaResolver,
	metrics sessionMetrics,
	cfg Config,
) *Service {
	goal := cfg.DailyGoal
	if goal <= 0 {
		goal = domain.DefaultDailyGoal
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		cards:     cards,
		reviews:   reviews,
		tx:        tx,
		media:     media,
		metrics:   metrics,
		log:       log.With("service", "session"),
		dailyGoal: goal,
		loc:       loc,
		now:       time.Now,
	}
}
