// Package reviewlog persists the append-only answer history.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/adapter/postgres"
	"github.com/tcf245/dabia/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO review_logs (id, user_id, card_id, is_correct, response_time_ms, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, card_id, is_correct, response_time_ms, reviewed_at`

const countSinceSQL = `
SELECT count(*) FROM review_logs
WHERE user_id = $1 AND reviewed_at >= $2`

type row struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	CardID         uuid.UUID `db:"card_id"`
	IsCorrect      bool      `db:"is_correct"`
	ResponseTimeMs int       `db:"response_time_ms"`
	ReviewedAt     time.Time `db:"reviewed_at"`
}

func (r row) toDomain() domain.ReviewLog {
	return domain.ReviewLog{
		ID:             r.ID,
		UserID:         r.UserID,
		CardID:         r.CardID,
		IsCorrect:      r.IsCorrect,
		ResponseTimeMs: r.ResponseTimeMs,
		ReviewedAt:     r.ReviewedAt,
	}
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

// Create appends a review log. A zero ID or ReviewedAt is filled in.
// An unknown user or card yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	id := log.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	reviewedAt := log.ReviewedAt
	if reviewedAt.IsZero() {
		reviewedAt = time.Now().UTC()
	}

	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		id, log.UserID, log.CardID, log.IsCorrect, log.ResponseTimeMs, reviewedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review_log card", log.CardID)
	}

	created := out.toDomain()
	return &created, nil
}

// ---------------------------------------------------------------------------
// Read
// ---------------------------------------------------------------------------

// CountSince counts the user's reviews logged at or after since.
func (r *Repo) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSinceSQL, userID, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count review_logs since %s: %w", since.Format(time.RFC3339), err)
	}
	return n, nil
}

// ListByUser returns the user's most recent reviews, newest first.
// A non-positive limit returns every row.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	b := psql.
		Select("id", "user_id", "card_id", "is_correct", "response_time_ms", "reviewed_at").
		From("review_logs").
		Where("user_id = ?", userID).
		OrderBy("reviewed_at DESC", "id")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list review_logs query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "review_logs user", userID)
	}

	logs := make([]domain.ReviewLog, len(rows))
	for i, rw := range rows {
		logs[i] = rw.toDomain()
	}
	return logs, nil
}
