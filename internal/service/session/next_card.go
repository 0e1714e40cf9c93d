package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/domain"
	"github.com/tcf245/dabia/pkg/ctxutil"
)

// NextCard records answer (when non-nil), counts the user's reviews since
// the start of today and picks a random card, all in one transaction.
// The returned Card is nil when there are no cards at all.
func (s *Service) NextCard(ctx context.Context, answer *PreviousAnswerInput) (*domain.NextCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if answer != nil {
		if err := answer.Validate(); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	dayStart := DayStart(now, s.loc)

	var result domain.NextCard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if answer != nil {
			_, err := s.reviews.Create(txCtx, &domain.ReviewLog{
				ID:             uuid.New(),
				UserID:         userID,
				CardID:         answer.CardID,
				IsCorrect:      answer.IsCorrect,
				ResponseTimeMs: answer.ResponseTimeMs,
				ReviewedAt:     now,
			})
			if err != nil {
				return fmt.Errorf("record review: %w", err)
			}
		}

		completed, err := s.reviews.CountSince(txCtx, userID, dayStart)
		if err != nil {
			return fmt.Errorf("count today's reviews: %w", err)
		}
		result.Progress = domain.SessionProgress{CompletedToday: completed, GoalToday: s.dailyGoal}

		card, err := s.cards.PickRandom(txCtx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			result.Card = nil
		case err != nil:
			return fmt.Errorf("pick next card: %w", err)
		default:
			result.Card = card
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if answer != nil {
		s.metrics.ReviewRecorded(answer.IsCorrect)
		s.log.InfoContext(ctx, "review recorded",
			slog.String("user_id", userID.String()),
			slog.String("card_id", answer.CardID.String()),
			slog.Bool("is_correct", answer.IsCorrect),
			slog.Int("response_time_ms", answer.ResponseTimeMs),
		)
	}
	s.metrics.NextCardServed(result.Card != nil, result.Progress.CompletedToday)

	if result.Card == nil {
		s.log.InfoContext(ctx, "no cards available", slog.String("user_id", userID.String()))
		return &result, nil
	}

	result.Card.Card.AudioURL = s.media.URL(result.Card.Card.AudioURL)
	result.Card.Card.SentenceAudioURL = s.media.URL(result.Card.Card.SentenceAudioURL)

	return &result, nil
}
