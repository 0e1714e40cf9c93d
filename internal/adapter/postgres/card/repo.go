// Package card reads cards together with per-user proficiency.
package card

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

// Repo provides card queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var studyCardColumns = []string{
	"c.id",
	"c.deck_id",
	"d.name AS deck_name",
	"c.guid",
	"c.sentence_template",
	"c.target_word",
	"c.reading",
	"c.hint",
	"c.audio_url",
	"c.sentence",
	"c.sentence_furigana",
	"c.sentence_translation",
	"c.sentence_audio_url",
	"c.created_at",
	"c.updated_at",
	"COALESCE(uca.proficiency_level, 0) AS proficiency_level",
}

const countSQL = `SELECT count(*) FROM cards`

type studyCardRow struct {
	ID                  uuid.UUID `db:"id"`
	DeckID              uuid.UUID `db:"deck_id"`
	DeckName            string    `db:"deck_name"`
	GUID                *string   `db:"guid"`
	SentenceTemplate    string    `db:"sentence_template"`
	TargetWord          string    `db:"target_word"`
	Reading             *string   `db:"reading"`
	Hint                *string   `db:"hint"`
	AudioURL            *string   `db:"audio_url"`
	Sentence            *string   `db:"sentence"`
	SentenceFurigana    *string   `db:"sentence_furigana"`
	SentenceTranslation *string   `db:"sentence_translation"`
	SentenceAudioURL    *string   `db:"sentence_audio_url"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
	ProficiencyLevel    int       `db:"proficiency_level"`
}

func (r studyCardRow) toDomain() *domain.StudyCard {
	return &domain.StudyCard{
		Card: domain.Card{
			ID:               r.ID,
			DeckID:           r.DeckID,
			GUID:             r.GUID,
			SentenceTemplate: r.SentenceTemplate,
			Target: domain.CardTarget{
				Word:    r.TargetWord,
				Reading: r.Reading,
				Hint:    r.Hint,
			},
			AudioURL:            r.AudioURL,
			Sentence:            r.Sentence,
			SentenceFurigana:    r.SentenceFurigana,
			SentenceTranslation: r.SentenceTranslation,
			SentenceAudioURL:    r.SentenceAudioURL,
			CreatedAt:           r.CreatedAt,
			UpdatedAt:           r.UpdatedAt,
		},
		Deck:             domain.DeckSummary{ID: r.DeckID, Name: r.DeckName},
		ProficiencyLevel: r.ProficiencyLevel,
	}
}

// PickRandom returns one card chosen uniformly at random from all cards,
// with the given user's proficiency (0 when the user never met the card).
// It returns domain.ErrNotFound when there are no cards.
func (r *Repo) PickRandom(ctx context.Context, userID uuid.UUID) (*domain.StudyCard, error) {
	query, args, err := psql.
		Select(studyCardColumns...).
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		LeftJoin("user_card_associations uca ON uca.card_id = c.id AND uca.user_id = ?", userID).
		OrderBy("random()").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pick random card query: %w", err)
	}

	var row studyCardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "random card for user", userID)
	}
	return row.toDomain(), nil
}

// Count returns the number of cards.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return n, nil
}
