package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tcf245/dabia/internal/domain"
)

// DefaultUserID is the learner seeded by migrations.
var DefaultUserID = uuid.Nil

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser inserts a fresh user.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		Email:     "learner-" + uniqueSuffix() + "@example.com",
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, hashed_password, created_at, updated_at)
		 VALUES ($1, $2, 'x', $3, $4)`,
		user.ID, user.Email, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedDeck inserts a deck with a unique name.
func SeedDeck(t *testing.T, pool *pgxpool.Pool) domain.Deck {
	t.Helper()

	ts := now()
	deck := domain.Deck{
		ID:        uuid.New(),
		Name:      "Deck " + uniqueSuffix(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		deck.ID, deck.Name, deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}
	return deck
}

// SeedCard inserts a card into deckID with every optional field filled.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID) domain.Card {
	t.Helper()

	suffix := uniqueSuffix()
	str := func(s string) *string { return &s }
	ts := now()

	card := domain.Card{
		ID:               uuid.New(),
		DeckID:           deckID,
		GUID:             str("guid-" + suffix),
		SentenceTemplate: "私は毎朝＿＿を飲みます。",
		Target: domain.CardTarget{
			Word:    "コーヒー",
			Reading: str("こーひー"),
			Hint:    str("coffee"),
		},
		AudioURL:            str("word-" + suffix + ".mp3"),
		Sentence:            str("私は毎朝コーヒーを飲みます。"),
		SentenceFurigana:    str("私[わたし]は毎朝[まいあさ]コーヒーを飲[の]みます。"),
		SentenceTranslation: str("I drink coffee every morning."),
		SentenceAudioURL:    str("sentence-" + suffix + ".mp3"),
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, deck_id, guid, sentence_template, target_word, reading, hint,
		                    audio_url, sentence, sentence_furigana, sentence_translation,
		                    sentence_audio_url, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		card.ID, card.DeckID, card.GUID, card.SentenceTemplate, card.Target.Word,
		card.Target.Reading, card.Target.Hint, card.AudioURL, card.Sentence,
		card.SentenceFurigana, card.SentenceTranslation, card.SentenceAudioURL,
		card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return card
}

// SeedAssociation records a proficiency level for the user-card pair.
func SeedAssociation(t *testing.T, pool *pgxpool.Pool, userID, cardID uuid.UUID, level int) domain.UserCardAssociation {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	assoc := domain.UserCardAssociation{
		UserID:           userID,
		CardID:           cardID,
		ProficiencyLevel: level,
		NextReviewAt:     now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_card_associations (user_id, card_id, proficiency_level,
		                                     next_review_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		assoc.UserID, assoc.CardID, assoc.ProficiencyLevel,
		assoc.NextReviewAt, assoc.CreatedAt, assoc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssociation: %v", err)
	}
	return assoc
}

// SeedReview inserts a review log at reviewedAt.
func SeedReview(t *testing.T, pool *pgxpool.Pool, userID, cardID uuid.UUID, reviewedAt time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_logs (id, user_id, card_id, is_correct, response_time_ms, reviewed_at)
		 VALUES ($1, $2, $3, true, 1000, $4)`,
		uuid.New(), userID, cardID, reviewedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}
}

// TruncateContent removes every deck, card, association and review log.
// Users, including the seeded default user, are kept.
func TruncateContent(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE review_logs, user_card_associations, cards, decks`)
	if err != nil {
		t.Fatalf("testhelper: TruncateContent: %v", err)
	}
}
