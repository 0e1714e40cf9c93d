package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck groups cards, typically one imported source per deck.
type Deck struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeckSummary is the part of a deck shown alongside a card.
type DeckSummary struct {
	ID   uuid.UUID
	Name string
}

// Card is a cloze item: a sentence template with the target word blanked out.
// Media fields hold either a bare file name or an absolute URL.
type Card struct {
	ID                  uuid.UUID
	DeckID              uuid.UUID
	GUID                *string
	SentenceTemplate    string
	Target              CardTarget
	AudioURL            *string
	Sentence            *string
	SentenceFurigana    *string
	SentenceTranslation *string
	SentenceAudioURL    *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CardTarget is the word the learner has to produce.
type CardTarget struct {
	Word    string
	Reading *string
	Hint    *string
}

// UserCardAssociation tracks how well a user knows a card.
type UserCardAssociation struct {
	UserID           uuid.UUID
	CardID           uuid.UUID
	ProficiencyLevel int
	NextReviewAt     time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
