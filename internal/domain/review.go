package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog is an immutable record of one answer. Rows are only appended.
type ReviewLog struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CardID         uuid.UUID
	IsCorrect      bool
	ResponseTimeMs int
	ReviewedAt     time.Time
}
