package session

import (
	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/domain"
)

// PreviousAnswerInput is the learner's answer to the card shown last.
type PreviousAnswerInput struct {
	CardID         uuid.UUID
	IsCorrect      bool
	ResponseTimeMs int
}

// Validate checks the answer fields.
func (i PreviousAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.ResponseTimeMs <= 0 {
		errs = append(errs, domain.FieldError{Field: "response_time_ms", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
