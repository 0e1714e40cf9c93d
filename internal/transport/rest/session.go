package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tcf245/dabia/internal/domain"
	"github.com/tcf245/dabia/internal/service/session"
	"github.com/tcf245/dabia/pkg/validator"
)

const maxBodyBytes = 1 << 20

type sessionService interface {
	NextCard(ctx context.Context, answer *session.PreviousAnswerInput) (*domain.NextCard, error)
}

// SessionHandler serves the study session endpoint.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

// previousAnswerRequest accepts both camelCase and snake_case keys.
type previousAnswerRequest struct {
	CardID         string `json:"card_id"          validate:"required"`
	IsCorrect      *bool  `json:"is_correct"       validate:"required"`
	ResponseTimeMs *int   `json:"response_time_ms" validate:"required,gt=0"`
}

func (p *previousAnswerRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		CardID              *string `json:"cardId"`
		CardIDSnake         *string `json:"card_id"`
		IsCorrect           *bool   `json:"isCorrect"`
		IsCorrectSnake      *bool   `json:"is_correct"`
		ResponseTimeMs      *int    `json:"responseTimeMs"`
		ResponseTimeMsSnake *int    `json:"response_time_ms"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if id := first(raw.CardID, raw.CardIDSnake); id != nil {
		p.CardID = *id
	}
	p.IsCorrect = first(raw.IsCorrect, raw.IsCorrectSnake)
	p.ResponseTimeMs = first(raw.ResponseTimeMs, raw.ResponseTimeMsSnake)
	return nil
}

func first[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}

type nextCardResponse struct {
	Card            *cardResponse           `json:"card"`
	SessionProgress sessionProgressResponse `json:"session_progress"`
}

type sessionProgressResponse struct {
	CompletedToday int `json:"completed_today"`
	GoalToday      int `json:"goal_today"`
}

type cardResponse struct {
	CardID              string         `json:"card_id"`
	Deck                deckResponse   `json:"deck"`
	SentenceTemplate    string         `json:"sentence_template"`
	Target              targetResponse `json:"target"`
	Reading             *string        `json:"reading"`
	AudioURL            *string        `json:"audio_url"`
	Sentence            *string        `json:"sentence"`
	SentenceFurigana    *string        `json:"sentence_furigana"`
	SentenceTranslation *string        `json:"sentence_translation"`
	SentenceAudioURL    *string        `json:"sentence_audio_url"`
	ProficiencyLevel    int            `json:"proficiency_level"`
}

type deckResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type targetResponse struct {
	Word    string  `json:"word"`
	Reading *string `json:"reading"`
	Hint    *string `json:"hint"`
}

// NextCard handles POST /api/v1/session/next-card. The body is optional:
// an empty body or JSON null starts a session without recording an answer.
func (h *SessionHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	answer, fields, err := decodeAnswer(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	result, err := h.svc.NextCard(r.Context(), answer)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNextCardResponse(result))
}

func decodeAnswer(w http.ResponseWriter, r *http.Request) (*session.PreviousAnswerInput, []domain.FieldError, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil, nil
	}

	var req previousAnswerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, nil, err
	}

	violations, err := validator.Struct(req)
	if err != nil {
		return nil, nil, err
	}
	fields := make([]domain.FieldError, 0, len(violations)+1)
	for _, v := range violations {
		fields = append(fields, domain.FieldError{Field: v.Field, Message: v.Message()})
	}

	// Any case and the hyphenless form are valid ids.
	cardID, err := uuid.Parse(req.CardID)
	if err != nil && req.CardID != "" {
		fields = append(fields, domain.FieldError{Field: "card_id", Message: "must be a valid UUID"})
	}
	if len(fields) > 0 {
		return nil, fields, nil
	}

	return &session.PreviousAnswerInput{
		CardID:         cardID,
		IsCorrect:      *req.IsCorrect,
		ResponseTimeMs: *req.ResponseTimeMs,
	}, nil, nil
}

func toNextCardResponse(nc *domain.NextCard) nextCardResponse {
	resp := nextCardResponse{
		SessionProgress: sessionProgressResponse{
			CompletedToday: nc.Progress.CompletedToday,
			GoalToday:      nc.Progress.GoalToday,
		},
	}
	if nc.Card == nil {
		return resp
	}

	c := nc.Card.Card
	resp.Card = &cardResponse{
		CardID:              c.ID.String(),
		Deck:                deckResponse{ID: nc.Card.Deck.ID.String(), Name: nc.Card.Deck.Name},
		SentenceTemplate:    c.SentenceTemplate,
		Target:              targetResponse{Word: c.Target.Word, Reading: c.Target.Reading, Hint: c.Target.Hint},
		Reading:             c.Target.Reading,
		AudioURL:            c.AudioURL,
		Sentence:            c.Sentence,
		SentenceFurigana:    c.SentenceFurigana,
		SentenceTranslation: c.SentenceTranslation,
		SentenceAudioURL:    c.SentenceAudioURL,
		ProficiencyLevel:    nc.Card.ProficiencyLevel,
	}
	return resp
}
