//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/tcf245/dabia/internal/adapter/media"
	"github.com/tcf245/dabia/internal/adapter/postgres"
	"github.com/tcf245/dabia/internal/adapter/postgres/card"
	"github.com/tcf245/dabia/internal/adapter/postgres/reviewlog"
	"github.com/tcf245/dabia/internal/adapter/postgres/testhelper"
	"github.com/tcf245/dabia/internal/app"
	"github.com/tcf245/dabia/internal/config"
	"github.com/tcf245/dabia/internal/metrics"
	"github.com/tcf245/dabia/internal/service/session"
	"github.com/tcf245/dabia/internal/transport/rest"
)

const (
	mediaBase = "https://media.test"
	dailyGoal = 50
)

type testServer struct {
	URL     string
	Client  *http.Client
	Pool    *pgxpool.Pool
	Reviews *reviewlog.Repo
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer wires the full stack against the shared test database and
// starts with empty content tables.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateContent(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         60,
		},
		Session: config.SessionConfig{
			DailyGoal:   dailyGoal,
			Location:    time.UTC,
			DefaultUser: testhelper.DefaultUserID,
		},
		Storage: config.StorageConfig{MediaBaseURL: mediaBase, Bucket: "bucket", MediaPath: "medias"},
	}

	reviews := reviewlog.New(pool)
	m := metrics.New()
	svc := session.NewService(
		logger, card.New(pool), reviews, postgres.NewTxManager(pool),
		media.NewResolver(cfg.Storage), m,
		session.Config{DailyGoal: cfg.Session.DailyGoal, Location: cfg.Session.Location},
	)

	handler := app.NewRouter(app.RouterDeps{
		Config: cfg,
		Logger: logger,
		Handlers: app.Handlers{
			Health:  rest.NewHealthHandler(pool, "e2e"),
			Session: rest.NewSessionHandler(svc, logger),
		},
		Metrics: m,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Reviews: reviews}
}

type nextCardResponse struct {
	Card *struct {
		CardID string `json:"card_id"`
		Deck   struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"deck"`
		SentenceTemplate string `json:"sentence_template"`
		Target           struct {
			Word    string  `json:"word"`
			Reading *string `json:"reading"`
			Hint    *string `json:"hint"`
		} `json:"target"`
		Reading          *string `json:"reading"`
		AudioURL         *string `json:"audio_url"`
		SentenceAudioURL *string `json:"sentence_audio_url"`
		ProficiencyLevel int     `json:"proficiency_level"`
	} `json:"card"`
	SessionProgress struct {
		CompletedToday int `json:"completed_today"`
		GoalToday      int `json:"goal_today"`
	} `json:"session_progress"`
}

// postNextCard sends body (nil for none) and returns the status and raw body.
func (ts *testServer) postNextCard(t *testing.T, body any) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, ts.URL+"/api/v1/session/next-card", reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

func (ts *testServer) nextCard(t *testing.T, body any) nextCardResponse {
	t.Helper()

	status, raw := ts.postNextCard(t, body)
	require.Equal(t, http.StatusOK, status, "body: %s", raw)

	var resp nextCardResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return resp
}

func answer(cardID uuid.UUID, correct bool, ms int) map[string]any {
	return map[string]any{"cardId": cardID.String(), "isCorrect": correct, "responseTimeMs": ms}
}
