package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// stubService — минимальная заглушка GameService для проверки маршрутизации.
type stubService struct{}

func (stubService) StartRun(_ context.Context, _ string, _ int, _ service.RunMeta) (*models.RunGrant, error) {
	return &models.RunGrant{RunID: uuid.New(), Token: "t", ExpiresAt: time.Now().Add(30 * time.Second)}, nil
}

func (stubService) SubmitResult(_ context.Context, _ service.SubmitInput) (*models.SubmitOutcome, error) {
	return &models.SubmitOutcome{IsNewBest: true, ResultID: uuid.New()}, nil
}

func (stubService) Leaderboard(_ context.Context, _, _ int) ([]models.GameResult, error) {
	return nil, nil
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	h := NewRouter(stubService{}, Options{Timeout: time.Second})

	// POST /game/run.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/game/run", strings.NewReader(`{"player_name":"speedy_fox","game_mode":15}`))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	// GET /game/leaderboard.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/game/leaderboard?game_mode=15", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Неверный метод на маршруте.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/game/run", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	// Неизвестный путь.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRouter_BasePath(t *testing.T) {
	t.Parallel()

	h := NewRouter(stubService{}, Options{BasePath: "/api"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/game/leaderboard?game_mode=30", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Без префикса маршрут не регистрируется.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/game/leaderboard?game_mode=30", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
