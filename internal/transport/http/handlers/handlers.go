package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/service"
)

// GameService — контракт бизнес-логики, который нужен HTTP-слою.
// Узкий интерфейс вместо конкретного *service.Service — ради подмены в тестах.
type GameService interface {
	StartRun(ctx context.Context, playerName string, gameMode int, meta service.RunMeta) (*models.RunGrant, error)
	SubmitResult(ctx context.Context, in service.SubmitInput) (*models.SubmitOutcome, error)
	Leaderboard(ctx context.Context, gameMode, limit int) ([]models.GameResult, error)
}

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	svc GameService
}

func New(svc GameService) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// clientIP достаёт адрес клиента: первый элемент X-Forwarded-For,
// иначе host-часть RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
