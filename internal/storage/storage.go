package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (сессия/результат), либо хэш токена не совпал.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности.
	ErrAlreadyExists = errors.New("already exists")
	// ErrExpired — run-сессия просрочена.
	ErrExpired = errors.New("expired")
	// ErrAlreadyUsed — run-сессия уже погашена.
	ErrAlreadyUsed = errors.New("already used")
)

// RunSessionStorage выполняет операции над run-сессиями.
type RunSessionStorage interface {
	// SaveRunSession создаёт новую run-сессию.
	SaveRunSession(ctx context.Context, session *models.RunSession) error
	// ConsumeRunSession атомарно гасит сессию: единственный UPDATE с условием
	// used_at IS NULL гарантирует ровно одно успешное погашение при гонке.
	// Возвращает состояние строки до погашения.
	ConsumeRunSession(ctx context.Context, id uuid.UUID, tokenHash string, now time.Time) (*models.RunSession, error)
	// RunSessionByID находит сессию по идентификатору.
	RunSessionByID(ctx context.Context, id uuid.UUID) (*models.RunSession, error)
	// DeleteExpiredRunSessions удаляет все просроченные сессии.
	DeleteExpiredRunSessions(ctx context.Context, now time.Time) error
}

// GameResultStorage выполняет операции над таблицей лучших результатов.
type GameResultStorage interface {
	// UpsertBestResult — атомарный compare-and-replace по (player_name, game_mode):
	// строка создаётся либо перезаписывается, только если новый счёт строго больше.
	// Возвращает id выжившей строки и признак «новый лучший».
	UpsertBestResult(ctx context.Context, result *models.GameResult) (uuid.UUID, bool, error)
	// TopResults возвращает результаты режима, отсортированные по убыванию счёта.
	TopResults(ctx context.Context, gameMode, limit int) ([]models.GameResult, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	RunSessionStorage
	GameResultStorage
	Close()
}
