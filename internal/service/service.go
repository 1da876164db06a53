// service содержит бизнес-логику игрового бэкенда:
// выдачу и одноразовое погашение run-токенов, серверный пересчёт счёта
// по недоверенным клиентским метрикам и compare-and-replace лидерборда.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Отклонённый сабмит никогда не «чинится» сервером (клампинга нет):
//     каждая сохранённая строка лидерборда прошла полную валидацию.
//   - Ошибки возвращаются как сентинелы и далее маппятся HTTP-слоем
//     на статусы и стабильные reason-строки (см. transport/http/httperr).
package service

import (
	"errors"

	"github.com/pribylovaa/go-typing-arena/internal/cache"
	"github.com/pribylovaa/go-typing-arena/internal/config"
	"github.com/pribylovaa/go-typing-arena/internal/storage"
)

var (
	// ErrInvalidName — имя игрока не проходит политику формата/модерации.
	// Транспорт: HTTP 400.
	ErrInvalidName = errors.New("invalid player name")

	// ErrUnsupportedMode — запрошенный режим не входит в поддерживаемые.
	// Транспорт: HTTP 400.
	ErrUnsupportedMode = errors.New("unsupported game mode")

	// ErrInvalidSession — сессии нет либо секрет не совпал с хэшем.
	// Случаи намеренно не различаются, чтобы не раскрывать существование id.
	// Транспорт: HTTP 400. Терминальная: клиент начинает новый забег.
	ErrInvalidSession = errors.New("invalid run session")

	// ErrSessionExpired — окно действия run-токена истекло.
	// Транспорт: HTTP 400. Терминальная.
	ErrSessionExpired = errors.New("run session expired")

	// ErrSessionAlreadyUsed — сессия уже погашена ранее (или конкурентно).
	// Транспорт: HTTP 400. Терминальная.
	ErrSessionAlreadyUsed = errors.New("run session already used")

	// ErrTooFast — между выдачей и погашением прошло меньше минимальной
	// длительности раунда: человек так не печатает. Транспорт: HTTP 400.
	ErrTooFast = errors.New("run completed too fast")

	// ErrNameMismatch — имя в сабмите не совпало с именем, на которое
	// выдавалась сессия. Транспорт: HTTP 400.
	ErrNameMismatch = errors.New("player name mismatch")

	// ErrModeMismatch — режим в сабмите не совпал с режимом сессии.
	// Транспорт: HTTP 400.
	ErrModeMismatch = errors.New("game mode mismatch")

	// Числовые гейты валидатора. Каждый — самостоятельная причина отказа;
	// рассинхронизация производных полей неотличима от подделки и
	// отклоняется так же. Транспорт: HTTP 400.
	ErrLPSOutOfRange         = errors.New("lps out of range")
	ErrAccuracyOutOfRange    = errors.New("accuracy out of range")
	ErrTimeOutOfRange        = errors.New("time out of range")
	ErrMsPerLetterOutOfRange = errors.New("ms_per_letter out of range")
	ErrMsPerLetterMismatch   = errors.New("ms_per_letter calculation mismatch")
	ErrCountsOutOfRange      = errors.New("letter counts out of range")
	ErrScoreOutOfRange       = errors.New("recomputed score out of range")
)

// Service описывает бизнес-логику игрового бэкенда.
type Service struct {
	storage storage.Storage
	cfg     config.GameConfig
	lbcache cache.LeaderboardCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.GameConfig) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// SetLeaderboardCache устанавливает кэш выдачи лидерборда (опционально).
func (s *Service) SetLeaderboardCache(c cache.LeaderboardCache) {
	s.lbcache = c
}
