package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/pribylovaa/go-typing-arena/internal/metrics"
	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/pkg/log"
	"github.com/pribylovaa/go-typing-arena/internal/storage"

	"github.com/finnbear/moderation"
	"github.com/google/uuid"
)

// RunMeta — провенанс-метаданные запроса на выдачу run-токена.
// Сохраняются как есть и на решения о приёме не влияют.
type RunMeta struct {
	IP        string
	UserAgent string
}

// StartRun выдаёт одноразовый run-токен, привязанный к имени игрока и режиму.
// Сырой секрет возвращается вызывающему ровно один раз; в БД хранится
// только его хэш.
func (s *Service) StartRun(ctx context.Context, playerName string, gameMode int, meta RunMeta) (*models.RunGrant, error) {
	const (
		op          = "service.session.StartRun"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	name, err := validatePlayerName(playerName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, _, ok := s.cfg.TimeWindow(gameMode); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedMode)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		plain, hash, err := generateRunToken()
		if err != nil {
			lg.Error("run_token_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		now := time.Now().UTC()
		session := &models.RunSession{
			ID:         uuid.New(),
			TokenHash:  hash,
			PlayerName: name,
			GameMode:   gameMode,
			IssuedAt:   now,
			ExpiresAt:  now.Add(s.cfg.TokenTTL),
			IP:         meta.IP,
			UserAgent:  meta.UserAgent,
		}

		if err := s.storage.SaveRunSession(ctx, session); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия хэша/id — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_run_session_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		metrics.RunsIssued.Inc()

		return &models.RunGrant{
			RunID:     session.ID,
			Token:     plain,
			ExpiresAt: session.ExpiresAt,
		}, nil
	}

	lg.Error("run_token_collision_exceeded", slog.String("op", op))

	return nil, fmt.Errorf("%s: run token collision", op)
}

// redeemRun гасит run-токен ровно один раз и возвращает состояние сессии
// до погашения.
//
// Атомарность «прочитать used_at — записать used_at» обеспечивает хранилище
// одним условным UPDATE; при конкурентных погашениях здесь гарантированно
// выигрывает не более одного вызова.
//
// Временной гард: сессия, погашенная раньше минимальной длительности раунда,
// отклоняется с ErrTooFast. К этому моменту сессия уже потрачена — токен
// одноразовый, а все сессионные ошибки терминальны, так что повторная
// попытка с тем же токеном невозможна в любом случае.
func (s *Service) redeemRun(ctx context.Context, runID uuid.UUID, token string) (*models.RunSession, error) {
	const op = "service.session.redeemRun"

	lg := log.From(ctx)

	now := time.Now().UTC()
	session, err := s.storage.ConsumeRunSession(ctx, runID, hashRunToken(token), now)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("redeem_invalid_session", slog.String("op", op))
			metrics.Redemptions.WithLabelValues("invalid").Inc()
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
		case errors.Is(err, storage.ErrAlreadyUsed):
			lg.Warn("redeem_session_already_used",
				slog.String("op", op),
				slog.String("run_id", runID.String()),
			)
			metrics.Redemptions.WithLabelValues("used").Inc()
			return nil, fmt.Errorf("%s: %w", op, ErrSessionAlreadyUsed)
		case errors.Is(err, storage.ErrExpired):
			lg.Warn("redeem_session_expired",
				slog.String("op", op),
				slog.String("run_id", runID.String()),
			)
			metrics.Redemptions.WithLabelValues("expired").Inc()
			return nil, fmt.Errorf("%s: %w", op, ErrSessionExpired)
		}

		lg.Error("redeem_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		metrics.Redemptions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if now.Sub(session.IssuedAt) < s.cfg.MinPlayDuration {
		lg.Warn("redeem_too_fast",
			slog.String("op", op),
			slog.String("run_id", runID.String()),
			slog.Duration("elapsed", now.Sub(session.IssuedAt)),
		)
		metrics.Redemptions.WithLabelValues("too_fast").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrTooFast)
	}

	metrics.Redemptions.WithLabelValues("ok").Inc()

	return session, nil
}

// generateRunToken генерирует сырой секрет (32 байта энтропии, base64url)
// и его sha256-хэш для хранения.
func generateRunToken() (plain, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", err
	}

	plain = base64.RawURLEncoding.EncodeToString(b)

	return plain, hashRunToken(plain), nil
}

// hashRunToken — sha256 → base64url; сырой секрет в БД не попадает.
func hashRunToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Политика имени игрока: длина и набор символов.
const (
	minNameLen = 2
	maxNameLen = 24
)

// validatePlayerName проверяет формат имени и обрезает пробелы снаружи.
// Политика: 2..24 руны; буквы/цифры/пробел/._-; без мата
// (moderation-фильтр, та же проверка, что у игровых чатов).
func validatePlayerName(raw string) (string, error) {
	const op = "service.session.validatePlayerName"

	name := strings.TrimSpace(raw)

	n := len([]rune(name))
	if n < minNameLen || n > maxNameLen {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidName)
	}

	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case r == ' ' || r == '.' || r == '_' || r == '-':
		default:
			return "", fmt.Errorf("%s: %w", op, ErrInvalidName)
		}
	}

	if moderation.Scan(name).Is(moderation.Inappropriate) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidName)
	}

	return name, nil
}
