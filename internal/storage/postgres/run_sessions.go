package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveRunSession сохраняет новую run-сессию в БД.
func (s *Storage) SaveRunSession(ctx context.Context, session *models.RunSession) error {
	const op = "storage.postgres.SaveRunSession"

	query := `
        INSERT INTO run_sessions(id, token_hash, player_name, game_mode, issued_at, expires_at, ip, user_agent)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	_, err := s.db.Exec(ctx, query,
		session.ID,
		session.TokenHash,
		session.PlayerName,
		session.GameMode,
		session.IssuedAt,
		session.ExpiresAt,
		session.IP,
		session.UserAgent,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeRunSession атомарно гасит run-сессию.
//
// Шаг «прочитать used_at, затем записать» намеренно схлопнут в один условный
// UPDATE: при двух конкурентных погашениях ровно одно пройдёт условие
// used_at IS NULL, второе получит классифицированную ошибку.
//
// Возвращает:
//
//	(*RunSession, nil)      — сессия погашена сейчас; поля отражают состояние до погашения;
//	(nil, ErrAlreadyUsed)   — сессия существует, но уже погашена;
//	(nil, ErrExpired)       — сессия существует, но окно действия истекло;
//	(nil, ErrNotFound)      — сессии нет либо хэш токена не совпал
//	                          (случаи не различаются, чтобы не раскрывать существование id).
func (s *Storage) ConsumeRunSession(ctx context.Context, id uuid.UUID, tokenHash string, now time.Time) (*models.RunSession, error) {
	const op = "storage.postgres.ConsumeRunSession"

	const upd = `
		UPDATE run_sessions
		SET used_at = $3
		WHERE id = $1 AND token_hash = $2 AND used_at IS NULL AND expires_at > $3
		RETURNING player_name, game_mode, issued_at, expires_at, ip, user_agent
	`

	session := models.RunSession{ID: id, TokenHash: tokenHash}
	err := s.db.QueryRow(ctx, upd, id, tokenHash, now).Scan(
		&session.PlayerName,
		&session.GameMode,
		&session.IssuedAt,
		&session.ExpiresAt,
		&session.IP,
		&session.UserAgent,
	)
	if err == nil {
		session.IssuedAt = session.IssuedAt.UTC()
		session.ExpiresAt = session.ExpiresAt.UTC()
		return &session, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Погашение не прошло — классифицируем причину отдельным чтением.
	const sel = `
		SELECT token_hash, used_at, expires_at
		FROM run_sessions
		WHERE id = $1
	`

	var (
		storedHash string
		usedAt     *time.Time
		expiresAt  time.Time
	)
	err = s.db.QueryRow(ctx, sel, id).Scan(&storedHash, &usedAt, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Несовпадение хэша трактуем как «нет такой сессии».
	if storedHash != tokenHash {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if usedAt != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyUsed)
	}

	if !expiresAt.After(now) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrExpired)
	}

	// Сюда можно попасть только при гонке с конкурентным погашением
	// между UPDATE и SELECT.
	return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyUsed)
}

// RunSessionByID находит run-сессию по идентификатору.
func (s *Storage) RunSessionByID(ctx context.Context, id uuid.UUID) (*models.RunSession, error) {
	const op = "storage.postgres.RunSessionByID"

	query := `
        SELECT id, token_hash, player_name, game_mode, issued_at, expires_at, ip, user_agent, used_at
        FROM run_sessions
        WHERE id = $1
    `

	var session models.RunSession
	err := s.db.QueryRow(ctx, query, id).Scan(
		&session.ID,
		&session.TokenHash,
		&session.PlayerName,
		&session.GameMode,
		&session.IssuedAt,
		&session.ExpiresAt,
		&session.IP,
		&session.UserAgent,
		&session.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	session.IssuedAt = session.IssuedAt.UTC()
	session.ExpiresAt = session.ExpiresAt.UTC()

	return &session, nil
}

// DeleteExpiredRunSessions удаляет все просроченные run-сессии.
func (s *Storage) DeleteExpiredRunSessions(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.DeleteExpiredRunSessions"

	query := `
        DELETE FROM run_sessions
        WHERE expires_at <= $1
    `

	_, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
