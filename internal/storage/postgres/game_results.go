package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UpsertBestResult — атомарный compare-and-replace лучшего результата.
//
// Сравнение с текущим лучшим и запись схлопнуты в один INSERT ... ON CONFLICT
// с условием EXCLUDED.score > game_results.score: при конкурентных сабмитах
// по одному ключу «выигрывает» ровно тот, чей счёт строго больше сохранённого,
// SELECT-затем-UPDATE окна потерянного обновления здесь нет.
//
// Перезапись происходит на месте: id строки сохраняется от первой вставки.
func (s *Storage) UpsertBestResult(ctx context.Context, result *models.GameResult) (uuid.UUID, bool, error) {
	const op = "storage.postgres.UpsertBestResult"

	const upsert = `
		INSERT INTO game_results
			(id, player_name, game_mode, score, lps, accuracy, rank, time_seconds, ms_per_letter, is_twitter_user, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (player_name, game_mode) DO UPDATE SET
			score = EXCLUDED.score,
			lps = EXCLUDED.lps,
			accuracy = EXCLUDED.accuracy,
			rank = EXCLUDED.rank,
			time_seconds = EXCLUDED.time_seconds,
			ms_per_letter = EXCLUDED.ms_per_letter,
			is_twitter_user = EXCLUDED.is_twitter_user,
			updated_at = EXCLUDED.updated_at
		WHERE EXCLUDED.score > game_results.score
		RETURNING id
	`

	var id uuid.UUID
	err := s.db.QueryRow(ctx, upsert,
		result.ID,
		result.PlayerName,
		result.GameMode,
		result.Score,
		result.LPS,
		result.Accuracy,
		result.Rank,
		result.TimeSeconds,
		result.MsPerLetter,
		result.IsTwitterUser,
		result.CreatedAt,
		result.UpdatedAt,
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
	}

	// Существующий результат не хуже — строка не тронута.
	// Возвращаем id текущего лучшего, чтобы вызывающий мог его показать.
	const sel = `
		SELECT id
		FROM game_results
		WHERE player_name = $1 AND game_mode = $2
	`

	err = s.db.QueryRow(ctx, sel, result.PlayerName, result.GameMode).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return id, false, nil
}

// TopResults возвращает результаты режима, отсортированные по убыванию счёта.
// Сортировка: score desc, accuracy desc, lps desc; float-ключи округлены
// (1e-4 по счёту, 1e-2 по точности), чтобы порядок не «мерцал»
// от шума представления.
func (s *Storage) TopResults(ctx context.Context, gameMode, limit int) ([]models.GameResult, error) {
	const op = "storage.postgres.TopResults"

	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, player_name, game_mode, score, lps, accuracy, rank, time_seconds, ms_per_letter, is_twitter_user, created_at, updated_at
		FROM game_results
		WHERE game_mode = $1
		ORDER BY round(score::numeric, 4) DESC, round(accuracy::numeric, 2) DESC, lps DESC
		LIMIT $2
	`, gameMode, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var r models.GameResult
		if scanErr := rows.Scan(
			&r.ID,
			&r.PlayerName,
			&r.GameMode,
			&r.Score,
			&r.LPS,
			&r.Accuracy,
			&r.Rank,
			&r.TimeSeconds,
			&r.MsPerLetter,
			&r.IsTwitterUser,
			&r.CreatedAt,
			&r.UpdatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		// Нормализация в UTC.
		r.CreatedAt = r.CreatedAt.UTC()
		r.UpdatedAt = r.UpdatedAt.UTC()

		results = append(results, r)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return results, nil
}
