package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/pkg/log"
)

// Leaderboard возвращает таблицу режима: score desc, tie-break accuracy desc,
// затем lps desc. Чтение без побочных эффектов и без токена.
// limit <= 0 — лимит по умолчанию; сверху ограничен максимумом из конфигурации.
func (s *Service) Leaderboard(ctx context.Context, gameMode, limit int) ([]models.GameResult, error) {
	const op = "service.leaderboard.Leaderboard"

	lg := log.From(ctx)

	if _, _, ok := s.cfg.TimeWindow(gameMode); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUnsupportedMode)
	}

	if limit <= 0 {
		limit = s.cfg.DefaultLeaderboardLimit
	}
	if limit > s.cfg.MaxLeaderboardLimit {
		limit = s.cfg.MaxLeaderboardLimit
	}

	// Кэш best-effort: любая его ошибка не мешает чтению из БД.
	if s.lbcache != nil {
		cached, hit, err := s.lbcache.Get(ctx, gameMode, limit)
		if err != nil {
			lg.Warn("leaderboard_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if hit {
			return cached, nil
		}
	}

	results, err := s.storage.TopResults(ctx, gameMode, limit)
	if err != nil {
		lg.Error("top_results_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.lbcache != nil && s.cfg.LeaderboardCacheTTL > 0 {
		if err := s.lbcache.Set(ctx, gameMode, limit, results, s.cfg.LeaderboardCacheTTL); err != nil {
			lg.Warn("leaderboard_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return results, nil
}
