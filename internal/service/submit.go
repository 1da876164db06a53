package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-typing-arena/internal/metrics"
	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/pkg/log"

	"github.com/google/uuid"
)

// SubmitInput — запрос на приём результата раунда.
type SubmitInput struct {
	RunID         string
	Token         string
	PlayerName    string
	IsTwitterUser bool
	Metrics       models.ClientMetrics
}

// SubmitResult принимает результат раунда: гасит run-токен, пересчитывает
// счёт по недоверенным метрикам и выполняет compare-and-replace лидерборда.
//
// Погашение и запись в лидерборд намеренно не связаны транзакцией
// (независимые таблицы): успешное погашение не гарантирует записи результата.
// «Сессия сожжена, результат не записан» — допустимый неретраибельный исход,
// клиент начинает новый забег.
func (s *Service) SubmitResult(ctx context.Context, in SubmitInput) (*models.SubmitOutcome, error) {
	const op = "service.submit.SubmitResult"

	lg := log.From(ctx)

	runID, err := uuid.Parse(in.RunID)
	if err != nil {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSession)
	}

	session, err := s.redeemRun(ctx, runID, in.Token)
	if err != nil {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Сабмит обязан соответствовать привязке сессии.
	if in.PlayerName != session.PlayerName {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrNameMismatch)
	}
	if in.Metrics.GameMode != session.GameMode {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrModeMismatch)
	}

	if err := s.validateMetrics(in.Metrics); err != nil {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	score := CalculateScore(ScoreInput{
		LPS:               in.Metrics.LPS,
		Accuracy:          in.Metrics.Accuracy,
		GameMode:          in.Metrics.GameMode,
		TotalLetters:      in.Metrics.TotalLetters,
		CorrectedErrors:   in.Metrics.CorrectedErrors,
		UncorrectedErrors: in.Metrics.UncorrectedErrors,
	}, s.cfg.Mode30Multiplier)

	if score < 0 || score > s.cfg.MaxScore {
		metrics.Submissions.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%s: %w", op, ErrScoreOutOfRange)
	}

	rank := CalculateRank(score, in.Metrics.Accuracy)

	now := time.Now().UTC()
	result := &models.GameResult{
		ID:            uuid.New(),
		PlayerName:    session.PlayerName,
		GameMode:      session.GameMode,
		Score:         score,
		LPS:           in.Metrics.LPS,
		Accuracy:      in.Metrics.Accuracy,
		Rank:          rank,
		TimeSeconds:   in.Metrics.TimeSeconds,
		MsPerLetter:   in.Metrics.MsPerLetter,
		IsTwitterUser: in.IsTwitterUser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	resultID, isNewBest, err := s.storage.UpsertBestResult(ctx, result)
	if err != nil {
		lg.Error("upsert_best_result_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		metrics.Submissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if isNewBest && s.lbcache != nil {
		// Сброс кэша best-effort: лидерборд живёт с коротким TTL.
		if err := s.lbcache.Invalidate(ctx, session.GameMode); err != nil {
			lg.Warn("leaderboard_cache_invalidate_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	metrics.Submissions.WithLabelValues("accepted").Inc()

	lg.Info("result_accepted",
		slog.String("op", op),
		slog.String("player", session.PlayerName),
		slog.Int("mode", session.GameMode),
		slog.Float64("score", score),
		slog.String("rank", rank),
		slog.Bool("is_new_best", isNewBest),
	)

	return &models.SubmitOutcome{
		IsNewBest: isNewBest,
		ResultID:  resultID,
		Score:     score,
		Rank:      rank,
	}, nil
}
