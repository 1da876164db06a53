package service

import (
	"fmt"
	"math"

	"github.com/pribylovaa/go-typing-arena/internal/models"
)

// Метки шести рангов, от пола к вершине:
// rookie → casual → skilled → pro → master → legend.
const (
	RankRookie  = "rookie"
	RankCasual  = "casual"
	RankSkilled = "skilled"
	RankPro     = "pro"
	RankMaster  = "master"
	RankLegend  = "legend"
)

// rankTiers — пороги рангов, сверху вниз; выигрывает первое совпадение.
// Каждый ранг требует одновременно пол по счёту и пол по точности:
// гейт по точности не даёт «спам-печатью» выбить высокий ранг чистой
// скоростью с низкой точностью.
var rankTiers = []struct {
	minScore    float64
	minAccuracy float64
	label       string
}{
	{14, 98, RankLegend},
	{11, 95, RankMaster},
	{7, 90, RankPro},
	{4, 85, RankSkilled},
	{1, 80, RankCasual},
}

// ScoreInput — провалидированные входы пересчёта счёта.
type ScoreInput struct {
	LPS               float64
	Accuracy          float64
	GameMode          int
	TotalLetters      int
	CorrectedErrors   int
	UncorrectedErrors int
}

// CalculateScore — детерминированный серверный пересчёт счёта.
// Клиентское поле score никогда не используется: доверяем только сырым
// метрикам тайминга/точности/ошибок.
//
// Квадрат точности наказывает неряшливую печать суперлинейно; бонус за
// исправления (≤15%) поощряет игроков, которые ловят и правят опечатки,
// не награждая высокий сырой процент ошибок; множитель режима калибрует
// сравнимость счётов между режимами.
func CalculateScore(in ScoreInput, mode30Multiplier float64) float64 {
	corrected := float64(in.CorrectedErrors)
	uncorrected := float64(in.UncorrectedErrors)

	var correctionRate float64
	if in.CorrectedErrors > 0 {
		correctionRate = corrected / (corrected + uncorrected)
	}

	var errorRate float64
	if in.TotalLetters > 0 {
		errorRate = (corrected + uncorrected) / float64(in.TotalLetters)
	}

	correctionBonus := correctionRate * (1 - math.Min(errorRate*10, 0.5)) * 0.15

	accuracy := in.Accuracy / 100
	base := in.LPS * accuracy * accuracy
	withCorrection := base * (1 + correctionBonus)

	if in.GameMode == 30 {
		return withCorrection * mode30Multiplier
	}

	return withCorrection
}

// CalculateRank классифицирует пару (счёт, точность) в один из шести рангов.
// Пороги проверяются сверху вниз, двусмысленности «проваливания» нет.
func CalculateRank(score, accuracy float64) string {
	for _, tier := range rankTiers {
		if score >= tier.minScore && accuracy >= tier.minAccuracy {
			return tier.label
		}
	}

	return RankRookie
}

// validateMetrics прогоняет числовые гейты валидатора; каждый гейт —
// независимая точка отказа со своим сентинелом. Границы окон включительны.
func (s *Service) validateMetrics(m models.ClientMetrics) error {
	const op = "service.score.validateMetrics"

	if m.LPS <= 0 || m.LPS > s.cfg.MaxLPS {
		return fmt.Errorf("%s: %w", op, ErrLPSOutOfRange)
	}

	if m.Accuracy < 0 || m.Accuracy > 100 {
		return fmt.Errorf("%s: %w", op, ErrAccuracyOutOfRange)
	}

	min, max, ok := s.cfg.TimeWindow(m.GameMode)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrUnsupportedMode)
	}
	if m.TimeSeconds < min || m.TimeSeconds > max {
		return fmt.Errorf("%s: %w", op, ErrTimeOutOfRange)
	}

	if m.MsPerLetter < 0 || m.MsPerLetter > 1_000_000 {
		return fmt.Errorf("%s: %w", op, ErrMsPerLetterOutOfRange)
	}

	// ms_per_letter и lps производны от одного тайминга и обязаны сходиться;
	// расхождение — следствие подделки либо клиентского бага, отклоняем одинаково.
	if math.Abs(m.MsPerLetter-1000/m.LPS) > s.cfg.MsPerLetterTolerance {
		return fmt.Errorf("%s: %w", op, ErrMsPerLetterMismatch)
	}

	if m.TotalLetters < 0 || m.CorrectedErrors < 0 || m.UncorrectedErrors < 0 {
		return fmt.Errorf("%s: %w", op, ErrCountsOutOfRange)
	}

	return nil
}
