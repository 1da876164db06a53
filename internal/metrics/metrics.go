// metrics содержит prometheus-счётчики игрового конвейера.
// Экспозиция — через promhttp на ops-мультиплексоре в main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsIssued — количество выданных run-токенов.
	RunsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "typing_arena_runs_issued_total",
		Help: "Issued run tokens.",
	})

	// Redemptions — погашения run-токенов по исходам
	// (ok, invalid, expired, used, too_fast, error).
	Redemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "typing_arena_redemptions_total",
		Help: "Run token redemptions by outcome.",
	}, []string{"outcome"})

	// Submissions — приём результатов по исходам (accepted, rejected, error).
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "typing_arena_submissions_total",
		Help: "Result submissions by outcome.",
	}, []string{"outcome"})
)
