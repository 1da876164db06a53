package handlers

import (
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-typing-arena/internal/models"
	"github.com/pribylovaa/go-typing-arena/internal/service"
	"github.com/pribylovaa/go-typing-arena/internal/transport/http/httperr"
)

// startRunRequest — запрос выдачи run-токена.
type startRunRequest struct {
	PlayerName string `json:"player_name"`
	GameMode   int    `json:"game_mode"`
}

// startRunResponse — ответ с одноразовым секретом.
// expires_at — unix-секунды.
type startRunResponse struct {
	Success   bool   `json:"success"`
	RunID     string `json:"run_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// StartRun — POST /game/run.
func (h *Handlers) StartRun(w http.ResponseWriter, r *http.Request) {
	var in startRunRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteBadRequest(w, "invalid request body")
		return
	}

	grant, err := h.svc.StartRun(r.Context(), in.PlayerName, in.GameMode, service.RunMeta{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, startRunResponse{
		Success:   true,
		RunID:     grant.RunID.String(),
		Token:     grant.Token,
		ExpiresAt: grant.ExpiresAt.Unix(),
	})
}

// submitResultRequest — запрос приёма результата раунда.
// score/rank клиент в некоторых вариантах присылает — принимаем
// и игнорируем: финальные значения сервер пересчитывает сам.
type submitResultRequest struct {
	RunID             string  `json:"run_id"`
	Token             string  `json:"token"`
	PlayerName        string  `json:"player_name"`
	GameMode          int     `json:"game_mode"`
	LPS               float64 `json:"lps"`
	Accuracy          float64 `json:"accuracy"`
	Time              float64 `json:"time"`
	MsPerLetter       float64 `json:"ms_per_letter"`
	TotalLetters      int     `json:"total_letters"`
	UncorrectedErrors int     `json:"uncorrected_errors"`
	CorrectedErrors   int     `json:"corrected_errors"`
	IsTwitterUser     bool    `json:"is_twitter_user"`

	// Советательные поля; на сохранённый результат не влияют.
	Score float64 `json:"score,omitempty"`
	Rank  string  `json:"rank,omitempty"`
}

type submitResultResponse struct {
	Success   bool   `json:"success"`
	IsNewBest bool   `json:"isNewBest"`
	ID        string `json:"id"`
}

// SubmitResult — POST /game/result.
func (h *Handlers) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var in submitResultRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteBadRequest(w, "invalid request body")
		return
	}

	outcome, err := h.svc.SubmitResult(r.Context(), service.SubmitInput{
		RunID:         in.RunID,
		Token:         in.Token,
		PlayerName:    in.PlayerName,
		IsTwitterUser: in.IsTwitterUser,
		Metrics: models.ClientMetrics{
			GameMode:          in.GameMode,
			LPS:               in.LPS,
			Accuracy:          in.Accuracy,
			TimeSeconds:       in.Time,
			MsPerLetter:       in.MsPerLetter,
			TotalLetters:      in.TotalLetters,
			UncorrectedErrors: in.UncorrectedErrors,
			CorrectedErrors:   in.CorrectedErrors,
		},
	})
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitResultResponse{
		Success:   true,
		IsNewBest: outcome.IsNewBest,
		ID:        outcome.ResultID.String(),
	})
}

// leaderboardEntry — строка публичной выдачи лидерборда.
type leaderboardEntry struct {
	PlayerName    string  `json:"player_name"`
	GameMode      int     `json:"game_mode"`
	Score         float64 `json:"score"`
	LPS           float64 `json:"lps"`
	Accuracy      float64 `json:"accuracy"`
	Rank          string  `json:"rank"`
	Time          float64 `json:"time"`
	MsPerLetter   float64 `json:"ms_per_letter"`
	IsTwitterUser bool    `json:"isTwitterUser"`
}

type leaderboardResponse struct {
	Success bool               `json:"success"`
	Results []leaderboardEntry `json:"results"`
}

// Leaderboard — GET /game/leaderboard?game_mode=15&limit=50.
// Чистое чтение: токен не требуется.
func (h *Handlers) Leaderboard(w http.ResponseWriter, r *http.Request) {
	gameMode, err := strconv.Atoi(r.URL.Query().Get("game_mode"))
	if err != nil {
		httperr.WriteBadRequest(w, "invalid game_mode")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			httperr.WriteBadRequest(w, "invalid limit")
			return
		}
	}

	results, err := h.svc.Leaderboard(r.Context(), gameMode, limit)
	if err != nil {
		httperr.WriteError(w, err)
		return
	}

	out := leaderboardResponse{
		Success: true,
		Results: make([]leaderboardEntry, 0, len(results)),
	}
	for _, res := range results {
		out.Results = append(out.Results, leaderboardEntry{
			PlayerName:    res.PlayerName,
			GameMode:      res.GameMode,
			Score:         res.Score,
			LPS:           res.LPS,
			Accuracy:      res.Accuracy,
			Rank:          res.Rank,
			Time:          res.TimeSeconds,
			MsPerLetter:   res.MsPerLetter,
			IsTwitterUser: res.IsTwitterUser,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
