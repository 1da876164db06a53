// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход принимает ошибку сервиса (сентинел либо обёртка над ним),
// а на выход даёт:
//   - корректный HTTP-статус (400 для отказов валидации/сессии, 500 для прочего);
//   - стабильную машиночитаемую reason-строку без утечки деталей.
//
// Формат тела фиксирован публичным контрактом: {"success": false, "error": "..."}.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-typing-arena/internal/service"
)

// ErrorResponse — корневой объект в ответе об ошибке.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// reason — элемент таблицы маппинга сентинел -> статус/строка.
type reason struct {
	status  int
	message string
}

// Таблица причин отказа. Строки стабильны: клиенты матчатся по ним.
var reasons = []struct {
	err error
	res reason
}{
	{service.ErrInvalidName, reason{http.StatusBadRequest, "Invalid player name"}},
	{service.ErrUnsupportedMode, reason{http.StatusBadRequest, "Unsupported game mode"}},
	{service.ErrInvalidSession, reason{http.StatusBadRequest, "Invalid run session"}},
	{service.ErrSessionExpired, reason{http.StatusBadRequest, "Run session expired"}},
	{service.ErrSessionAlreadyUsed, reason{http.StatusBadRequest, "Run session already used"}},
	{service.ErrTooFast, reason{http.StatusBadRequest, "Run completed too fast"}},
	{service.ErrNameMismatch, reason{http.StatusBadRequest, "player_name mismatch"}},
	{service.ErrModeMismatch, reason{http.StatusBadRequest, "game_mode mismatch"}},
	{service.ErrLPSOutOfRange, reason{http.StatusBadRequest, "lps out of range"}},
	{service.ErrAccuracyOutOfRange, reason{http.StatusBadRequest, "accuracy out of range"}},
	{service.ErrTimeOutOfRange, reason{http.StatusBadRequest, "time out of range"}},
	{service.ErrMsPerLetterOutOfRange, reason{http.StatusBadRequest, "ms_per_letter out of range"}},
	{service.ErrMsPerLetterMismatch, reason{http.StatusBadRequest, "ms_per_letter calculation mismatch"}},
	{service.ErrCountsOutOfRange, reason{http.StatusBadRequest, "letter counts out of range"}},
	{service.ErrScoreOutOfRange, reason{http.StatusBadRequest, "score out of range"}},
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки и не замаскировать баг;
//   - известный сентинел — статус и строка из таблицы;
//   - всё прочее (ошибки хранилища и т.п.) — 500/internal без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, entry := range reasons {
			if errors.Is(err, entry.err) {
				return entry.res.status, ErrorResponse{Error: entry.res.message}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: "internal error"}
}

// WriteError — хелпер для HTTP-хендлеров: пишет корректный статус и тело.
func WriteError(w http.ResponseWriter, err error) {
	status, resp := ToHTTP(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteBadRequest — отказ на битый вход, до вызова сервиса
// (нечитаемый JSON, неизвестные поля, битые query-параметры).
func WriteBadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "invalid request body"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
