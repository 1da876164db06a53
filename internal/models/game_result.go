package models

import (
	"time"

	"github.com/google/uuid"
)

// GameResult — лучший результат игрока в конкретном режиме.
// Уникален по паре (player_name, game_mode); при новом лучшем счёте
// строка перезаписывается на месте, история попыток не ведётся.
type GameResult struct {
	ID            uuid.UUID
	PlayerName    string
	GameMode      int
	Score         float64
	LPS           float64
	Accuracy      float64
	Rank          string
	TimeSeconds   float64
	MsPerLetter   float64
	IsTwitterUser bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SubmitOutcome — итог приёма результата: лучший ли это счёт
// и идентификатор строки лидерборда (существующей либо новой).
type SubmitOutcome struct {
	IsNewBest bool
	ResultID  uuid.UUID
	Score     float64
	Rank      string
}
