package models

import (
	"time"

	"github.com/google/uuid"
)

// RunSession — одноразовая игровая сессия (run-токен).
// Храним только хэш секрета: сырой токен выдаётся клиенту ровно один раз
// и восстановлению не подлежит.
type RunSession struct {
	ID         uuid.UUID
	TokenHash  string
	PlayerName string
	GameMode   int
	IssuedAt   time.Time
	ExpiresAt  time.Time
	// IP/UserAgent — провенанс-метаданные, на решение о приёме не влияют.
	IP        string
	UserAgent string
	// UsedAt — nil до погашения; после погашения сессия потрачена навсегда.
	UsedAt *time.Time
}

// RunGrant — ответ на выдачу run-токена: идентификатор сессии,
// сырой секрет и момент истечения.
type RunGrant struct {
	RunID     uuid.UUID
	Token     string
	ExpiresAt time.Time
}
