package models

// ClientMetrics — метрики раунда, присланные клиентом.
// Все числовые поля недоверенные: сервер независимо пересчитывает счёт
// и отклоняет внутренне противоречивые наборы.
type ClientMetrics struct {
	GameMode          int
	LPS               float64
	Accuracy          float64
	TimeSeconds       float64
	MsPerLetter       float64
	TotalLetters      int
	UncorrectedErrors int
	CorrectedErrors   int
}
