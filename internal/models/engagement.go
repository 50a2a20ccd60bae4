package models

import "time"

// UserStats — монотонные счётчики вовлечённости пользователя.
// Инкременты выполняются атомарно на стороне хранилища (не read-modify-write),
// чтобы конкурентные события не теряли обновления.
type UserStats struct {
	UserID int64
	// NewsReadCount — количество уникальных просмотренных новостей.
	NewsReadCount int64
	// AIRequestCount — количество обращений к AI-функциям.
	AIRequestCount int64
	// SourcesAddedCount — количество добавленных источников.
	SourcesAddedCount int64
	// ReportsSentCount — количество отправленных жалоб.
	ReportsSentCount int64
	// AIPositiveCount/AINegativeCount — счётчики оценок AI-ответов.
	AIPositiveCount int64
	AINegativeCount int64
	LastActive      time.Time
}

// Badge — заработанный бейдж геймификации.
// Начисляется ровно один раз: повторная проверка порога — no-op.
type Badge struct {
	UserID   int64
	Code     string
	EarnedAt time.Time
}
