package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportTargetType — тип объекта жалобы.
type ReportTargetType string

const (
	ReportTargetNews ReportTargetType = "news"
	ReportTargetUser ReportTargetType = "user"
	ReportTargetAI   ReportTargetType = "ai"
)

// ReportStatus — статус обработки жалобы.
// Со стороны пользователя записи append-only; статус мутирует администратор.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
	ReportArchived ReportStatus = "archived"
)

// Report — жалоба пользователя на новость, пользователя или AI-вывод.
type Report struct {
	ID         int64
	UserID     int64
	TargetType ReportTargetType
	// TargetID — строковый идентификатор цели (UUID новости, id пользователя).
	TargetID   string
	Reason     string
	Status     ReportStatus
	CreatedAt  time.Time
	ResolvedBy int64
	ResolvedAt time.Time
}

// Feedback — свободная обратная связь пользователя,
// опционально привязанная к новости.
type Feedback struct {
	ID     int64
	UserID int64
	// NewsID — uuid.Nil, если отзыв не привязан к конкретной новости.
	NewsID    uuid.UUID
	Rating    int16
	Comment   string
	CreatedAt time.Time
}

// OverviewStats — агрегированные счётчики для административных read-view.
// Производные от базовых сущностей; собственных инвариантов не несут.
type OverviewStats struct {
	TotalUsers int64
	TotalNews  int64
	// ActiveUsers — пользователи с активностью за последние 7 дней.
	ActiveUsers int64
	// NewsByStatus — количество новостей в разрезе статуса модерации.
	NewsByStatus map[ModerationStatus]int64
}
