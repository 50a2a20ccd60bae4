// models содержит доменные сущности движка персонализированной новостной ленты.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ModerationStatus — статус модерации новости.
//
// Жизненный цикл: pending_review -> {approved, declined}.
// Оба конечных статуса терминальны; других переходов нет.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending_review"
	ModerationApproved ModerationStatus = "approved"
	ModerationDeclined ModerationStatus = "declined"
)

// moderationTransitions — таблица разрешённых переходов.
// Явная таблица вместо точечных сравнений строк: недопустимый переход
// проверяется одним способом во всех слоях.
var moderationTransitions = map[ModerationStatus][]ModerationStatus{
	ModerationPending:  {ModerationApproved, ModerationDeclined},
	ModerationApproved: {},
	ModerationDeclined: {},
}

// Valid сообщает, известен ли статус.
func (s ModerationStatus) Valid() bool {
	_, ok := moderationTransitions[s]
	return ok
}

// Terminal сообщает, является ли статус конечным.
func (s ModerationStatus) Terminal() bool {
	next, ok := moderationTransitions[s]
	return ok && len(next) == 0
}

// CanTransition проверяет допустимость перехода s -> to.
func (s ModerationStatus) CanTransition(to ModerationStatus) bool {
	for _, next := range moderationTransitions[s] {
		if next == to {
			return true
		}
	}

	return false
}

// News — доменная сущность новости.
//
// Особенности:
//   - ID — UUIDv4;
//   - SourceURL — нормализованная каноническая ссылка, глобальный ключ дедупликации;
//   - временные метки — в UTC; нулевое время означает NULL в БД;
//   - после записи неизменяема, кроме статуса модерации, AI-полей и expires_at.
type News struct {
	// ID — уникальный идентификатор новости.
	ID uuid.UUID
	// SourceID — источник, которому принадлежит новость.
	SourceID int64
	// Title — заголовок.
	Title string
	// Content — полный текст.
	Content string
	// SourceURL — каноническая ссылка на материал (после нормализации).
	SourceURL string
	// ImageURL — ссылка на обложку (опционально).
	ImageURL string
	// Lang — язык материала.
	Lang string
	// PublishedAt — время публикации у источника.
	PublishedAt time.Time
	// FetchedAt — время приёма новости движком (UTC).
	FetchedAt time.Time
	// AISummary — резюме от внешнего AI-коллаборатора (опционально).
	AISummary string
	// AITopics — темы, присвоенные AI-классификатором (опционально).
	AITopics []string
	// ModerationStatus — текущий статус модерации.
	ModerationStatus ModerationStatus
	// ExpiresAt — время, после которого новость не отдаётся в ленту.
	ExpiresAt time.Time
	// ArchivedAt — отметка фоновой уборки истёкших записей.
	ArchivedAt time.Time
	// CreatedBy — пользователь-автор для пользовательского контента (0 — системная).
	CreatedBy int64
}

// VisibleAt — базовый предикат видимости: новость одобрена и не истекла.
// Вычисляется лениво при каждой выборке ленты; фоновая уборка
// для корректности не требуется.
func (n News) VisibleAt(now time.Time) bool {
	if n.ModerationStatus != ModerationApproved {
		return false
	}
	if n.ExpiresAt.IsZero() {
		return true
	}

	return n.ExpiresAt.After(now)
}

// ListOptions — параметры выборки списков доменных сущностей.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}

// Page — страница новостей со ссылкой на продолжение.
type Page struct {
	Items         []News
	NextPageToken string
}
