package models

import "time"

// SourceType — тип происхождения контента.
type SourceType string

const (
	SourceTypeWeb     SourceType = "web"
	SourceTypeRSS     SourceType = "rss"
	SourceTypeChannel SourceType = "channel"
	SourceTypeSocial  SourceType = "social"
)

// SourceStatus — операционный статус источника.
type SourceStatus string

const (
	SourceActive   SourceStatus = "active"
	SourceInactive SourceStatus = "inactive"
	SourceBlocked  SourceStatus = "blocked"
)

// Source — источник новостей.
//
// Владеет нулём и более новостями. Создаётся администратором или
// пользователем (self-service); статус мутируется модерацией и health-проверками.
type Source struct {
	ID   int64
	Name string
	Link string
	Type SourceType
	// Status — blocked-источники не принимаются шлюзом приёма.
	Status SourceStatus
	// Trusted — новости доверенного источника минуют премодерацию
	// и сразу получают статус approved.
	Trusted bool
	// ParseInterval — периодичность опроса источника внешним сборщиком.
	ParseInterval time.Duration
	// PublishedCount — счётчик принятых новостей (атомарный инкремент при приёме).
	PublishedCount int64
	// CreatedBy — пользователь, добавивший источник (0 — администратор/система).
	CreatedBy int64
	CreatedAt time.Time
}
