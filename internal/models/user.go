package models

import "time"

// DigestFrequency — периодичность дайджеста пользователя.
type DigestFrequency string

const (
	DigestDaily  DigestFrequency = "daily"
	DigestWeekly DigestFrequency = "weekly"
)

// Period возвращает длительность одного периода дайджеста.
// Неизвестная периодичность трактуется как daily.
func (f DigestFrequency) Period() time.Duration {
	if f == DigestWeekly {
		return 7 * 24 * time.Hour
	}

	return 24 * time.Hour
}

// ViewMode — режим отображения ленты в чат-интерфейсе.
type ViewMode string

const (
	ViewModeFull    ViewMode = "full"
	ViewModeCompact ViewMode = "compact"
)

// User — доменная сущность пользователя.
//
// Особенности:
//   - ID — стабильный числовой идентификатор чат-платформы;
//   - создаётся при первом контакте, мутирует непрерывно, жёстко не удаляется;
//   - InviterID == 0 — органическая регистрация (без реферала).
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	// Language — язык интерфейса и предпочитаемый язык новостей.
	Language string
	IsAdmin  bool
	// SafeMode — исключать из ленты фиксированный набор чувствительных тем.
	SafeMode bool
	// AutoNotifications — включена ли доставка дайджеста.
	AutoNotifications bool
	DigestFrequency   DigestFrequency
	ViewMode          ViewMode
	// InviterID — пользователь, чьё приглашение было использовано при регистрации.
	InviterID int64
	// Level — уровень геймификации (производное от счётчиков).
	Level        int32
	CreatedAt    time.Time
	LastActive   time.Time
	LastDigestAt time.Time
}
