package models

import (
	"time"

	"github.com/google/uuid"
)

// InviteStatus — статус реферального приглашения.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteExpired  InviteStatus = "expired"
)

// Invitation — одноразовый реферальный токен.
//
// Особенности:
//   - Code глобально уникален и генерируется с запасом энтропии (UUIDv4);
//   - первое успешное погашение атомарно выставляет used_at/status
//     и привязывает inviter_id к новому пользователю;
//   - ExpiresAt нулевое — приглашение бессрочно.
type Invitation struct {
	ID        uuid.UUID
	Code      string
	InviterID int64
	// InviteeID — пользователь, погасивший приглашение (0 — ещё не погашено).
	InviteeID int64
	Status    InviteStatus
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    time.Time
}
