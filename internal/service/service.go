// service содержит бизнес-логику движка новостной ленты:
// приём и дедупликацию новостей, модерацию, срок жизни, персональную ленту,
// вовлечённость, приглашения и границу дайджестов.
package service

import (
	"errors"

	"github.com/morozovaa/go-feed-engine/internal/config"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrAlreadyExists — конфликт уникальности.
	// Транспорт: 409.
	ErrAlreadyExists = errors.New("already exists")
	// ErrAlreadyDecided — повтор того же решения модерации по решённой новости.
	// Транспорт: 409.
	ErrAlreadyDecided = errors.New("already decided")
	// ErrInvalidStateTransition — попытка сменить уже принятое решение модерации.
	// Транспорт: 409.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrInviteExpired — срок действия кода приглашения истёк.
	// Транспорт: 410.
	ErrInviteExpired = errors.New("invite expired")
	// ErrInviteAlreadyUsed — приглашение уже погашено.
	// Транспорт: 409.
	ErrInviteAlreadyUsed = errors.New("invite already used")
)

// Service — описывает бизнес-логику движка ленты.
type Service struct {
	storage storage.Storage
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// limit нормализует пользовательский limit по конфигу:
// limit <= 0 -> default; limit > max -> max.
func (s *Service) limit(limit int32) int32 {
	if limit <= 0 {
		limit = s.cfg.LimitsConfig.Default
	}

	if s.cfg.LimitsConfig.Max > 0 && limit > s.cfg.LimitsConfig.Max {
		limit = s.cfg.LimitsConfig.Max
	}

	return limit
}
