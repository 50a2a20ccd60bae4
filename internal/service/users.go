package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// EnsureUser идемпотентно регистрирует пользователя при первом контакте
// либо обновляет профильные поля и last_active при повторном.
// Предпочтения при повторном контакте не перетираются.
func (s *Service) EnsureUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "service.users.EnsureUser"

	if user.ID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.UpsertUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("ensure_user_ok",
		slog.String("op", op),
		slog.Int64("user_id", user.ID),
	)

	return result, nil
}

// UserByID возвращает пользователя.
//
// Ошибки:
// - ErrNotFound — пользователь не зарегистрирован.
func (s *Service) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "service.users.UserByID"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdatePreferences применяет частичное обновление предпочтений.
// nil-поле означает «не трогать»; заданные значения валидируются
// по закрытым наборам вариантов.
//
// Ошибки:
// - ErrInvalidArgument — неизвестная частота дайджеста или режим отображения;
// - ErrNotFound — пользователь не зарегистрирован.
func (s *Service) UpdatePreferences(ctx context.Context, id int64, update storage.UserUpdate) (*models.User, error) {
	const op = "service.users.UpdatePreferences"

	if update.DigestFrequency != nil {
		switch *update.DigestFrequency {
		case models.DigestDaily, models.DigestWeekly:
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	if update.ViewMode != nil {
		switch *update.ViewMode {
		case models.ViewModeFull, models.ViewModeCompact:
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	if update.Language != nil && *update.Language == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UpdateUser(ctx, id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
