package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// UsersDueForDigest возвращает пользователей, которым пора отправлять
// дайджест на момент now: уведомления включены и с последней отправки
// прошёл полный период их частоты. Сама доставка — забота внешнего
// коллаборатора; движок лишь отвечает на вопрос «кому пора».
func (s *Service) UsersDueForDigest(ctx context.Context, now time.Time) ([]int64, error) {
	const op = "service.digest.UsersDueForDigest"

	ids, err := s.storage.UsersDueForDigest(ctx, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("users_due_for_digest",
		slog.String("op", op),
		slog.Int("count", len(ids)),
	)

	return ids, nil
}

// MarkDigestSent фиксирует факт отправки дайджеста, чтобы пользователь
// не попадал в выборку повторно до конца периода.
//
// Ошибки:
// - ErrNotFound — пользователь не зарегистрирован.
func (s *Service) MarkDigestSent(ctx context.Context, userID int64, sentAt time.Time) error {
	const op = "service.digest.MarkDigestSent"

	if err := s.storage.MarkDigestSent(ctx, userID, sentAt.UTC()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
