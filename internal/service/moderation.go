package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// Moderate применяет решение модератора к новости.
//
// Переход подчиняется таблице models.moderationTransitions:
// pending_review -> {approved, declined}, оба терминальны.
// Конкурентная гонка решений разрешается CAS-ом в хранилище;
// проигравший получает ошибку по фактическому состоянию строки.
//
// Ошибки:
// - ErrInvalidArgument — decision не является допустимым решением;
// - ErrNotFound — новости нет;
// - ErrAlreadyDecided — то же решение уже принято;
// - ErrInvalidStateTransition — принято другое решение;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) Moderate(ctx context.Context, newsID uuid.UUID, decision models.ModerationStatus, adminID int64) (*models.News, error) {
	const op = "service.moderation.Moderate"

	lg := log.From(ctx)
	lg.Info("moderate_request",
		slog.String("op", op),
		slog.String("news_id", newsID.String()),
		slog.String("decision", string(decision)),
		slog.Int64("admin_id", adminID),
	)

	if !decision.Valid() || !models.ModerationPending.CanTransition(decision) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var current models.ModerationStatus
	var changed bool

	err := withRetry(ctx, 3, func() error {
		var err error
		current, changed, err = s.storage.Moderate(ctx, newsID, decision, adminID)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("moderate_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		if current == decision {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyDecided)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidStateTransition)
	}

	news, err := s.storage.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("moderate_ok",
		slog.String("op", op),
		slog.String("news_id", newsID.String()),
		slog.String("status", string(current)),
	)

	return news, nil
}

// ApplyAIAnnotations применяет выводы внешнего AI-коллаборатора
// (резюме и классифицированные темы). Статус модерации не затрагивается:
// аннотации и модерация — независимые измерения жизненного цикла.
func (s *Service) ApplyAIAnnotations(ctx context.Context, newsID uuid.UUID, summary string, topics []string) error {
	const op = "service.moderation.ApplyAIAnnotations"

	if err := s.storage.ApplyAIAnnotations(ctx, newsID, summary, topics); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// NewsByID возвращает новость по идентификатору.
func (s *Service) NewsByID(ctx context.Context, newsID uuid.UUID) (*models.News, error) {
	const op = "service.moderation.NewsByID"

	news, err := s.storage.NewsByID(ctx, newsID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return news, nil
}
