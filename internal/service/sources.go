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

// CreateSource регистрирует источник новостей.
// Ссылка нормализуется так же, как при приёме новостей. Для self-service
// регистрации (CreatedBy != 0) двигается счётчик sources_added_count
// и пересчитываются достижения.
//
// Ошибки:
// - ErrInvalidArgument — пустое имя, некорректная ссылка или неизвестный тип;
// - ErrAlreadyExists — источник с таким именем или ссылкой уже есть.
func (s *Service) CreateSource(ctx context.Context, source models.Source) (*models.Source, error) {
	const op = "service.sources.CreateSource"

	lg := log.From(ctx)
	lg.Info("create_source_request",
		slog.String("op", op),
		slog.String("name", source.Name),
	)

	if source.Name == "" || source.Link == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	switch source.Type {
	case models.SourceTypeWeb, models.SourceTypeRSS, models.SourceTypeChannel, models.SourceTypeSocial:
	case "":
		source.Type = models.SourceTypeWeb
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	link, err := NormalizeURL(source.Link)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	source.Link = link

	if source.Status == "" {
		source.Status = models.SourceActive
	}

	created, err := s.storage.CreateSource(ctx, source)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if created.CreatedBy != 0 {
		stats, statsErr := s.storage.IncrementSourcesAdded(ctx, created.CreatedBy)
		if statsErr != nil {
			lg.Warn("create_source_counter_error",
				slog.String("op", op),
				slog.String("err", statsErr.Error()),
			)
		} else {
			s.grantAchievements(ctx, stats)
		}
	}

	lg.Info("create_source_ok",
		slog.String("op", op),
		slog.Int64("source_id", created.ID),
	)

	return created, nil
}

// SourceByID возвращает источник.
//
// Ошибки:
// - ErrNotFound — источника нет.
func (s *Service) SourceByID(ctx context.Context, id int64) (*models.Source, error) {
	const op = "service.sources.SourceByID"

	source, err := s.storage.SourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return source, nil
}

// SetSourceStatus мутирует операционный статус источника.
// Заблокированный источник перестаёт приниматься шлюзом приёма.
//
// Ошибки:
// - ErrInvalidArgument — неизвестный статус;
// - ErrNotFound — источника нет.
func (s *Service) SetSourceStatus(ctx context.Context, id int64, status models.SourceStatus) error {
	const op = "service.sources.SetSourceStatus"

	switch status {
	case models.SourceActive, models.SourceInactive, models.SourceBlocked:
	default:
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.SetSourceStatus(ctx, id, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("set_source_status_ok",
		slog.String("op", op),
		slog.Int64("source_id", id),
		slog.String("status", string(status)),
	)

	return nil
}

// ListSources возвращает все источники.
func (s *Service) ListSources(ctx context.Context) ([]models.Source, error) {
	const op = "service.sources.ListSources"

	sources, err := s.storage.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sources, nil
}
