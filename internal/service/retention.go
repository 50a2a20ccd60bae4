package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// Sweep — один проход фоновой уборки: помечает archived_at
// у свежеистёкших новостей. Корректность видимости ленты от уборки
// не зависит (ленивый предикат в каждой выборке).
func (s *Service) Sweep(ctx context.Context, now time.Time) (int64, error) {
	const op = "service.retention.Sweep"

	count, err := s.storage.SweepExpired(ctx, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// StartSweeper запускает периодическую уборку с интервалом из конфига.
//
// Особенности:
//   - первый проход выполняется сразу при старте;
//   - останавливается по ctx.
func (s *Service) StartSweeper(ctx context.Context) error {
	const op = "service.retention.StartSweeper"

	interval := s.cfg.Retention.SweepInterval

	lg := log.From(ctx)
	lg.Info("sweeper_start",
		slog.String("op", op),
		slog.Duration("interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweep := func() {
		count, err := s.Sweep(ctx, time.Now().UTC())
		if err != nil {
			lg.Warn("sweep_tick_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return
		}

		if count > 0 {
			lg.Info("sweep_archived",
				slog.String("op", op),
				slog.Int64("count", count),
			)
		}
	}

	sweep()

	for {
		select {
		case <-ctx.Done():
			lg.Info("sweeper_stop", slog.String("op", op))
			return nil
		case <-ticker.C:
			sweep()
		}
	}
}

// AdminExtendExpiry — явное административное продление срока жизни новости;
// единственная разрешённая мутация expires_at после приёма. Аудируется.
//
// Ошибки:
// - ErrInvalidArgument — until в прошлом;
// - ErrNotFound — новости нет.
func (s *Service) AdminExtendExpiry(ctx context.Context, newsID uuid.UUID, until time.Time, adminID int64) error {
	const op = "service.retention.AdminExtendExpiry"

	lg := log.From(ctx)
	lg.Info("extend_expiry_request",
		slog.String("op", op),
		slog.String("news_id", newsID.String()),
		slog.Time("until", until),
		slog.Int64("admin_id", adminID),
	)

	if !until.After(time.Now().UTC()) {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.ExtendExpiry(ctx, newsID, until.UTC(), adminID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
