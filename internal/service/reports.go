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

// SubmitReport сохраняет жалобу пользователя (append-only), двигает счётчик
// reports_sent_count и пересчитывает достижения.
//
// Ошибки:
// - ErrInvalidArgument — неизвестный тип цели или пустой идентификатор цели.
func (s *Service) SubmitReport(ctx context.Context, report models.Report) (*models.Report, error) {
	const op = "service.reports.SubmitReport"

	lg := log.From(ctx)

	switch report.TargetType {
	case models.ReportTargetNews, models.ReportTargetUser, models.ReportTargetAI:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if report.UserID <= 0 || report.TargetID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	created, err := s.storage.CreateReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats, statsErr := s.storage.IncrementReportsSent(ctx, report.UserID)
	if statsErr != nil {
		lg.Warn("submit_report_counter_error",
			slog.String("op", op),
			slog.String("err", statsErr.Error()),
		)
	} else {
		s.grantAchievements(ctx, stats)
	}

	lg.Info("submit_report_ok",
		slog.String("op", op),
		slog.Int64("report_id", created.ID),
		slog.String("target_type", string(created.TargetType)),
	)

	return created, nil
}

// ResolveReport мутирует статус жалобы от имени администратора.
//
// Ошибки:
// - ErrInvalidArgument — статус вне workflow resolved/archived;
// - ErrNotFound — жалобы нет.
func (s *Service) ResolveReport(ctx context.Context, id int64, status models.ReportStatus, adminID int64) error {
	const op = "service.reports.ResolveReport"

	switch status {
	case models.ReportResolved, models.ReportArchived:
	default:
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.ResolveReport(ctx, id, status, adminID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListReports возвращает жалобы в заданном статусе (новые сверху).
// Пустой статус означает pending.
func (s *Service) ListReports(ctx context.Context, status models.ReportStatus, limit int32) ([]models.Report, error) {
	const op = "service.reports.ListReports"

	if status == "" {
		status = models.ReportPending
	}

	switch status {
	case models.ReportPending, models.ReportResolved, models.ReportArchived:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	reports, err := s.storage.ListReports(ctx, status, s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reports, nil
}
