package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

const reportColumns = `
id, user_id, target_type, target_id, reason, status, created_at, resolved_by, resolved_at
`

func scanReport(row pgx.Row) (*models.Report, error) {
	var report models.Report
	var targetType, status string
	var resolvedAt *time.Time

	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&targetType,
		&report.TargetID,
		&report.Reason,
		&status,
		&report.CreatedAt,
		&report.ResolvedBy,
		&resolvedAt,
	); err != nil {
		return nil, err
	}

	report.TargetType = models.ReportTargetType(targetType)
	report.Status = models.ReportStatus(status)
	report.CreatedAt = report.CreatedAt.UTC()
	if resolvedAt != nil {
		report.ResolvedAt = resolvedAt.UTC()
	}

	return &report, nil
}

// CreateReport сохраняет жалобу пользователя.
func (s *Storage) CreateReport(ctx context.Context, report models.Report) (*models.Report, error) {
	const op = "storage.postgres.CreateReport"

	row := s.db.QueryRow(ctx, `
	INSERT INTO reports (user_id, target_type, target_id, reason)
	VALUES ($1, $2, $3, $4)
	RETURNING `+reportColumns,
		report.UserID, string(report.TargetType), report.TargetID, report.Reason)

	result, err := scanReport(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ResolveReport мутирует статус жалобы от имени администратора.
func (s *Storage) ResolveReport(ctx context.Context, id int64, status models.ReportStatus, adminID int64) error {
	const op = "storage.postgres.ResolveReport"

	tag, err := s.db.Exec(ctx, `
	UPDATE reports SET status = $2, resolved_by = $3, resolved_at = now()
	WHERE id = $1
	`, id, string(status), adminID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListReports возвращает жалобы в заданном статусе (новые сверху).
func (s *Storage) ListReports(ctx context.Context, status models.ReportStatus, limit int32) ([]models.Report, error) {
	const op = "storage.postgres.ListReports"

	rows, err := s.db.Query(ctx, `
	SELECT `+reportColumns+` FROM reports
	WHERE status = $1
	ORDER BY created_at DESC
	LIMIT $2
	`, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		report, scanErr := scanReport(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		reports = append(reports, *report)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return reports, nil
}

// CreateFeedback сохраняет отзыв пользователя.
// uuid.Nil в NewsID хранится как NULL.
func (s *Storage) CreateFeedback(ctx context.Context, feedback models.Feedback) error {
	const op = "storage.postgres.CreateFeedback"

	var newsID any
	if feedback.NewsID != uuid.Nil {
		newsID = feedback.NewsID
	}

	if _, err := s.db.Exec(ctx, `
	INSERT INTO feedback (user_id, news_id, rating, comment)
	VALUES ($1, $2, $3, $4)
	`, feedback.UserID, newsID, feedback.Rating, feedback.Comment); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
