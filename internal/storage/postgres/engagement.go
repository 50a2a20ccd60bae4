package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

const statsColumns = `
user_id, news_read_count, ai_request_count, sources_added_count,
reports_sent_count, ai_positive_count, ai_negative_count, last_active
`

func scanStats(row pgx.Row) (*models.UserStats, error) {
	var stats models.UserStats

	if err := row.Scan(
		&stats.UserID,
		&stats.NewsReadCount,
		&stats.AIRequestCount,
		&stats.SourcesAddedCount,
		&stats.ReportsSentCount,
		&stats.AIPositiveCount,
		&stats.AINegativeCount,
		&stats.LastActive,
	); err != nil {
		return nil, err
	}

	stats.LastActive = stats.LastActive.UTC()

	return &stats, nil
}

// incrementStat — атомарный upsert-инкремент одного счётчика user_stats.
// Колонка подставляется из фиксированного списка вызывающих методов,
// пользовательский ввод сюда не попадает.
func (s *Storage) incrementStat(ctx context.Context, op string, userID int64, column string) (*models.UserStats, error) {
	query := fmt.Sprintf(`
	INSERT INTO user_stats (user_id, %[1]s)
	VALUES ($1, 1)
	ON CONFLICT (user_id) DO UPDATE SET
		%[1]s       = user_stats.%[1]s + 1,
		last_active = now()
	RETURNING %[2]s`, column, statsColumns)

	stats, err := scanStats(s.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// RecordView идемпотентно фиксирует просмотр новости.
//
// Первая вставка пары (user, news) и инкремент news_read_count — одна
// транзакция: счётчик не может разъехаться с журналом просмотров.
// Повторный просмотр не меняет ничего и возвращает текущие счётчики.
func (s *Storage) RecordView(ctx context.Context, userID int64, newsID uuid.UUID) (bool, *models.UserStats, error) {
	const op = "storage.postgres.RecordView"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
	INSERT INTO user_news_views (user_id, news_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, news_id) DO NOTHING
	`, userID, newsID)
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}

	inserted := tag.RowsAffected() > 0

	var stats *models.UserStats
	if inserted {
		stats, err = scanStats(tx.QueryRow(ctx, `
		INSERT INTO user_stats (user_id, news_read_count)
		VALUES ($1, 1)
		ON CONFLICT (user_id) DO UPDATE SET
			news_read_count = user_stats.news_read_count + 1,
			last_active     = now()
		RETURNING `+statsColumns, userID))
	} else {
		stats, err = scanStats(tx.QueryRow(ctx,
			`SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID))
		if errors.Is(err, pgx.ErrNoRows) {
			stats, err = &models.UserStats{UserID: userID}, nil
		}
	}
	if err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, nil, fmt.Errorf("%s: %w", op, err)
	}

	return inserted, stats, nil
}

// RecordBookmark идемпотентно сохраняет закладку.
func (s *Storage) RecordBookmark(ctx context.Context, userID int64, newsID uuid.UUID) (bool, error) {
	const op = "storage.postgres.RecordBookmark"

	tag, err := s.db.Exec(ctx, `
	INSERT INTO bookmarks (user_id, news_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, news_id) DO NOTHING
	`, userID, newsID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// RemoveBookmark удаляет закладку; отсутствие записи — не ошибка.
func (s *Storage) RemoveBookmark(ctx context.Context, userID int64, newsID uuid.UUID) error {
	const op = "storage.postgres.RemoveBookmark"

	if _, err := s.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND news_id = $2`,
		userID, newsID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BookmarksByUser возвращает новости из закладок пользователя (новые сверху).
func (s *Storage) BookmarksByUser(ctx context.Context, userID int64, limit int32) ([]models.News, error) {
	const op = "storage.postgres.BookmarksByUser"

	rows, err := s.db.Query(ctx, `
	SELECT n.id, n.source_id, n.title, n.content, n.source_url, n.image_url, n.lang,
		n.published_at, n.fetched_at, n.ai_summary, n.ai_topics, n.moderation_status,
		n.expires_at, n.archived_at, n.created_by
	FROM bookmarks b
	JOIN news n ON n.id = b.news_id
	WHERE b.user_id = $1
	ORDER BY b.created_at DESC
	LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		news, scanErr := scanNews(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *news)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, nil
}

// IncrementAIUsage атомарно инкрементирует счётчик AI-запросов.
func (s *Storage) IncrementAIUsage(ctx context.Context, userID int64) (*models.UserStats, error) {
	return s.incrementStat(ctx, "storage.postgres.IncrementAIUsage", userID, "ai_request_count")
}

// IncrementAIFeedback атомарно инкрементирует счётчик оценок AI.
func (s *Storage) IncrementAIFeedback(ctx context.Context, userID int64, positive bool) (*models.UserStats, error) {
	if positive {
		return s.incrementStat(ctx, "storage.postgres.IncrementAIFeedback", userID, "ai_positive_count")
	}

	return s.incrementStat(ctx, "storage.postgres.IncrementAIFeedback", userID, "ai_negative_count")
}

// IncrementSourcesAdded атомарно инкрементирует счётчик добавленных источников.
func (s *Storage) IncrementSourcesAdded(ctx context.Context, userID int64) (*models.UserStats, error) {
	return s.incrementStat(ctx, "storage.postgres.IncrementSourcesAdded", userID, "sources_added_count")
}

// IncrementReportsSent атомарно инкрементирует счётчик отправленных жалоб.
func (s *Storage) IncrementReportsSent(ctx context.Context, userID int64) (*models.UserStats, error) {
	return s.incrementStat(ctx, "storage.postgres.IncrementReportsSent", userID, "reports_sent_count")
}

// StatsByUser возвращает счётчики; storage.ErrNotFound, если записи нет.
func (s *Storage) StatsByUser(ctx context.Context, userID int64) (*models.UserStats, error) {
	const op = "storage.postgres.StatsByUser"

	stats, err := scanStats(s.db.QueryRow(ctx,
		`SELECT `+statsColumns+` FROM user_stats WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// AddBadge начисляет бейдж ровно один раз; повтор — inserted=false.
func (s *Storage) AddBadge(ctx context.Context, userID int64, code string) (bool, error) {
	const op = "storage.postgres.AddBadge"

	tag, err := s.db.Exec(ctx, `
	INSERT INTO user_badges (user_id, code)
	VALUES ($1, $2)
	ON CONFLICT (user_id, code) DO NOTHING
	`, userID, code)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// BadgesByUser возвращает бейджи пользователя в порядке получения.
func (s *Storage) BadgesByUser(ctx context.Context, userID int64) ([]models.Badge, error) {
	const op = "storage.postgres.BadgesByUser"

	rows, err := s.db.Query(ctx, `
	SELECT user_id, code, earned_at FROM user_badges
	WHERE user_id = $1
	ORDER BY earned_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var badge models.Badge
		if err := rows.Scan(&badge.UserID, &badge.Code, &badge.EarnedAt); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		badge.EarnedAt = badge.EarnedAt.UTC()
		badges = append(badges, badge)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return badges, nil
}

// RaiseLevel монотонно поднимает уровень: GREATEST исключает откат
// при гонке двух пересчётов.
func (s *Storage) RaiseLevel(ctx context.Context, userID int64, level int32) error {
	const op = "storage.postgres.RaiseLevel"

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET level = GREATEST(level, $2) WHERE id = $1`, userID, level)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
