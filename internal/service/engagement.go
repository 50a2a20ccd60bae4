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

// levelThresholds — статическая таблица уровней по числу прочитанных новостей.
// Порядок по возрастанию порога.
var levelThresholds = []struct {
	Level int32
	Reads int64
}{
	{Level: 2, Reads: 10},
	{Level: 3, Reads: 50},
	{Level: 4, Reads: 200},
	{Level: 5, Reads: 1000},
}

// badgeThreshold — порог начисления бейджа по одному счётчику.
type badgeThreshold struct {
	Code  string
	Count int64
}

// Статические таблицы бейджей по измерениям вовлечённости.
var (
	readBadges = []badgeThreshold{
		{Code: "reader_10", Count: 10},
		{Code: "reader_100", Count: 100},
		{Code: "reader_500", Count: 500},
	}
	aiBadges = []badgeThreshold{
		{Code: "ai_explorer_10", Count: 10},
		{Code: "ai_adept_100", Count: 100},
	}
	sourceBadges = []badgeThreshold{
		{Code: "contributor_1", Count: 1},
		{Code: "contributor_5", Count: 5},
	}
	reportBadges = []badgeThreshold{
		{Code: "guardian_1", Count: 1},
		{Code: "guardian_10", Count: 10},
	}
)

// levelFor возвращает уровень, соответствующий числу прочитанных новостей.
func levelFor(reads int64) int32 {
	level := int32(1)
	for _, t := range levelThresholds {
		if reads >= t.Reads {
			level = t.Level
		}
	}

	return level
}

// grantAchievements пересчитывает уровень и добирает свежезаработанные бейджи
// после мутации счётчиков. Ошибки начисления не прерывают основную операцию:
// пороги статичны, недобранный бейдж будет начислен при следующей мутации.
func (s *Service) grantAchievements(ctx context.Context, stats *models.UserStats) {
	const op = "service.engagement.grantAchievements"

	lg := log.From(ctx)

	if level := levelFor(stats.NewsReadCount); level > 1 {
		if err := s.storage.RaiseLevel(ctx, stats.UserID, level); err != nil {
			lg.Warn("raise_level_error",
				slog.String("op", op),
				slog.Int64("user_id", stats.UserID),
				slog.String("err", err.Error()),
			)
		}
	}

	grant := func(table []badgeThreshold, count int64) {
		for _, b := range table {
			if count < b.Count {
				break
			}

			inserted, err := s.storage.AddBadge(ctx, stats.UserID, b.Code)
			if err != nil {
				lg.Warn("add_badge_error",
					slog.String("op", op),
					slog.String("code", b.Code),
					slog.String("err", err.Error()),
				)
				continue
			}

			if inserted {
				lg.Info("badge_earned",
					slog.String("op", op),
					slog.Int64("user_id", stats.UserID),
					slog.String("code", b.Code),
				)
			}
		}
	}

	grant(readBadges, stats.NewsReadCount)
	grant(aiBadges, stats.AIRequestCount)
	grant(sourceBadges, stats.SourcesAddedCount)
	grant(reportBadges, stats.ReportsSentCount)
}

// RecordView идемпотентно фиксирует просмотр новости и пересчитывает
// достижения. Повторный просмотр той же новости счётчики не двигает.
func (s *Service) RecordView(ctx context.Context, userID int64, newsID uuid.UUID) (*models.UserStats, error) {
	const op = "service.engagement.RecordView"

	if userID <= 0 || newsID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	inserted, stats, err := s.storage.RecordView(ctx, userID, newsID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if inserted {
		s.grantAchievements(ctx, stats)
	}

	return stats, nil
}

// RecordBookmark идемпотентно сохраняет закладку.
func (s *Service) RecordBookmark(ctx context.Context, userID int64, newsID uuid.UUID) error {
	const op = "service.engagement.RecordBookmark"

	if userID <= 0 || newsID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.RecordBookmark(ctx, userID, newsID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveBookmark удаляет закладку; отсутствие записи — не ошибка.
func (s *Service) RemoveBookmark(ctx context.Context, userID int64, newsID uuid.UUID) error {
	const op = "service.engagement.RemoveBookmark"

	if err := s.storage.RemoveBookmark(ctx, userID, newsID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Bookmarks возвращает закладки пользователя (новые сверху).
func (s *Service) Bookmarks(ctx context.Context, userID int64, limit int32) ([]models.News, error) {
	const op = "service.engagement.Bookmarks"

	items, err := s.storage.BookmarksByUser(ctx, userID, s.limit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// RecordAIUsage фиксирует обращение пользователя к AI-функциям
// и пересчитывает достижения.
func (s *Service) RecordAIUsage(ctx context.Context, userID int64) (*models.UserStats, error) {
	const op = "service.engagement.RecordAIUsage"

	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	stats, err := s.storage.IncrementAIUsage(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.grantAchievements(ctx, stats)

	return stats, nil
}

// RecordAIFeedback фиксирует оценку AI-вывода (+1/-1).
// Счётчики оценок независимы от модерации контента.
func (s *Service) RecordAIFeedback(ctx context.Context, userID int64, positive bool) (*models.UserStats, error) {
	const op = "service.engagement.RecordAIFeedback"

	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	stats, err := s.storage.IncrementAIFeedback(ctx, userID, positive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// RecordFeedback сохраняет свободный отзыв пользователя,
// опционально привязанный к новости.
func (s *Service) RecordFeedback(ctx context.Context, feedback models.Feedback) error {
	const op = "service.engagement.RecordFeedback"

	if feedback.UserID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.CreateFeedback(ctx, feedback); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UserStats возвращает счётчики вовлечённости пользователя.
// Отсутствие записи означает нулевую активность, не ошибку.
func (s *Service) UserStats(ctx context.Context, userID int64) (*models.UserStats, error) {
	const op = "service.engagement.UserStats"

	stats, err := s.storage.StatsByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &models.UserStats{UserID: userID}, nil
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// Badges возвращает бейджи пользователя.
func (s *Service) Badges(ctx context.Context, userID int64) ([]models.Badge, error) {
	const op = "service.engagement.Badges"

	badges, err := s.storage.BadgesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return badges, nil
}
