package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// sensitiveTopics — фиксированный набор тем, исключаемых в safe_mode.
var sensitiveTopics = []string{
	"violence",
	"war",
	"crime",
	"accidents",
	"adult",
}

// ComputeFeed собирает персональную ленту пользователя.
//
// Композиция запроса (выполняется хранилищем одной выборкой):
//  1. базовый предикат видимости (approved и не истекло);
//  2. исключения из блокировок пользователя (источник/тема/слово/автор);
//  3. allow-list активного кастомного фида (пустые критерии — без ограничения);
//  4. safe_mode — фиксированный набор чувствительных тем;
//  5. сортировка published_at DESC, id ASC; keyset-пагинация.
//
// Деградация никогда не блокирует выдачу: битые критерии фида и
// нечисловые значения блокировок пропускаются с warn-логом.
//
// Ошибки:
// - ErrNotFound — пользователь не зарегистрирован;
// - ErrInvalidCursor — битый page_token;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ComputeFeed(ctx context.Context, userID int64, opts models.ListOptions) (*models.Page, error) {
	const op = "service.feed.ComputeFeed"

	lg := log.From(ctx)
	lg.Info("compute_feed_request",
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Int("limit", int(opts.Limit)),
		slog.Bool("has_page_token", opts.PageToken != ""),
	)

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := storage.FeedQuery{
		Now:       time.Now().UTC(),
		Lang:      user.Language,
		Limit:     s.limit(opts.Limit),
		PageToken: opts.PageToken,
	}

	blocks, err := s.storage.BlocksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, block := range blocks {
		switch block.Type {
		case models.BlockKeyword:
			query.BlockedKeywords = append(query.BlockedKeywords, block.Value)
		case models.BlockTopic:
			query.BlockedTopics = append(query.BlockedTopics, block.Value)
		case models.BlockSource:
			id, convErr := strconv.ParseInt(block.Value, 10, 64)
			if convErr != nil {
				lg.Warn("compute_feed_bad_block_value",
					slog.String("op", op),
					slog.String("type", string(block.Type)),
					slog.String("value", block.Value),
				)
				continue
			}
			query.BlockedSourceIDs = append(query.BlockedSourceIDs, id)
		case models.BlockUser:
			id, convErr := strconv.ParseInt(block.Value, 10, 64)
			if convErr != nil {
				lg.Warn("compute_feed_bad_block_value",
					slog.String("op", op),
					slog.String("type", string(block.Type)),
					slog.String("value", block.Value),
				)
				continue
			}
			query.BlockedUserIDs = append(query.BlockedUserIDs, id)
		}
	}

	if user.SafeMode {
		query.BlockedTopics = append(query.BlockedTopics, sensitiveTopics...)
	}

	current, err := s.storage.CurrentFeed(ctx, userID)
	switch {
	case err == nil:
		criteria, parseErr := models.ParseFeedCriteria(current.Criteria)
		if parseErr != nil {
			// Битые сохранённые критерии деградируют до «без ограничений».
			lg.Warn("compute_feed_malformed_criteria",
				slog.String("op", op),
				slog.String("feed_name", current.Name),
				slog.String("err", parseErr.Error()),
			)
		} else {
			query.AllowSourceIDs = criteria.SourceIDs
			query.AllowTopics = criteria.Topics
		}
	case errors.Is(err, storage.ErrNotFound):
		// Активный фид не выбран.
	default:
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page, err := s.storage.FeedPage(ctx, query)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("compute_feed_invalid_cursor", slog.String("op", op))

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("compute_feed_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("compute_feed_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Bool("has_next_page", page.NextPageToken != ""),
	)

	return page, nil
}
