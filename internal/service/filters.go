package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

// AddBlock добавляет персональное правило исключения.
// Повтор того же правила — no-op.
//
// Ошибки:
// - ErrInvalidArgument — неизвестный тип, пустое значение либо
//   нечисловое значение для блокировок source/user.
func (s *Service) AddBlock(ctx context.Context, block models.Block) error {
	const op = "service.filters.AddBlock"

	if !block.Type.Valid() || block.Value == "" || block.UserID <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if block.Type == models.BlockSource || block.Type == models.BlockUser {
		if _, err := strconv.ParseInt(block.Value, 10, 64); err != nil {
			return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	if err := s.storage.AddBlock(ctx, block); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveBlock удаляет правило исключения; отсутствие записи — не ошибка.
func (s *Service) RemoveBlock(ctx context.Context, userID int64, t models.BlockType, value string) error {
	const op = "service.filters.RemoveBlock"

	if err := s.storage.RemoveBlock(ctx, userID, t, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Blocks возвращает все блокировки пользователя.
func (s *Service) Blocks(ctx context.Context, userID int64) ([]models.Block, error) {
	const op = "service.filters.Blocks"

	blocks, err := s.storage.BlocksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blocks, nil
}

// SaveCustomFeed создаёт или обновляет именованный фильтр пользователя.
// Критерии сериализуются из закрытого набора полей FeedCriteria,
// произвольный JSON от клиента в хранилище не попадает.
func (s *Service) SaveCustomFeed(ctx context.Context, userID int64, name string, criteria models.FeedCriteria) (*models.CustomFeed, error) {
	const op = "service.filters.SaveCustomFeed"

	if userID <= 0 || name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	raw, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	feed, err := s.storage.SaveCustomFeed(ctx, models.CustomFeed{
		UserID:   userID,
		Name:     name,
		Criteria: raw,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feed, nil
}

// DeleteCustomFeed удаляет фид; отсутствие записи — не ошибка.
func (s *Service) DeleteCustomFeed(ctx context.Context, userID int64, name string) error {
	const op = "service.filters.DeleteCustomFeed"

	if err := s.storage.DeleteCustomFeed(ctx, userID, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CustomFeeds возвращает все фиды пользователя.
func (s *Service) CustomFeeds(ctx context.Context, userID int64) ([]models.CustomFeed, error) {
	const op = "service.filters.CustomFeeds"

	feeds, err := s.storage.CustomFeedsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feeds, nil
}

// SelectCustomFeed делает фид активной линзой персонализации.
//
// Ошибки:
// - ErrNotFound — фида с таким именем нет.
func (s *Service) SelectCustomFeed(ctx context.Context, userID int64, name string) error {
	const op = "service.filters.SelectCustomFeed"

	if err := s.storage.SetCurrentFeed(ctx, userID, name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
