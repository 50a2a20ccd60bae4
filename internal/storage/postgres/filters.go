package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

const customFeedColumns = `
id, user_id, feed_name, COALESCE(filters, 'null'::jsonb), is_current, created_at, updated_at
`

func scanCustomFeed(row pgx.Row) (*models.CustomFeed, error) {
	var feed models.CustomFeed

	if err := row.Scan(
		&feed.ID,
		&feed.UserID,
		&feed.Name,
		&feed.Criteria,
		&feed.IsCurrent,
		&feed.CreatedAt,
		&feed.UpdatedAt,
	); err != nil {
		return nil, err
	}

	feed.CreatedAt = feed.CreatedAt.UTC()
	feed.UpdatedAt = feed.UpdatedAt.UTC()

	return &feed, nil
}

// AddBlock добавляет правило исключения.
// Повторная вставка того же правила — no-op (ON CONFLICT DO NOTHING).
func (s *Storage) AddBlock(ctx context.Context, block models.Block) error {
	const op = "storage.postgres.AddBlock"

	if _, err := s.db.Exec(ctx, `
	INSERT INTO blocks (user_id, type, value)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, type, value) DO NOTHING
	`, block.UserID, string(block.Type), block.Value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveBlock удаляет правило; отсутствие записи — не ошибка.
func (s *Storage) RemoveBlock(ctx context.Context, userID int64, t models.BlockType, value string) error {
	const op = "storage.postgres.RemoveBlock"

	if _, err := s.db.Exec(ctx,
		`DELETE FROM blocks WHERE user_id = $1 AND type = $2 AND value = $3`,
		userID, string(t), value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BlocksByUser возвращает все блокировки пользователя.
func (s *Storage) BlocksByUser(ctx context.Context, userID int64) ([]models.Block, error) {
	const op = "storage.postgres.BlocksByUser"

	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, type, value, created_at
	FROM blocks WHERE user_id = $1
	ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var blocks []models.Block
	for rows.Next() {
		var block models.Block
		var blockType string

		if err := rows.Scan(&block.ID, &block.UserID, &blockType, &block.Value, &block.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		block.Type = models.BlockType(blockType)
		block.CreatedAt = block.CreatedAt.UTC()
		blocks = append(blocks, block)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return blocks, nil
}

// SaveCustomFeed создаёт или обновляет фид по ключу (user_id, feed_name).
func (s *Storage) SaveCustomFeed(ctx context.Context, feed models.CustomFeed) (*models.CustomFeed, error) {
	const op = "storage.postgres.SaveCustomFeed"

	row := s.db.QueryRow(ctx, `
	INSERT INTO custom_feeds (user_id, feed_name, filters)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, feed_name) DO UPDATE SET
		filters    = EXCLUDED.filters,
		updated_at = now()
	RETURNING `+customFeedColumns,
		feed.UserID, feed.Name, feed.Criteria)

	result, err := scanCustomFeed(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DeleteCustomFeed удаляет фид; отсутствие записи — не ошибка.
func (s *Storage) DeleteCustomFeed(ctx context.Context, userID int64, name string) error {
	const op = "storage.postgres.DeleteCustomFeed"

	if _, err := s.db.Exec(ctx,
		`DELETE FROM custom_feeds WHERE user_id = $1 AND feed_name = $2`,
		userID, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CustomFeedsByUser возвращает все фиды пользователя.
func (s *Storage) CustomFeedsByUser(ctx context.Context, userID int64) ([]models.CustomFeed, error) {
	const op = "storage.postgres.CustomFeedsByUser"

	rows, err := s.db.Query(ctx,
		`SELECT `+customFeedColumns+` FROM custom_feeds WHERE user_id = $1 ORDER BY feed_name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var feeds []models.CustomFeed
	for rows.Next() {
		feed, scanErr := scanCustomFeed(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		feeds = append(feeds, *feed)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return feeds, nil
}

// SetCurrentFeed делает фид активной линзой персонализации.
// Снятие отметки с прочих фидов и установка новой — одна транзакция.
func (s *Storage) SetCurrentFeed(ctx context.Context, userID int64, name string) error {
	const op = "storage.postgres.SetCurrentFeed"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE custom_feeds SET is_current = FALSE WHERE user_id = $1 AND is_current`,
		userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := tx.Exec(ctx, `
	UPDATE custom_feeds SET is_current = TRUE, updated_at = now()
	WHERE user_id = $1 AND feed_name = $2
	`, userID, name)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CurrentFeed возвращает активный фид; storage.ErrNotFound, если не выбран.
func (s *Storage) CurrentFeed(ctx context.Context, userID int64) (*models.CustomFeed, error) {
	const op = "storage.postgres.CurrentFeed"

	row := s.db.QueryRow(ctx,
		`SELECT `+customFeedColumns+` FROM custom_feeds WHERE user_id = $1 AND is_current`,
		userID)

	feed, err := scanCustomFeed(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feed, nil
}
