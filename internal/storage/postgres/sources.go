package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

const sourceColumns = `
id, name, link, type, status, trusted, parse_interval_seconds,
published_count, created_by, created_at
`

func scanSource(row pgx.Row) (*models.Source, error) {
	var source models.Source
	var sourceType, status string
	var parseIntervalSeconds int64

	if err := row.Scan(
		&source.ID,
		&source.Name,
		&source.Link,
		&sourceType,
		&status,
		&source.Trusted,
		&parseIntervalSeconds,
		&source.PublishedCount,
		&source.CreatedBy,
		&source.CreatedAt,
	); err != nil {
		return nil, err
	}

	source.Type = models.SourceType(sourceType)
	source.Status = models.SourceStatus(status)
	source.ParseInterval = time.Duration(parseIntervalSeconds) * time.Second
	source.CreatedAt = source.CreatedAt.UTC()

	return &source, nil
}

// CreateSource регистрирует источник.
// Конфликт уникальности имени или ссылки — storage.ErrAlreadyExists.
func (s *Storage) CreateSource(ctx context.Context, source models.Source) (*models.Source, error) {
	const op = "storage.postgres.CreateSource"

	row := s.db.QueryRow(ctx, `
	INSERT INTO sources (name, link, type, status, trusted, parse_interval_seconds, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING `+sourceColumns,
		source.Name, source.Link, string(source.Type), string(source.Status),
		source.Trusted, int64(source.ParseInterval/time.Second), source.CreatedBy)

	result, err := scanSource(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SourceByID возвращает источник; storage.ErrNotFound, если записи нет.
func (s *Storage) SourceByID(ctx context.Context, id int64) (*models.Source, error) {
	const op = "storage.postgres.SourceByID"

	row := s.db.QueryRow(ctx, `SELECT `+sourceColumns+` FROM sources WHERE id = $1`, id)

	source, err := scanSource(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return source, nil
}

// SetSourceStatus мутирует операционный статус источника.
func (s *Storage) SetSourceStatus(ctx context.Context, id int64, status models.SourceStatus) error {
	const op = "storage.postgres.SetSourceStatus"

	tag, err := s.db.Exec(ctx,
		`UPDATE sources SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListSources возвращает все источники, отсортированные по имени.
func (s *Storage) ListSources(ctx context.Context) ([]models.Source, error) {
	const op = "storage.postgres.ListSources"

	rows, err := s.db.Query(ctx, `SELECT `+sourceColumns+` FROM sources ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sources []models.Source
	for rows.Next() {
		source, scanErr := scanSource(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		sources = append(sources, *source)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return sources, nil
}
