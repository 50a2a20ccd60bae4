package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

// OverviewStats собирает агрегированные счётчики системы.
func (s *Storage) OverviewStats(ctx context.Context, now time.Time) (*models.OverviewStats, error) {
	const op = "storage.postgres.OverviewStats"

	var stats models.OverviewStats

	if err := s.db.QueryRow(ctx, `
	SELECT
		(SELECT count(*) FROM users),
		(SELECT count(*) FROM news),
		(SELECT count(*) FROM users WHERE last_active > $1)
	`, now.UTC().Add(-7*24*time.Hour)).Scan(
		&stats.TotalUsers, &stats.TotalNews, &stats.ActiveUsers,
	); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT moderation_status, count(*) FROM news GROUP BY moderation_status`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	stats.NewsByStatus = make(map[models.ModerationStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		stats.NewsByStatus[models.ModerationStatus(status)] = count
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return &stats, nil
}

// ListUsers возвращает страницу пользователей и общее количество.
// Административная выдача; offset-пагинация здесь осознанна.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int32) ([]models.User, int64, error) {
	const op = "storage.postgres.ListUsers"

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, `
	SELECT `+userColumns+` FROM users
	ORDER BY created_at DESC, id
	LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		users = append(users, *user)
	}

	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return users, total, nil
}
