package service

import (
	"context"
	"fmt"
	"time"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

// Overview возвращает агрегированные счётчики системы
// для административной панели.
func (s *Service) Overview(ctx context.Context) (*models.OverviewStats, error) {
	const op = "service.admin.Overview"

	stats, err := s.storage.OverviewStats(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// ListUsers возвращает страницу пользователей административной выдачи
// и общее количество. Offset-пагинация здесь осознанна: выдача небольшая
// и не требует стабильности курсора.
func (s *Service) ListUsers(ctx context.Context, limit, offset int32) ([]models.User, int64, error) {
	const op = "service.admin.ListUsers"

	if offset < 0 {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	users, total, err := s.storage.ListUsers(ctx, s.limit(limit), offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return users, total, nil
}
