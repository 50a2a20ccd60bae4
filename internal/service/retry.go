package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE транзакционных конфликтов, безопасных для повтора.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// isRetryableStorageErr сообщает, стоит ли повторить операцию хранилища.
func isRetryableStorageErr(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

// withRetry выполняет fn с ограниченным числом повторов при транзакционных
// конфликтах. Применяется на конкурентных мутациях (модерация, погашение
// приглашений); все прочие ошибки возвращаются сразу.
func withRetry(ctx context.Context, attempts int, fn func() error) error {
	var err error

	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil || !isRetryableStorageErr(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * 25 * time.Millisecond):
		}
	}

	return err
}
