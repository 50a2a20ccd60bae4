package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

const userColumns = `
id, username, first_name, last_name, language, is_admin, safe_mode,
auto_notifications, digest_frequency, view_mode, inviter_id, level,
created_at, last_active, last_digest_at
`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var frequency, viewMode string
	var lastDigestAt *time.Time

	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Language,
		&user.IsAdmin,
		&user.SafeMode,
		&user.AutoNotifications,
		&frequency,
		&viewMode,
		&user.InviterID,
		&user.Level,
		&user.CreatedAt,
		&user.LastActive,
		&lastDigestAt,
	); err != nil {
		return nil, err
	}

	user.DigestFrequency = models.DigestFrequency(frequency)
	user.ViewMode = models.ViewMode(viewMode)
	user.CreatedAt = user.CreatedAt.UTC()
	user.LastActive = user.LastActive.UTC()
	if lastDigestAt != nil {
		user.LastDigestAt = lastDigestAt.UTC()
	}

	return &user, nil
}

// UpsertUser создаёт пользователя при первом контакте либо обновляет
// профильные поля и last_active при повторном. Предпочтения (язык, режимы,
// периодичность дайджеста) при повторном контакте не перетираются.
func (s *Storage) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.UpsertUser"

	row := s.db.QueryRow(ctx, `
	INSERT INTO users (id, username, first_name, last_name, language)
	VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'uk'))
	ON CONFLICT (id) DO UPDATE SET
		username    = EXCLUDED.username,
		first_name  = EXCLUDED.first_name,
		last_name   = EXCLUDED.last_name,
		last_active = now()
	RETURNING `+userColumns,
		user.ID, user.Username, user.FirstName, user.LastName, user.Language)

	result, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UserByID возвращает пользователя по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateUser применяет частичное обновление предпочтений:
// SET собирается динамически только из непустых полей.
func (s *Storage) UpdateUser(ctx context.Context, id int64, update storage.UserUpdate) (*models.User, error) {
	const op = "storage.postgres.UpdateUser"

	sets := []string{"last_active = now()"}
	args := []any{id}

	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Language != nil {
		add("language", *update.Language)
	}
	if update.SafeMode != nil {
		add("safe_mode", *update.SafeMode)
	}
	if update.AutoNotifications != nil {
		add("auto_notifications", *update.AutoNotifications)
	}
	if update.DigestFrequency != nil {
		add("digest_frequency", string(*update.DigestFrequency))
	}
	if update.ViewMode != nil {
		add("view_mode", string(*update.ViewMode))
	}

	query := fmt.Sprintf(`
	UPDATE users SET %s WHERE id = $1
	RETURNING %s`, strings.Join(sets, ", "), userColumns)

	user, err := scanUser(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UsersDueForDigest возвращает пользователей с включёнными уведомлениями,
// у которых с момента последнего дайджеста прошёл полный период их частоты.
// Ни разу не получавшие дайджест (last_digest_at IS NULL) считаются должниками сразу.
func (s *Storage) UsersDueForDigest(ctx context.Context, now time.Time) ([]int64, error) {
	const op = "storage.postgres.UsersDueForDigest"

	weeklyCutoff := now.UTC().Add(-models.DigestWeekly.Period())
	dailyCutoff := now.UTC().Add(-models.DigestDaily.Period())

	rows, err := s.db.Query(ctx, `
	SELECT id FROM users
	WHERE auto_notifications
	  AND (last_digest_at IS NULL
	       OR (digest_frequency = 'weekly' AND last_digest_at <= $1)
	       OR (digest_frequency <> 'weekly' AND last_digest_at <= $2))
	ORDER BY id
	`, weeklyCutoff, dailyCutoff)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		ids = append(ids, id)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return ids, nil
}

// MarkDigestSent фиксирует момент отправки дайджеста.
func (s *Storage) MarkDigestSent(ctx context.Context, id int64, sentAt time.Time) error {
	const op = "storage.postgres.MarkDigestSent"

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET last_digest_at = $2 WHERE id = $1`, id, sentAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
