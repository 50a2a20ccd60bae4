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

const inviteColumns = `
id, code, inviter_id, invitee_id, status, created_at, expires_at, used_at
`

func scanInvite(row pgx.Row) (*models.Invitation, error) {
	var invite models.Invitation
	var status string
	var expiresAt, usedAt *time.Time

	if err := row.Scan(
		&invite.ID,
		&invite.Code,
		&invite.InviterID,
		&invite.InviteeID,
		&status,
		&invite.CreatedAt,
		&expiresAt,
		&usedAt,
	); err != nil {
		return nil, err
	}

	invite.Status = models.InviteStatus(status)
	invite.CreatedAt = invite.CreatedAt.UTC()
	if expiresAt != nil {
		invite.ExpiresAt = expiresAt.UTC()
	}
	if usedAt != nil {
		invite.UsedAt = usedAt.UTC()
	}

	return &invite, nil
}

// CreateInvite сохраняет приглашение.
// Коллизия кода — storage.ErrAlreadyExists.
func (s *Storage) CreateInvite(ctx context.Context, invite models.Invitation) (*models.Invitation, error) {
	const op = "storage.postgres.CreateInvite"

	row := s.db.QueryRow(ctx, `
	INSERT INTO invitations (code, inviter_id, expires_at)
	VALUES ($1, $2, $3)
	RETURNING `+inviteColumns,
		invite.Code, invite.InviterID, nullTime(invite.ExpiresAt))

	result, err := scanInvite(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// InviteByCode возвращает приглашение; storage.ErrNotFound, если кода нет.
func (s *Storage) InviteByCode(ctx context.Context, code string) (*models.Invitation, error) {
	const op = "storage.postgres.InviteByCode"

	row := s.db.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM invitations WHERE code = $1`, code)

	invite, err := scanInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invite, nil
}

// ClaimInvite — атомарное одноразовое погашение приглашения.
//
// UPDATE с предикатом pending-и-не-истекло служит точкой взаимоисключения:
// из двух конкурентных погашений ровно одно увидит затронутую строку.
// Привязка inviter_id к новому пользователю выполняется в той же транзакции.
func (s *Storage) ClaimInvite(ctx context.Context, code string, inviteeID int64, now time.Time) (*models.Invitation, error) {
	const op = "storage.postgres.ClaimInvite"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
	UPDATE invitations
	SET status = $3, invitee_id = $2, used_at = $4
	WHERE code = $1
	  AND status = $5
	  AND (expires_at IS NULL OR expires_at > $4)
	RETURNING `+inviteColumns,
		code, inviteeID, string(models.InviteAccepted), now.UTC(), string(models.InvitePending))

	invite, err := scanInvite(row)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// Строка не затронута: либо кода нет, либо приглашение непогашаемо.
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM invitations WHERE code = $1)`, code,
		).Scan(&exists); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if !exists {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET inviter_id = $2 WHERE id = $1 AND inviter_id = 0`,
		inviteeID, invite.InviterID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invite, nil
}
