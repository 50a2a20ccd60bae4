package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// CreateInvite выпускает одноразовый реферальный код.
// Код строится на UUIDv4 (122 бита энтропии): коллизии практически исключены,
// угадывание кода перебором нереализуемо. Срок действия берётся из конфига;
// нулевой TTL означает бессрочные коды.
func (s *Service) CreateInvite(ctx context.Context, inviterID int64) (*models.Invitation, error) {
	const op = "service.invites.CreateInvite"

	if inviterID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	invite := models.Invitation{
		Code:      uuid.NewString(),
		InviterID: inviterID,
	}
	if s.cfg.Invites.TTL > 0 {
		invite.ExpiresAt = time.Now().UTC().Add(s.cfg.Invites.TTL)
	}

	created, err := s.storage.CreateInvite(ctx, invite)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("invite_created",
		slog.String("op", op),
		slog.Int64("inviter_id", inviterID),
	)

	return created, nil
}

// RedeemInvite погашает реферальный код при регистрации нового пользователя.
//
// Погашение одноразовое и атомарное: из двух конкурентных попыток ровно одна
// выигрывает, пригласивший привязывается к новому пользователю в той же
// транзакции. Проигравший различает причину повторным чтением приглашения.
//
// Ошибки:
// - ErrInvalidArgument — пустой код, некорректный пользователь, самопогашение;
// - ErrNotFound — кода не существует;
// - ErrInviteExpired — срок действия кода истёк;
// - ErrInviteAlreadyUsed — код уже погашен.
func (s *Service) RedeemInvite(ctx context.Context, code string, newUserID int64) (*models.Invitation, error) {
	const op = "service.invites.RedeemInvite"

	lg := log.From(ctx)
	lg.Info("redeem_invite_request",
		slog.String("op", op),
		slog.Int64("user_id", newUserID),
	)

	if code == "" || newUserID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := time.Now().UTC()

	// InviterID неизменяем, поэтому проверка самопогашения
	// безопасна до атомарного захвата.
	existing, err := s.storage.InviteByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing.InviterID == newUserID {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var claimed *models.Invitation
	err = withRetry(ctx, 3, func() error {
		var err error
		claimed, err = s.storage.ClaimInvite(ctx, code, newUserID, now)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			return nil, s.classifyUnclaimable(ctx, op, code, now)
		default:
			lg.Error("redeem_invite_storage_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	lg.Info("redeem_invite_ok",
		slog.String("op", op),
		slog.Int64("inviter_id", claimed.InviterID),
		slog.Int64("invitee_id", claimed.InviteeID),
	)

	return claimed, nil
}

// classifyUnclaimable различает причину непогашаемости кода повторным чтением.
func (s *Service) classifyUnclaimable(ctx context.Context, op, code string, now time.Time) error {
	invite, err := s.storage.InviteByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if invite.Status == models.InvitePending && !invite.ExpiresAt.IsZero() && !invite.ExpiresAt.After(now) {
		return fmt.Errorf("%s: %w", op, ErrInviteExpired)
	}
	if invite.Status == models.InviteExpired {
		return fmt.Errorf("%s: %w", op, ErrInviteExpired)
	}

	return fmt.Errorf("%s: %w", op, ErrInviteAlreadyUsed)
}

// InviteByCode возвращает приглашение по коду.
func (s *Service) InviteByCode(ctx context.Context, code string) (*models.Invitation, error) {
	const op = "service.invites.InviteByCode"

	invite, err := s.storage.InviteByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return invite, nil
}
