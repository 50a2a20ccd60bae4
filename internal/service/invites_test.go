package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/mocks"
)

// Файл unit-тестов для реферальной подсистемы (invites.go).
//
// Покрываем ключевую бизнес-логику:
//  - CreateInvite: UUID-код, срок действия из конфига;
//  - RedeemInvite:
//      * happy-path;
//      * самопогашение -> ErrInvalidArgument;
//      * неизвестный код -> ErrNotFound;
//      * повторное погашение -> ErrInviteAlreadyUsed;
//      * истёкший код -> ErrInviteExpired.

func TestCreateInvite_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invite models.Invitation) (*models.Invitation, error) {
			_, parseErr := uuid.Parse(invite.Code)
			require.NoError(t, parseErr, "invite code must be a UUID")
			require.EqualValues(t, 5, invite.InviterID)
			require.False(t, invite.ExpiresAt.IsZero(), "TTL from config must set expires_at")
			return &invite, nil
		})

	svc := newSvcForTest(t, mockSt)

	invite, err := svc.CreateInvite(context.Background(), 5)
	require.NoError(t, err)
	require.NotEmpty(t, invite.Code)
}

func TestCreateInvite_InvalidInviter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	_, err := svc.CreateInvite(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRedeemInvite_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	code := uuid.NewString()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().InviteByCode(gomock.Any(), code).
		Return(&models.Invitation{Code: code, InviterID: 5, Status: models.InvitePending}, nil)
	mockSt.EXPECT().ClaimInvite(gomock.Any(), code, int64(9), gomock.Any()).
		Return(&models.Invitation{Code: code, InviterID: 5, InviteeID: 9, Status: models.InviteAccepted}, nil)

	svc := newSvcForTest(t, mockSt)

	claimed, err := svc.RedeemInvite(context.Background(), code, 9)
	require.NoError(t, err)
	require.Equal(t, models.InviteAccepted, claimed.Status)
	require.EqualValues(t, 9, claimed.InviteeID)
}

func TestRedeemInvite_SelfRedeem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	code := uuid.NewString()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().InviteByCode(gomock.Any(), code).
		Return(&models.Invitation{Code: code, InviterID: 9, Status: models.InvitePending}, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.RedeemInvite(context.Background(), code, 9)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRedeemInvite_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().InviteByCode(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.RedeemInvite(context.Background(), "missing", 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedeemInvite_AlreadyUsed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	code := uuid.NewString()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().InviteByCode(gomock.Any(), code).
		Return(&models.Invitation{Code: code, InviterID: 5, Status: models.InvitePending}, nil)
	mockSt.EXPECT().ClaimInvite(gomock.Any(), code, int64(9), gomock.Any()).
		Return(nil, storage.ErrConflict)
	// Проигравший различает причину повторным чтением.
	mockSt.EXPECT().InviteByCode(gomock.Any(), code).
		Return(&models.Invitation{Code: code, InviterID: 5, InviteeID: 8, Status: models.InviteAccepted}, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.RedeemInvite(context.Background(), code, 9)
	require.ErrorIs(t, err, ErrInviteAlreadyUsed)
}

func TestRedeemInvite_Expired(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	code := uuid.NewString()
	expired := &models.Invitation{
		Code:      code,
		InviterID: 5,
		Status:    models.InvitePending,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().InviteByCode(gomock.Any(), code).Return(expired, nil)
	mockSt.EXPECT().ClaimInvite(gomock.Any(), code, int64(9), gomock.Any()).
		Return(nil, storage.ErrConflict)
	mockSt.EXPECT().InviteByCode(gomock.Any(), code).Return(expired, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.RedeemInvite(context.Background(), code, 9)
	require.ErrorIs(t, err, ErrInviteExpired)
}
