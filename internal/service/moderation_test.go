package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/mocks"
)

// Файл unit-тестов для модерации (moderation.go).
//
// Покрываем ключевую бизнес-логику:
//  - Moderate:
//      * отказ на недопустимое решение (pending_review как decision);
//      * happy-path с возвратом обновлённой сущности;
//      * повтор того же решения -> ErrAlreadyDecided;
//      * другое решение по решённой новости -> ErrInvalidStateTransition;
//      * маппинг storage.ErrNotFound -> service.ErrNotFound;
//  - ApplyAIAnnotations: прокидка и маппинг NotFound.

func TestModerate_InvalidDecision(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	_, err := svc.Moderate(context.Background(), uuid.New(), models.ModerationPending, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Moderate(context.Background(), uuid.New(), models.ModerationStatus("garbage"), 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestModerate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	want := &models.News{ID: id, ModerationStatus: models.ModerationApproved}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().Moderate(gomock.Any(), id, models.ModerationApproved, int64(7)).
		Return(models.ModerationApproved, true, nil)
	mockSt.EXPECT().NewsByID(gomock.Any(), id).Return(want, nil)

	svc := newSvcForTest(t, mockSt)

	got, err := svc.Moderate(context.Background(), id, models.ModerationApproved, 7)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestModerate_AlreadyDecided(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().Moderate(gomock.Any(), id, models.ModerationApproved, int64(7)).
		Return(models.ModerationApproved, false, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Moderate(context.Background(), id, models.ModerationApproved, 7)
	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestModerate_InvalidStateTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().Moderate(gomock.Any(), id, models.ModerationDeclined, int64(7)).
		Return(models.ModerationApproved, false, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Moderate(context.Background(), id, models.ModerationDeclined, 7)
	require.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestModerate_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().Moderate(gomock.Any(), id, models.ModerationApproved, int64(7)).
		Return(models.ModerationStatus(""), false, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Moderate(context.Background(), id, models.ModerationApproved, 7)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestApplyAIAnnotations(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().ApplyAIAnnotations(gomock.Any(), id, "summary", []string{"tech"}).Return(nil)

	svc := newSvcForTest(t, mockSt)
	require.NoError(t, svc.ApplyAIAnnotations(context.Background(), id, "summary", []string{"tech"}))
}

func TestApplyAIAnnotations_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().ApplyAIAnnotations(gomock.Any(), id, gomock.Any(), gomock.Any()).
		Return(storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)
	err := svc.ApplyAIAnnotations(context.Background(), id, "s", nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestModerate_StorageError_Passthrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	id := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().Moderate(gomock.Any(), id, models.ModerationApproved, int64(7)).
		Return(models.ModerationStatus(""), false, boom)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Moderate(context.Background(), id, models.ModerationApproved, 7)
	require.ErrorIs(t, err, boom)
}
