package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/mocks"
)

// Файл unit-тестов для жизненного цикла пользователя (users.go)
// и границы дайджестов (digest.go).

func TestEnsureUser_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (*models.User, error) {
			require.EqualValues(t, 5, user.ID)
			return &user, nil
		})

	svc := newSvcForTest(t, mockSt)

	user, err := svc.EnsureUser(context.Background(), models.User{ID: 5, Username: "bob"})
	require.NoError(t, err)
	require.Equal(t, "bob", user.Username)
}

func TestEnsureUser_InvalidID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	_, err := svc.EnsureUser(context.Background(), models.User{ID: 0})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdatePreferences_ValidatesClosedSets(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	badFreq := models.DigestFrequency("hourly")
	_, err := svc.UpdatePreferences(context.Background(), 5, storage.UserUpdate{DigestFrequency: &badFreq})
	require.ErrorIs(t, err, ErrInvalidArgument)

	badMode := models.ViewMode("tiles")
	_, err = svc.UpdatePreferences(context.Background(), 5, storage.UserUpdate{ViewMode: &badMode})
	require.ErrorIs(t, err, ErrInvalidArgument)

	emptyLang := ""
	_, err = svc.UpdatePreferences(context.Background(), 5, storage.UserUpdate{Language: &emptyLang})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpdatePreferences_PartialUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	safeMode := true
	want := &models.User{ID: 5, SafeMode: true, Language: "uk"}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, update storage.UserUpdate) (*models.User, error) {
			require.NotNil(t, update.SafeMode)
			require.True(t, *update.SafeMode)
			require.Nil(t, update.Language, "absent fields must stay untouched")
			require.Nil(t, update.DigestFrequency)
			return want, nil
		})

	svc := newSvcForTest(t, mockSt)

	user, err := svc.UpdatePreferences(context.Background(), 5, storage.UserUpdate{SafeMode: &safeMode})
	require.NoError(t, err)
	require.Equal(t, want, user)
}

func TestUpdatePreferences_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	safeMode := true
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.UpdatePreferences(context.Background(), 5, storage.UserUpdate{SafeMode: &safeMode})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUsersDueForDigest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().UsersDueForDigest(gomock.Any(), now).Return([]int64{1, 2, 3}, nil)

	svc := newSvcForTest(t, mockSt)

	ids, err := svc.UsersDueForDigest(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, ids)
}

func TestMarkDigestSent_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sentAt := time.Now().UTC()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().MarkDigestSent(gomock.Any(), int64(9), sentAt).Return(storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	err := svc.MarkDigestSent(context.Background(), 9, sentAt)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitReport_MovesCounterAndGrantsBadge(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := &models.UserStats{UserID: 5, ReportsSentCount: 1}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.Report) (*models.Report, error) {
			report.ID = 21
			report.Status = models.ReportPending
			return &report, nil
		})
	mockSt.EXPECT().IncrementReportsSent(gomock.Any(), int64(5)).Return(stats, nil)
	mockSt.EXPECT().AddBadge(gomock.Any(), int64(5), "guardian_1").Return(true, nil)

	svc := newSvcForTest(t, mockSt)

	created, err := svc.SubmitReport(context.Background(), models.Report{
		UserID:     5,
		TargetType: models.ReportTargetNews,
		TargetID:   "some-news-uuid",
		Reason:     "spam",
	})
	require.NoError(t, err)
	require.EqualValues(t, 21, created.ID)
	require.Equal(t, models.ReportPending, created.Status)
}

func TestSubmitReport_InvalidArgument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	_, err := svc.SubmitReport(context.Background(), models.Report{
		UserID: 5, TargetType: models.ReportTargetType("meme"), TargetID: "x",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.SubmitReport(context.Background(), models.Report{
		UserID: 5, TargetType: models.ReportTargetNews,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolveReport_WorkflowStatusesOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().ResolveReport(gomock.Any(), int64(21), models.ReportResolved, int64(1)).Return(nil)

	svc := newSvcForTest(t, mockSt)

	require.NoError(t, svc.ResolveReport(context.Background(), 21, models.ReportResolved, 1))

	err := svc.ResolveReport(context.Background(), 21, models.ReportPending, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
