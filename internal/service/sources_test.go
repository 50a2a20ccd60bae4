package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/mocks"
)

// Файл unit-тестов для реестра источников (sources.go).
//
// Покрываем ключевую бизнес-логику:
//  - CreateSource: нормализация ссылки, умолчания type/status,
//    self-service двигает счётчик вклада;
//  - маппинг ErrAlreadyExists;
//  - SetSourceStatus: закрытый набор статусов.

func TestCreateSource_NormalizesLinkAndDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().CreateSource(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, source models.Source) (*models.Source, error) {
			require.Equal(t, "https://example.com/feed", source.Link, "link must be normalized")
			require.Equal(t, models.SourceTypeWeb, source.Type, "empty type defaults to web")
			require.Equal(t, models.SourceActive, source.Status, "empty status defaults to active")
			source.ID = 11
			return &source, nil
		})

	svc := newSvcForTest(t, mockSt)

	created, err := svc.CreateSource(context.Background(), models.Source{
		Name: "Example",
		Link: "HTTPS://Example.com/feed?utm_source=x#top",
	})
	require.NoError(t, err)
	require.EqualValues(t, 11, created.ID)
}

func TestCreateSource_SelfService_MovesContributionCounter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := &models.UserStats{UserID: 7, SourcesAddedCount: 1}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().CreateSource(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, source models.Source) (*models.Source, error) {
			source.ID = 12
			return &source, nil
		})
	mockSt.EXPECT().IncrementSourcesAdded(gomock.Any(), int64(7)).Return(stats, nil)
	mockSt.EXPECT().AddBadge(gomock.Any(), int64(7), "contributor_1").Return(true, nil)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.CreateSource(context.Background(), models.Source{
		Name:      "Community",
		Link:      "https://community.example/rss",
		Type:      models.SourceTypeRSS,
		CreatedBy: 7,
	})
	require.NoError(t, err)
}

func TestCreateSource_InvalidArgument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	_, err := svc.CreateSource(context.Background(), models.Source{Link: "https://a.example"})
	require.ErrorIs(t, err, ErrInvalidArgument, "empty name")

	_, err = svc.CreateSource(context.Background(), models.Source{Name: "A", Link: "ftp://a.example"})
	require.ErrorIs(t, err, ErrInvalidArgument, "non-http link")

	_, err = svc.CreateSource(context.Background(), models.Source{
		Name: "A", Link: "https://a.example", Type: models.SourceType("carrier-pigeon"),
	})
	require.ErrorIs(t, err, ErrInvalidArgument, "unknown type")
}

func TestCreateSource_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().CreateSource(gomock.Any(), gomock.Any()).Return(nil, storage.ErrAlreadyExists)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.CreateSource(context.Background(), models.Source{Name: "A", Link: "https://a.example"})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSetSourceStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SetSourceStatus(gomock.Any(), int64(3), models.SourceBlocked).Return(nil)

	svc := newSvcForTest(t, mockSt)

	require.NoError(t, svc.SetSourceStatus(context.Background(), 3, models.SourceBlocked))

	err := svc.SetSourceStatus(context.Background(), 3, models.SourceStatus("paused"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetSourceStatus_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SetSourceStatus(gomock.Any(), int64(404), models.SourceInactive).
		Return(storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	err := svc.SetSourceStatus(context.Background(), 404, models.SourceInactive)
	require.ErrorIs(t, err, ErrNotFound)
}
