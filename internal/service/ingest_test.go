package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/morozovaa/go-feed-engine/internal/config"
	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/mocks"
)

// Файл unit-тестов для шлюза приёма (ingest.go).
//
// Покрываем ключевую бизнес-логику:
//  - NormalizeURL: канонизация схемы/хоста, отбрасывание трекинговых
//    параметров и фрагмента, стабильность результата;
//  - Ingest:
//      * валидация входа (пустой заголовок, битый URL, нулевое время);
//      * отклонение публикаций «из будущего» за пределами допуска;
//      * отклонение для заблокированного источника;
//      * premoderation bypass для доверенного источника;
//      * Duplicate при проигрыше гонки вставки;
//      * маппинг storage.ErrNotFound -> service.ErrNotFound.

// newSvcForTest — фабрика Service с контролируемым cfg и мок-хранилищем.
func newSvcForTest(t *testing.T, st storage.Storage) *Service {
	t.Helper()
	cfg := config.Config{
		Retention: config.RetentionConfig{
			TTL:           120 * time.Hour,
			SweepInterval: time.Hour,
		},
		Ingest: config.IngestConfig{
			ClockSkew: 5 * time.Minute,
		},
		Invites: config.InvitesConfig{
			TTL: 24 * time.Hour,
		},
		LimitsConfig: config.LimitsConfig{
			Default: 12,
			Max:     100,
		},
	}

	return New(st, cfg)
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "scheme_and_host_lowercased",
			in:   "HTTPS://Example.COM/News/1",
			want: "https://example.com/News/1",
		},
		{
			name: "tracking_params_stripped",
			in:   "https://example.com/a?utm_source=tg&utm_campaign=x&fbclid=123&id=7",
			want: "https://example.com/a?id=7",
		},
		{
			name: "fragment_dropped",
			in:   "https://example.com/a#section",
			want: "https://example.com/a",
		},
		{
			name: "default_port_stripped",
			in:   "https://example.com:443/a",
			want: "https://example.com/a",
		},
		{
			name: "trailing_slash_trimmed",
			in:   "https://example.com/a/",
			want: "https://example.com/a",
		},
		{
			name: "query_sorted",
			in:   "https://example.com/a?b=2&a=1",
			want: "https://example.com/a?a=1&b=2",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeURL(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			// Нормализация идемпотентна.
			again, err := NormalizeURL(got)
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}
}

func TestNormalizeURL_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "ftp://example.com/a", "not a url", "https://"} {
		_, err := NormalizeURL(in)
		require.Error(t, err, "input %q", in)
	}
}

func validItem() RawItem {
	return RawItem{
		Title:       "headline",
		Content:     "body",
		SourceURL:   "https://example.com/news/1",
		Lang:        "uk",
		PublishedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func TestIngest_InvalidArgument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	missingTitle := validItem()
	missingTitle.Title = ""
	_, err := svc.Ingest(context.Background(), 1, missingTitle)
	require.ErrorIs(t, err, ErrInvalidArgument)

	badURL := validItem()
	badURL.SourceURL = "ftp://example.com/a"
	_, err = svc.Ingest(context.Background(), 1, badURL)
	require.ErrorIs(t, err, ErrInvalidArgument)

	zeroTime := validItem()
	zeroTime.PublishedAt = time.Time{}
	_, err = svc.Ingest(context.Background(), 1, zeroTime)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIngest_FuturePublishedAt_Rejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl))

	item := validItem()
	item.PublishedAt = time.Now().UTC().Add(time.Hour)

	res, err := svc.Ingest(context.Background(), 1, item)
	require.NoError(t, err)
	require.Equal(t, IngestRejected, res.Outcome)
	require.NotEmpty(t, res.Reason)
}

func TestIngest_SourceNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SourceByID(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Ingest(context.Background(), 42, validItem())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIngest_BlockedSource_Rejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SourceByID(gomock.Any(), int64(1)).
		Return(&models.Source{ID: 1, Status: models.SourceBlocked}, nil)

	svc := newSvcForTest(t, mockSt)

	res, err := svc.Ingest(context.Background(), 1, validItem())
	require.NoError(t, err)
	require.Equal(t, IngestRejected, res.Outcome)
}

func TestIngest_TrustedSource_Approved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newsID := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SourceByID(gomock.Any(), int64(1)).
		Return(&models.Source{ID: 1, Status: models.SourceActive, Trusted: true}, nil)
	mockSt.EXPECT().InsertNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, news models.News) (uuid.UUID, bool, error) {
			require.Equal(t, models.ModerationApproved, news.ModerationStatus)
			require.Equal(t, "https://example.com/news/1", news.SourceURL)
			require.False(t, news.ExpiresAt.IsZero())
			return newsID, true, nil
		})

	svc := newSvcForTest(t, mockSt)

	res, err := svc.Ingest(context.Background(), 1, validItem())
	require.NoError(t, err)
	require.Equal(t, IngestAccepted, res.Outcome)
	require.Equal(t, newsID, res.NewsID)
}

func TestIngest_UntrustedSource_PendingReview(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SourceByID(gomock.Any(), int64(1)).
		Return(&models.Source{ID: 1, Status: models.SourceActive}, nil)
	mockSt.EXPECT().InsertNews(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, news models.News) (uuid.UUID, bool, error) {
			require.Equal(t, models.ModerationPending, news.ModerationStatus)
			return uuid.New(), true, nil
		})

	svc := newSvcForTest(t, mockSt)

	res, err := svc.Ingest(context.Background(), 1, validItem())
	require.NoError(t, err)
	require.Equal(t, IngestAccepted, res.Outcome)
}

func TestIngest_Duplicate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := uuid.New()
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SourceByID(gomock.Any(), int64(1)).
		Return(&models.Source{ID: 1, Status: models.SourceActive}, nil)
	mockSt.EXPECT().InsertNews(gomock.Any(), gomock.Any()).Return(existing, false, nil)

	svc := newSvcForTest(t, mockSt)

	res, err := svc.Ingest(context.Background(), 1, validItem())
	require.NoError(t, err)
	require.Equal(t, IngestDuplicate, res.Outcome)
	require.Equal(t, existing, res.NewsID)
}

func TestIngest_StorageError_Passthrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SourceByID(gomock.Any(), int64(1)).
		Return(&models.Source{ID: 1, Status: models.SourceActive}, nil)
	mockSt.EXPECT().InsertNews(gomock.Any(), gomock.Any()).Return(uuid.Nil, false, boom)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.Ingest(context.Background(), 1, validItem())
	require.ErrorIs(t, err, boom)
}
