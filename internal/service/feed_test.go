package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/mocks"
)

// Файл unit-тестов для персональной ленты (feed.go).
//
// Покрываем композицию storage.FeedQuery:
//  - нормализация лимита (limit<=0 -> default; limit>max -> max);
//  - разбор блокировок по измерениям, пропуск нечисловых значений;
//  - safe_mode добавляет чувствительные темы к исключениям;
//  - критерии активного кастомного фида как allow-list;
//  - битые критерии деградируют до «без ограничений»;
//  - отсутствие активного фида — не ошибка;
//  - маппинги ErrNotFound / ErrInvalidCursor.

const feedUserID = int64(77)

func expectUser(mockSt *mocks.MockStorage, safeMode bool) {
	mockSt.EXPECT().UserByID(gomock.Any(), feedUserID).
		Return(&models.User{ID: feedUserID, Language: "uk", SafeMode: safeMode}, nil)
}

func TestComputeFeed_UserNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().UserByID(gomock.Any(), feedUserID).Return(nil, storage.ErrNotFound)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestComputeFeed_BuildsQueryFromBlocks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	expectUser(mockSt, false)
	mockSt.EXPECT().BlocksByUser(gomock.Any(), feedUserID).Return([]models.Block{
		{Type: models.BlockKeyword, Value: "casino"},
		{Type: models.BlockTopic, Value: "politics"},
		{Type: models.BlockSource, Value: "3"},
		{Type: models.BlockUser, Value: "12"},
		// Нечисловое значение блокировки источника пропускается с warn-логом.
		{Type: models.BlockSource, Value: "not-a-number"},
	}, nil)
	mockSt.EXPECT().CurrentFeed(gomock.Any(), feedUserID).Return(nil, storage.ErrNotFound)
	mockSt.EXPECT().FeedPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q storage.FeedQuery) (*models.Page, error) {
			require.Equal(t, []string{"casino"}, q.BlockedKeywords)
			require.Equal(t, []string{"politics"}, q.BlockedTopics)
			require.Equal(t, []int64{3}, q.BlockedSourceIDs)
			require.Equal(t, []int64{12}, q.BlockedUserIDs)
			require.Empty(t, q.AllowSourceIDs)
			require.Empty(t, q.AllowTopics)
			require.Equal(t, "uk", q.Lang)
			require.EqualValues(t, 12, q.Limit, "limit=0 must use the configured default")
			return &models.Page{}, nil
		})

	svc := newSvcForTest(t, mockSt)

	_, err := svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{})
	require.NoError(t, err)
}

func TestComputeFeed_SafeMode_AddsSensitiveTopics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	expectUser(mockSt, true)
	mockSt.EXPECT().BlocksByUser(gomock.Any(), feedUserID).Return(nil, nil)
	mockSt.EXPECT().CurrentFeed(gomock.Any(), feedUserID).Return(nil, storage.ErrNotFound)
	mockSt.EXPECT().FeedPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q storage.FeedQuery) (*models.Page, error) {
			require.Subset(t, q.BlockedTopics, sensitiveTopics)
			return &models.Page{}, nil
		})

	svc := newSvcForTest(t, mockSt)

	_, err := svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{})
	require.NoError(t, err)
}

func TestComputeFeed_CustomFeedCriteria_AllowList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	criteria, err := json.Marshal(models.FeedCriteria{SourceIDs: []int64{1, 2}, Topics: []string{"tech"}})
	require.NoError(t, err)

	mockSt := mocks.NewMockStorage(ctrl)
	expectUser(mockSt, false)
	mockSt.EXPECT().BlocksByUser(gomock.Any(), feedUserID).Return(nil, nil)
	mockSt.EXPECT().CurrentFeed(gomock.Any(), feedUserID).
		Return(&models.CustomFeed{Name: "tech", Criteria: criteria}, nil)
	mockSt.EXPECT().FeedPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q storage.FeedQuery) (*models.Page, error) {
			require.Equal(t, []int64{1, 2}, q.AllowSourceIDs)
			require.Equal(t, []string{"tech"}, q.AllowTopics)
			return &models.Page{}, nil
		})

	svc := newSvcForTest(t, mockSt)

	_, err = svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{})
	require.NoError(t, err)
}

func TestComputeFeed_MalformedCriteria_Degrades(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	expectUser(mockSt, false)
	mockSt.EXPECT().BlocksByUser(gomock.Any(), feedUserID).Return(nil, nil)
	mockSt.EXPECT().CurrentFeed(gomock.Any(), feedUserID).
		Return(&models.CustomFeed{Name: "broken", Criteria: json.RawMessage(`{"source_ids": [1,`)}, nil)
	mockSt.EXPECT().FeedPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q storage.FeedQuery) (*models.Page, error) {
			require.Empty(t, q.AllowSourceIDs, "malformed criteria must not restrict the feed")
			require.Empty(t, q.AllowTopics)
			return &models.Page{}, nil
		})

	svc := newSvcForTest(t, mockSt)

	_, err := svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{})
	require.NoError(t, err)
}

func TestComputeFeed_LimitClamp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	expectUser(mockSt, false)
	mockSt.EXPECT().BlocksByUser(gomock.Any(), feedUserID).Return(nil, nil)
	mockSt.EXPECT().CurrentFeed(gomock.Any(), feedUserID).Return(nil, storage.ErrNotFound)
	mockSt.EXPECT().FeedPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q storage.FeedQuery) (*models.Page, error) {
			require.EqualValues(t, 100, q.Limit, "limit above max must clamp to max")
			return &models.Page{}, nil
		})

	svc := newSvcForTest(t, mockSt)

	_, err := svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{Limit: 10000})
	require.NoError(t, err)
}

func TestComputeFeed_InvalidCursor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	expectUser(mockSt, false)
	mockSt.EXPECT().BlocksByUser(gomock.Any(), feedUserID).Return(nil, nil)
	mockSt.EXPECT().CurrentFeed(gomock.Any(), feedUserID).Return(nil, storage.ErrNotFound)
	mockSt.EXPECT().FeedPage(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidCursor)

	svc := newSvcForTest(t, mockSt)

	_, err := svc.ComputeFeed(context.Background(), feedUserID, models.ListOptions{PageToken: "broken"})
	require.ErrorIs(t, err, ErrInvalidCursor)
}
