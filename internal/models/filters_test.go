package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты разбора критериев кастомного фида (schema-on-read).
//
// Проверяем:
//  - пустое значение / null / "{}" -> пустые критерии без ошибки;
//  - полный и частичный набор ключей;
//  - неизвестные ключи игнорируются;
//  - синтаксически битый JSON -> ошибка (деградация решается выше).

func TestParseFeedCriteria_EmptyVariants(t *testing.T) {
	t.Parallel()

	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`{}`)} {
		criteria, err := ParseFeedCriteria(raw)
		require.NoError(t, err)
		require.True(t, criteria.Empty())
	}
}

func TestParseFeedCriteria_FullAndPartial(t *testing.T) {
	t.Parallel()

	criteria, err := ParseFeedCriteria(json.RawMessage(`{"source_ids":[1,2,3],"topics":["економіка","технології"]}`))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, criteria.SourceIDs)
	require.Equal(t, []string{"економіка", "технології"}, criteria.Topics)
	require.False(t, criteria.Empty())

	// Частичная запись старого формата — только источники.
	partial, err := ParseFeedCriteria(json.RawMessage(`{"source_ids":[7]}`))
	require.NoError(t, err)
	require.Equal(t, []int64{7}, partial.SourceIDs)
	require.Empty(t, partial.Topics)
}

func TestParseFeedCriteria_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	criteria, err := ParseFeedCriteria(json.RawMessage(`{"source_ids":[5],"legacy_flag":true,"langs":["uk"]}`))
	require.NoError(t, err)
	require.Equal(t, []int64{5}, criteria.SourceIDs)
}

func TestParseFeedCriteria_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseFeedCriteria(json.RawMessage(`{"source_ids":[1,`))
	require.Error(t, err)

	// Неожиданная форма значения — тоже ошибка разбора.
	_, err = ParseFeedCriteria(json.RawMessage(`{"source_ids":"all"}`))
	require.Error(t, err)
}

func TestBlockType_Valid(t *testing.T) {
	t.Parallel()

	for _, bt := range []BlockType{BlockKeyword, BlockSource, BlockTopic, BlockUser} {
		require.True(t, bt.Valid())
	}
	require.False(t, BlockType("channel").Valid())
}
