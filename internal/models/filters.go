package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// BlockType — измерение пользовательского негативного фильтра.
type BlockType string

const (
	BlockKeyword BlockType = "keyword"
	BlockSource  BlockType = "source"
	BlockTopic   BlockType = "topic"
	BlockUser    BlockType = "user"
)

// Valid сообщает, известен ли тип блокировки.
func (t BlockType) Valid() bool {
	switch t {
	case BlockKeyword, BlockSource, BlockTopic, BlockUser:
		return true
	}

	return false
}

// Block — персональное правило исключения.
// Уникально по (user_id, type, value); применяется как предикат исключения.
type Block struct {
	ID        int64
	UserID    int64
	Type      BlockType
	Value     string
	CreatedAt time.Time
}

// CustomFeed — именованный сохранённый фильтр пользователя.
//
// Criteria хранится как сырой JSON (schema-on-read): старые/частичные
// записи не должны ломать выдачу — битые критерии деградируют
// до «без ограничений» на уровне сервиса.
type CustomFeed struct {
	ID     int64
	UserID int64
	Name   string
	// Criteria — сырое содержимое колонки filters; парсится через ParseFeedCriteria.
	Criteria json.RawMessage
	// IsCurrent — выбран ли фид активной линзой персонализации.
	IsCurrent bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FeedCriteria — разобранные критерии кастомного фида.
// Закрытый набор вариантов: allow-list источников и/или тем.
// Пустые критерии означают отсутствие ограничения.
type FeedCriteria struct {
	SourceIDs []int64  `json:"source_ids,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

// Empty сообщает, накладывают ли критерии хоть какое-то ограничение.
func (c FeedCriteria) Empty() bool {
	return len(c.SourceIDs) == 0 && len(c.Topics) == 0
}

// ParseFeedCriteria разбирает сырое содержимое filters.
//
// Толерантность к форматам:
//   - пустое значение / JSON null / "{}" -> пустые критерии без ошибки;
//   - неизвестные ключи игнорируются;
//   - синтаксически битый JSON -> ошибка (вызывающая сторона деградирует
//     до «без ограничений», а не падает).
func ParseFeedCriteria(raw json.RawMessage) (FeedCriteria, error) {
	var criteria FeedCriteria

	if len(raw) == 0 {
		return criteria, nil
	}

	if err := json.Unmarshal(raw, &criteria); err != nil {
		return FeedCriteria{}, fmt.Errorf("parse feed criteria: %w", err)
	}

	return criteria, nil
}
