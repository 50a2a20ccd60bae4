package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
	"github.com/morozovaa/go-feed-engine/pkg/log"
)

// IngestOutcome — итог прохождения новости через шлюз приёма.
type IngestOutcome string

const (
	IngestAccepted  IngestOutcome = "accepted"
	IngestDuplicate IngestOutcome = "duplicate"
	IngestRejected  IngestOutcome = "rejected"
)

// IngestResult — типизированный результат приёма.
// Duplicate и Rejected — штатные исходы, не ошибки.
type IngestResult struct {
	Outcome IngestOutcome
	// NewsID — идентификатор принятой либо ранее существующей новости.
	NewsID uuid.UUID
	// Reason — причина отклонения (только для Rejected).
	Reason string
}

// RawItem — сырой материал от внешнего сборщика или пользователя.
type RawItem struct {
	Title       string
	Content     string
	SourceURL   string
	ImageURL    string
	Lang        string
	PublishedAt time.Time
	// CreatedBy — автор пользовательского контента (0 — системный сборщик).
	CreatedBy int64
}

// trackingParams — точные имена трекинговых параметров, удаляемых
// при нормализации; параметры с префиксом utm_ удаляются отдельно.
var trackingParams = map[string]struct{}{
	"fbclid": {},
	"gclid":  {},
	"yclid":  {},
	"igshid": {},
	"ref":    {},
}

// NormalizeURL приводит ссылку к канонической форме — глобальному ключу
// дедупликации: scheme/host в нижнем регистре, дефолтные порты и фрагмент
// отброшены, трекинговые параметры удалены, остаток query отсортирован.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}

	host := strings.ToLower(u.Host)
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}

	u.Scheme = scheme
	u.Host = host
	u.Fragment = ""

	query := u.Query()
	for key := range query {
		lower := strings.ToLower(key)
		if _, tracking := trackingParams[lower]; tracking || strings.HasPrefix(lower, "utm_") {
			query.Del(key)
		}
	}
	u.RawQuery = query.Encode()

	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String(), nil
}

// Ingest проводит сырой материал через шлюз приёма.
//
// Последовательность: валидация -> нормализация ссылки -> проверка источника ->
// атомарная вставка по ключу дедупликации. «Первый писатель выигрывает»:
// при конфликте существующая запись не мутируется, возвращается Duplicate.
// Новость доверенного источника минует премодерацию.
//
// Ошибки:
// - ErrInvalidArgument — пустой заголовок/ссылка, некорректный URL,
//   нулевое время публикации;
// - ErrNotFound — источник не зарегистрирован;
// - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) Ingest(ctx context.Context, sourceID int64, item RawItem) (*IngestResult, error) {
	const op = "service.ingest.Ingest"

	lg := log.From(ctx)
	lg.Info("ingest_request",
		slog.String("op", op),
		slog.Int64("source_id", sourceID),
		slog.String("url", item.SourceURL),
	)

	if sourceID <= 0 || item.Title == "" || item.SourceURL == "" || item.PublishedAt.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	canonical, err := NormalizeURL(item.SourceURL)
	if err != nil {
		lg.Warn("ingest_bad_url",
			slog.String("op", op),
			slog.String("url", item.SourceURL),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := time.Now().UTC()
	if item.PublishedAt.After(now.Add(s.cfg.Ingest.ClockSkew)) {
		lg.Warn("ingest_future_published_at",
			slog.String("op", op),
			slog.Time("published_at", item.PublishedAt),
		)

		return &IngestResult{Outcome: IngestRejected, Reason: "published_at is in the future"}, nil
	}

	source, err := s.storage.SourceByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if source.Status == models.SourceBlocked {
		lg.Warn("ingest_source_blocked",
			slog.String("op", op),
			slog.Int64("source_id", sourceID),
		)

		return &IngestResult{Outcome: IngestRejected, Reason: "source is blocked"}, nil
	}

	status := models.ModerationPending
	if source.Trusted {
		status = models.ModerationApproved
	}

	news := models.News{
		SourceID:         sourceID,
		Title:            item.Title,
		Content:          item.Content,
		SourceURL:        canonical,
		ImageURL:         item.ImageURL,
		Lang:             item.Lang,
		PublishedAt:      item.PublishedAt.UTC(),
		FetchedAt:        now,
		ModerationStatus: status,
		ExpiresAt:        now.Add(s.cfg.Retention.TTL),
		CreatedBy:        item.CreatedBy,
	}
	if news.Lang == "" {
		news.Lang = "uk"
	}

	id, inserted, err := s.storage.InsertNews(ctx, news)
	if err != nil {
		lg.Error("ingest_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !inserted {
		lg.Info("ingest_duplicate",
			slog.String("op", op),
			slog.String("news_id", id.String()),
		)

		return &IngestResult{Outcome: IngestDuplicate, NewsID: id}, nil
	}

	lg.Info("ingest_accepted",
		slog.String("op", op),
		slog.String("news_id", id.String()),
		slog.String("status", string(status)),
	)

	return &IngestResult{Outcome: IngestAccepted, NewsID: id}, nil
}
