package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

// newsColumns — единый список колонок таблицы news,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const newsColumns = `
id, source_id, title, content, source_url, image_url, lang, published_at, fetched_at,
ai_summary, ai_topics, moderation_status, expires_at, archived_at, created_by
`

// qualifiedNewsColumns возвращает newsColumns с префиксом алиаса таблицы
// у каждой колонки. Подстановка по подстроке здесь не годится:
// "id" входит в "source_id".
func qualifiedNewsColumns(alias string) string {
	cols := strings.Split(strings.TrimSpace(newsColumns), ",")
	for i, col := range cols {
		cols[i] = alias + "." + strings.TrimSpace(col)
	}

	return strings.Join(cols, ", ")
}

// scanNews сканирует одну строку новости в доменную модель
// с нормализацией времени в UTC и NULL-колонок в нулевые значения.
func scanNews(row pgx.Row) (*models.News, error) {
	var news models.News
	var status string
	var expiresAt, archivedAt *time.Time

	if err := row.Scan(
		&news.ID,
		&news.SourceID,
		&news.Title,
		&news.Content,
		&news.SourceURL,
		&news.ImageURL,
		&news.Lang,
		&news.PublishedAt,
		&news.FetchedAt,
		&news.AISummary,
		&news.AITopics,
		&status,
		&expiresAt,
		&archivedAt,
		&news.CreatedBy,
	); err != nil {
		return nil, err
	}

	news.ModerationStatus = models.ModerationStatus(status)
	news.PublishedAt = news.PublishedAt.UTC()
	news.FetchedAt = news.FetchedAt.UTC()
	if expiresAt != nil {
		news.ExpiresAt = expiresAt.UTC()
	}
	if archivedAt != nil {
		news.ArchivedAt = archivedAt.UTC()
	}

	return &news, nil
}

// nullTime конвертирует нулевое время в NULL для записи в БД.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t.UTC()
}

// InsertNews — атомарная вставка по ключу дедупликации source_url.
//
// Политика «первый писатель выигрывает»: ON CONFLICT DO NOTHING,
// существующая строка не мутируется. Инкремент published_count источника
// выполняется в той же транзакции и только при фактической вставке.
// Проигравший гонку получает id существующей строки и inserted=false.
func (s *Storage) InsertNews(ctx context.Context, news models.News) (uuid.UUID, bool, error) {
	const op = "storage.postgres.InsertNews"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
	INSERT INTO news (source_id, title, content, source_url, image_url, lang,
		published_at, fetched_at, ai_summary, ai_topics, moderation_status, expires_at, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (source_url) DO NOTHING
	RETURNING id
	`, news.SourceID, news.Title, news.Content, news.SourceURL, news.ImageURL, news.Lang,
		news.PublishedAt.UTC(), news.FetchedAt.UTC(), news.AISummary, news.AITopics,
		string(news.ModerationStatus), nullTime(news.ExpiresAt), news.CreatedBy,
	).Scan(&id)

	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
		}

		// Дубликат: отдаём id строки-победителя отдельным запросом —
		// свежий снапшот гарантированно видит закоммиченного победителя гонки.
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
		}

		var existing uuid.UUID
		if err := s.db.QueryRow(ctx,
			`SELECT id FROM news WHERE source_url = $1`, news.SourceURL,
		).Scan(&existing); err != nil {
			return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
		}

		return existing, false, nil
	}

	if _, err := tx.Exec(ctx,
		`UPDATE sources SET published_count = published_count + 1 WHERE id = $1`,
		news.SourceID,
	); err != nil {
		return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return id, true, nil
}

// NewsByID возвращает новость по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) NewsByID(ctx context.Context, id uuid.UUID) (*models.News, error) {
	const op = "storage.postgres.NewsByID"

	row := s.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id)

	news, err := scanNews(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return news, nil
}

// Moderate — CAS-переход pending_review -> decision.
//
// Дисциплина check-and-set: UPDATE срабатывает только если строка всё ещё
// в pending_review; проигравший из двух конкурентных администраторов
// получает текущий статус и changed=false. Запись аудита добавляется
// в той же транзакции и только при фактическом переходе — повторное
// решение не порождает дублей аудита.
func (s *Storage) Moderate(ctx context.Context, id uuid.UUID, decision models.ModerationStatus, adminID int64) (models.ModerationStatus, bool, error) {
	const op = "storage.postgres.Moderate"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
	UPDATE news SET moderation_status = $2
	WHERE id = $1 AND moderation_status = $3
	`, id, string(decision), string(models.ModerationPending))
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		var current string
		err := tx.QueryRow(ctx, `SELECT moderation_status FROM news WHERE id = $1`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}

			return "", false, fmt.Errorf("%s: %w", op, err)
		}

		return models.ModerationStatus(current), false, nil
	}

	if _, err := tx.Exec(ctx, `
	INSERT INTO admin_actions (admin_id, action, target_id)
	VALUES ($1, $2, $3)
	`, adminID, "moderate:"+string(decision), id.String()); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	return decision, true, nil
}

// ApplyAIAnnotations применяет резюме и темы от AI-коллаборатора.
// Статус модерации не затрагивается намеренно.
func (s *Storage) ApplyAIAnnotations(ctx context.Context, id uuid.UUID, summary string, topics []string) error {
	const op = "storage.postgres.ApplyAIAnnotations"

	if topics == nil {
		topics = []string{}
	}

	tag, err := s.db.Exec(ctx, `
	UPDATE news SET ai_summary = $2, ai_topics = $3 WHERE id = $1
	`, id, summary, topics)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ExtendExpiry — административное продление срока жизни новости
// (единственная разрешённая мутация expires_at после приёма), с аудитом.
func (s *Storage) ExtendExpiry(ctx context.Context, id uuid.UUID, until time.Time, adminID int64) error {
	const op = "storage.postgres.ExtendExpiry"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
	UPDATE news SET expires_at = $2, archived_at = NULL WHERE id = $1
	`, id, until.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `
	INSERT INTO admin_actions (admin_id, action, target_id)
	VALUES ($1, 'extend_expiry', $2)
	`, adminID, id.String()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SweepExpired помечает archived_at у свежеистёкших записей.
// Видимость ленты от уборки не зависит (ленивый предикат);
// это только фоновая зачистка для массовой архивации.
func (s *Storage) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.SweepExpired"

	tag, err := s.db.Exec(ctx, `
	UPDATE news SET archived_at = $1
	WHERE archived_at IS NULL AND expires_at IS NOT NULL AND expires_at <= $1
	`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

// FeedPage возвращает страницу персональной ленты под вычисленный запрос.
//
// Базовый предикат видимости (approved и не истекло) всегда в силе;
// каждое непустое измерение запроса добавляет своё условие.
// Сортировка фиксирована: published_at DESC, id ASC (тай-брейк для
// детерминизма); пагинация — keyset по (published_at, id), благодаря чему
// конкурентная вставка не приводит к пропускам и дублям между страницами.
func (s *Storage) FeedPage(ctx context.Context, q storage.FeedQuery) (*models.Page, error) {
	const op = "storage.postgres.FeedPage"

	limit := q.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	conds := []string{
		"n.moderation_status = $1",
		"(n.expires_at IS NULL OR n.expires_at > $2)",
	}
	args := []any{string(models.ModerationApproved), q.Now.UTC()}

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(q.BlockedSourceIDs) > 0 {
		conds = append(conds, fmt.Sprintf("NOT (n.source_id = ANY(%s))", next(q.BlockedSourceIDs)))
	}

	if len(q.BlockedTopics) > 0 {
		conds = append(conds, fmt.Sprintf("NOT (n.ai_topics && %s)", next(q.BlockedTopics)))
	}

	if len(q.BlockedUserIDs) > 0 {
		conds = append(conds, fmt.Sprintf("(n.created_by = 0 OR NOT (n.created_by = ANY(%s)))", next(q.BlockedUserIDs)))
	}

	if len(q.BlockedKeywords) > 0 {
		// Подстрочное совпадение без учёта регистра по заголовку и тексту.
		conds = append(conds, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM unnest(%s::text[]) AS kw WHERE n.title ILIKE '%%' || kw || '%%' OR n.content ILIKE '%%' || kw || '%%')",
			next(q.BlockedKeywords)))
	}

	if len(q.AllowSourceIDs) > 0 {
		conds = append(conds, fmt.Sprintf("n.source_id = ANY(%s)", next(q.AllowSourceIDs)))
	}

	if len(q.AllowTopics) > 0 {
		conds = append(conds, fmt.Sprintf("n.ai_topics && %s", next(q.AllowTopics)))
	}

	if q.Lang != "" {
		conds = append(conds, fmt.Sprintf("n.lang = %s", next(q.Lang)))
	}

	if q.PageToken != "" {
		pubCur, idCur, decErr := decodePageToken(q.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		pub := next(pubCur)
		id := next(idCur)
		conds = append(conds, fmt.Sprintf("(n.published_at < %s OR (n.published_at = %s AND n.id > %s))", pub, pub, id))
	}

	query := fmt.Sprintf(`
	SELECT %s FROM news n
	WHERE %s
	ORDER BY n.published_at DESC, n.id ASC
	LIMIT %s
	`, qualifiedNewsColumns("n"), strings.Join(conds, " AND "), next(limit))

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.Page
	for rows.Next() {
		news, scanErr := scanNews(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		page.Items = append(page.Items, *news)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы — по последнему элементу.
	if l := len(page.Items); l > 0 {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.PublishedAt, last.ID)
	}

	return &page, nil
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(publishedAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", publishedAt.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return time.Unix(0, t).UTC(), id, nil
}
