// storage определяет контракты доступа к БД для движка ленты.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности (PK/UNIQUE).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrConflict — CAS-операция не прошла: строка уже в другом состоянии.
	ErrConflict = errors.New("conflict")
)

// UserUpdate — частичное обновление предпочтений пользователя.
// nil-поле означает «не трогать».
type UserUpdate struct {
	Language          *string
	SafeMode          *bool
	AutoNotifications *bool
	DigestFrequency   *models.DigestFrequency
	ViewMode          *models.ViewMode
}

// FeedQuery — полностью вычисленный запрос персональной ленты.
// Сервис собирает его из блокировок, активного кастомного фида и safe_mode;
// хранилище лишь транслирует в SQL. Пустые срезы означают отсутствие измерения.
type FeedQuery struct {
	Now time.Time
	// Исключения (блокировки пользователя; BlockedTopics включает
	// и чувствительные темы safe_mode).
	BlockedSourceIDs []int64
	BlockedTopics    []string
	BlockedKeywords  []string
	BlockedUserIDs   []int64
	// Allow-list активного кастомного фида; пусто = без ограничения.
	AllowSourceIDs []int64
	AllowTopics    []string
	// Язык пользователя; пусто = без ограничения.
	Lang string

	Limit     int32
	PageToken string
}

// UsersStorage описывает операции над сущностью models.User.
type UsersStorage interface {
	// UpsertUser создаёт пользователя при первом контакте либо
	// обновляет last_active и профильные поля. Идемпотентен.
	UpsertUser(ctx context.Context, user models.User) (*models.User, error)
	// UserByID возвращает пользователя; ErrNotFound, если записи нет.
	UserByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateUser применяет частичное обновление предпочтений.
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*models.User, error)
	// UsersDueForDigest возвращает пользователей, которым пора отправлять
	// дайджест на момент now (включённые уведомления + истёкший период).
	UsersDueForDigest(ctx context.Context, now time.Time) ([]int64, error)
	// MarkDigestSent фиксирует момент отправки дайджеста,
	// чтобы пользователь не считался «должником» до конца периода.
	MarkDigestSent(ctx context.Context, id int64, sentAt time.Time) error
}

// SourcesStorage описывает операции над сущностью models.Source.
type SourcesStorage interface {
	// CreateSource регистрирует источник; ErrAlreadyExists при конфликте
	// уникальности имени или ссылки.
	CreateSource(ctx context.Context, source models.Source) (*models.Source, error)
	// SourceByID возвращает источник; ErrNotFound, если записи нет.
	SourceByID(ctx context.Context, id int64) (*models.Source, error)
	// SetSourceStatus мутирует операционный статус источника.
	SetSourceStatus(ctx context.Context, id int64, status models.SourceStatus) error
	// ListSources возвращает все источники, отсортированные по имени.
	ListSources(ctx context.Context) ([]models.Source, error)
}

// NewsStorage описывает операции над сущностью models.News.
type NewsStorage interface {
	// InsertNews выполняет атомарную вставку по ключу дедупликации
	// (нормализованный source_url) и инкремент счётчика источника.
	// Первый писатель выигрывает: при конфликте возвращает id существующей
	// строки и inserted=false, не трогая её содержимое.
	InsertNews(ctx context.Context, news models.News) (id uuid.UUID, inserted bool, err error)
	// NewsByID возвращает новость; ErrNotFound, если записи нет.
	NewsByID(ctx context.Context, id uuid.UUID) (*models.News, error)
	// Moderate выполняет CAS-переход pending_review -> decision и пишет
	// запись аудита в той же транзакции. Если строка уже не в pending_review,
	// возвращает её текущий статус и changed=false без записи аудита.
	Moderate(ctx context.Context, id uuid.UUID, decision models.ModerationStatus, adminID int64) (current models.ModerationStatus, changed bool, err error)
	// ApplyAIAnnotations применяет выводы AI-коллаборатора.
	// Никогда не меняет статус модерации.
	ApplyAIAnnotations(ctx context.Context, id uuid.UUID, summary string, topics []string) error
	// ExtendExpiry — единственная разрешённая мутация expires_at после
	// приёма (явное административное продление), с записью аудита.
	ExtendExpiry(ctx context.Context, id uuid.UUID, until time.Time, adminID int64) error
	// SweepExpired помечает archived_at у свежеистёкших записей и возвращает
	// их количество. Нужен для фоновой уборки, не для корректности видимости.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
	// FeedPage возвращает страницу видимых новостей под вычисленный запрос.
	// Сортировка фиксирована: published_at DESC, id ASC; курсорная пагинация.
	// При некорректном page_token возвращает ErrInvalidCursor.
	FeedPage(ctx context.Context, q FeedQuery) (*models.Page, error)
}

// FiltersStorage описывает операции над блокировками и кастомными фидами.
type FiltersStorage interface {
	// AddBlock добавляет правило исключения; повторная вставка — no-op.
	AddBlock(ctx context.Context, block models.Block) error
	// RemoveBlock удаляет правило; отсутствие записи — не ошибка.
	RemoveBlock(ctx context.Context, userID int64, t models.BlockType, value string) error
	// BlocksByUser возвращает все блокировки пользователя.
	BlocksByUser(ctx context.Context, userID int64) ([]models.Block, error)
	// SaveCustomFeed создаёт или обновляет фид по ключу (user_id, feed_name).
	SaveCustomFeed(ctx context.Context, feed models.CustomFeed) (*models.CustomFeed, error)
	// DeleteCustomFeed удаляет фид; отсутствие записи — не ошибка.
	DeleteCustomFeed(ctx context.Context, userID int64, name string) error
	// CustomFeedsByUser возвращает все фиды пользователя.
	CustomFeedsByUser(ctx context.Context, userID int64) ([]models.CustomFeed, error)
	// SetCurrentFeed делает фид активной линзой персонализации
	// (и снимает отметку с прочих). ErrNotFound, если фида нет.
	SetCurrentFeed(ctx context.Context, userID int64, name string) error
	// CurrentFeed возвращает активный фид; ErrNotFound, если не выбран.
	CurrentFeed(ctx context.Context, userID int64) (*models.CustomFeed, error)
}

// EngagementStorage описывает журналы вовлечённости и счётчики геймификации.
type EngagementStorage interface {
	// RecordView идемпотентно фиксирует просмотр: первая вставка пары
	// (user, news) атомарно инкрементирует news_read_count в той же
	// транзакции и возвращает inserted=true со свежими счётчиками;
	// повтор — inserted=false без изменений.
	RecordView(ctx context.Context, userID int64, newsID uuid.UUID) (inserted bool, stats *models.UserStats, err error)
	// RecordBookmark идемпотентно сохраняет закладку.
	RecordBookmark(ctx context.Context, userID int64, newsID uuid.UUID) (inserted bool, err error)
	// RemoveBookmark удаляет закладку; отсутствие записи — не ошибка.
	RemoveBookmark(ctx context.Context, userID int64, newsID uuid.UUID) error
	// BookmarksByUser возвращает закладки пользователя (новые сверху).
	BookmarksByUser(ctx context.Context, userID int64, limit int32) ([]models.News, error)
	// IncrementAIUsage атомарно инкрементирует счётчик AI-запросов.
	IncrementAIUsage(ctx context.Context, userID int64) (*models.UserStats, error)
	// IncrementAIFeedback атомарно инкрементирует счётчик оценок AI.
	IncrementAIFeedback(ctx context.Context, userID int64, positive bool) (*models.UserStats, error)
	// IncrementSourcesAdded атомарно инкрементирует счётчик источников.
	IncrementSourcesAdded(ctx context.Context, userID int64) (*models.UserStats, error)
	// IncrementReportsSent атомарно инкрементирует счётчик жалоб.
	IncrementReportsSent(ctx context.Context, userID int64) (*models.UserStats, error)
	// StatsByUser возвращает счётчики; ErrNotFound, если записи нет.
	StatsByUser(ctx context.Context, userID int64) (*models.UserStats, error)
	// AddBadge начисляет бейдж ровно один раз; повтор — inserted=false.
	AddBadge(ctx context.Context, userID int64, code string) (inserted bool, err error)
	// BadgesByUser возвращает бейджи пользователя.
	BadgesByUser(ctx context.Context, userID int64) ([]models.Badge, error)
	// RaiseLevel монотонно поднимает уровень (GREATEST, без отката).
	RaiseLevel(ctx context.Context, userID int64, level int32) error
}

// InvitesStorage описывает операции реферальной подсистемы.
type InvitesStorage interface {
	// CreateInvite сохраняет приглашение; ErrAlreadyExists при коллизии кода.
	CreateInvite(ctx context.Context, invite models.Invitation) (*models.Invitation, error)
	// InviteByCode возвращает приглашение; ErrNotFound, если кода нет.
	InviteByCode(ctx context.Context, code string) (*models.Invitation, error)
	// ClaimInvite — атомарное одноразовое погашение: переводит pending -> accepted,
	// выставляет invitee/used_at и привязывает inviter_id к новому пользователю
	// в одной транзакции. Если код отсутствует — ErrNotFound; если приглашение
	// уже не pending либо истекло — ErrConflict (конкурентный проигравший
	// различает причину повторным чтением InviteByCode).
	ClaimInvite(ctx context.Context, code string, inviteeID int64, now time.Time) (*models.Invitation, error)
}

// ReportsStorage описывает жалобы и обратную связь.
type ReportsStorage interface {
	// CreateReport сохраняет жалобу (append-only со стороны пользователя).
	CreateReport(ctx context.Context, report models.Report) (*models.Report, error)
	// ResolveReport мутирует статус жалобы от имени администратора.
	ResolveReport(ctx context.Context, id int64, status models.ReportStatus, adminID int64) error
	// ListReports возвращает жалобы в статусе status (новые сверху).
	ListReports(ctx context.Context, status models.ReportStatus, limit int32) ([]models.Report, error)
	// CreateFeedback сохраняет отзыв пользователя.
	CreateFeedback(ctx context.Context, feedback models.Feedback) error
}

// AdminStorage описывает производные read-view для административной панели.
type AdminStorage interface {
	// OverviewStats возвращает агрегированные счётчики системы.
	OverviewStats(ctx context.Context, now time.Time) (*models.OverviewStats, error)
	// ListUsers возвращает страницу пользователей (offset-пагинация
	// административной выдачи) и общее количество.
	ListUsers(ctx context.Context, limit, offset int32) ([]models.User, int64, error)
}

// Storage задаёт полный контракт доступа к хранилищу движка.
type Storage interface {
	UsersStorage
	SourcesStorage
	NewsStorage
	FiltersStorage
	EngagementStorage
	InvitesStorage
	ReportsStorage
	AdminStorage
	Close()
}
