package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/morozovaa/go-feed-engine/internal/service"
	"github.com/morozovaa/go-feed-engine/internal/transport/http/handlers"
	"github.com/morozovaa/go-feed-engine/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// AdminAPIKey закрывает маршруты /admin; пустой ключ запрещает доступ.
	AdminAPIKey string
	// BasePath — например, "/api"; если пустой — роуты регистрируются на корне.
	BasePath string
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, opts.AdminAPIKey)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, opts.AdminAPIKey)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, adminKey string) {
	r.Get("/healthz", h.Healthz)

	// users
	r.Post("/users", h.EnsureUser)
	r.Get("/users/{id}", h.GetUser)
	r.Patch("/users/{id}/preferences", h.UpdatePreferences)

	// feed
	r.Get("/users/{id}/feed", h.Feed)
	r.Get("/news/{id}", h.GetNews)

	// engagement
	r.Post("/users/{id}/views", h.RecordView)
	r.Get("/users/{id}/bookmarks", h.ListBookmarks)
	r.Post("/users/{id}/bookmarks", h.AddBookmark)
	r.Delete("/users/{id}/bookmarks/{news_id}", h.RemoveBookmark)
	r.Get("/users/{id}/stats", h.UserStats)
	r.Get("/users/{id}/badges", h.Badges)
	r.Post("/users/{id}/ai-usage", h.RecordAIUsage)
	r.Post("/users/{id}/ai-feedback", h.RecordAIFeedback)
	r.Post("/users/{id}/feedback", h.SubmitFeedback)

	// personalization
	r.Get("/users/{id}/blocks", h.ListBlocks)
	r.Post("/users/{id}/blocks", h.AddBlock)
	r.Delete("/users/{id}/blocks", h.RemoveBlock)
	r.Get("/users/{id}/feeds", h.ListCustomFeeds)
	r.Post("/users/{id}/feeds", h.SaveCustomFeed)
	r.Delete("/users/{id}/feeds/{name}", h.DeleteCustomFeed)
	r.Post("/users/{id}/feeds/{name}/select", h.SelectCustomFeed)

	// invites
	r.Post("/invites", h.CreateInvite)
	r.Get("/invites/{code}", h.GetInvite)
	r.Post("/invites/redeem", h.RedeemInvite)

	// reports
	r.Post("/reports", h.SubmitReport)

	// sources & ingest
	r.Get("/sources", h.ListSources)
	r.Post("/sources", h.CreateSource)
	r.Post("/sources/{id}/news", h.IngestNews)

	// admin
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.APIKey(adminKey))

		ar.Get("/stats", h.AdminOverview)
		ar.Get("/users", h.AdminListUsers)
		ar.Get("/reports", h.AdminListReports)
		ar.Post("/reports/{id}/resolve", h.AdminResolveReport)
		ar.Post("/news/{id}/moderate", h.AdminModerateNews)
		ar.Post("/news/{id}/expiry", h.AdminExtendExpiry)
		ar.Post("/news/{id}/annotations", h.AdminApplyAnnotations)
		ar.Patch("/sources/{id}/status", h.AdminSetSourceStatus)
		ar.Get("/digest/due", h.AdminDigestDue)
		ar.Post("/digest/{user_id}/sent", h.AdminMarkDigestSent)
	})
}
