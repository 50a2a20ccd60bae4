package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/service"
)

type ingestResultView struct {
	Outcome string    `json:"outcome"`
	NewsID  uuid.UUID `json:"news_id,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// IngestNews — шлюз приёма: внешний сборщик либо пользователь отдаёт сырой
// материал источника. Дубликаты и отклонения не считаются ошибками HTTP,
// исход отражается в поле outcome.
func (h *Handlers) IngestNews(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Title       string    `json:"title"`
		Content     string    `json:"content"`
		SourceURL   string    `json:"source_url"`
		ImageURL    string    `json:"image_url"`
		Lang        string    `json:"lang"`
		PublishedAt time.Time `json:"published_at"`
		CreatedBy   int64     `json:"created_by"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	result, err := h.Service.Ingest(r.Context(), sourceID, service.RawItem{
		Title:       req.Title,
		Content:     req.Content,
		SourceURL:   req.SourceURL,
		ImageURL:    req.ImageURL,
		Lang:        req.Lang,
		PublishedAt: req.PublishedAt,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Outcome != service.IngestAccepted {
		status = http.StatusOK
	}

	writeJSON(w, status, ingestResultView{
		Outcome: string(result.Outcome),
		NewsID:  result.NewsID,
		Reason:  result.Reason,
	})
}

func (h *Handlers) ListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.Service.ListSources(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]sourceView, 0, len(sources))
	for _, s := range sources {
		items = append(items, fromSource(s))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CreateSource добавляет источник; created_by != 0 означает
// пользовательскую заявку и двигает счётчик вклада.
func (h *Handlers) CreateSource(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name            string `json:"name"`
		Link            string `json:"link"`
		Type            string `json:"type"`
		Trusted         bool   `json:"trusted"`
		ParseIntervalMS int64  `json:"parse_interval_ms"`
		CreatedBy       int64  `json:"created_by"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	source, err := h.Service.CreateSource(r.Context(), models.Source{
		Name:          req.Name,
		Link:          req.Link,
		Type:          models.SourceType(req.Type),
		Trusted:       req.Trusted,
		ParseInterval: time.Duration(req.ParseIntervalMS) * time.Millisecond,
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, fromSource(*source))
}

// SubmitReport принимает жалобу пользователя на новость или пользователя.
func (h *Handlers) SubmitReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID     int64  `json:"user_id"`
		TargetType string `json:"target_type"`
		TargetID   string `json:"target_id"`
		Reason     string `json:"reason"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	report, err := h.Service.SubmitReport(r.Context(), models.Report{
		UserID:     req.UserID,
		TargetType: models.ReportTargetType(req.TargetType),
		TargetID:   req.TargetID,
		Reason:     req.Reason,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, fromReport(*report))
}
