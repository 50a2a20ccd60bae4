package handlers

import (
	"net/http"
	"time"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

// Административные обработчики. Снаружи закрыты мидлваром APIKey,
// поэтому здесь нет собственной проверки прав.

func (h *Handlers) AdminOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromOverview(stats))
}

func (h *Handlers) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	offset, err := queryInt32(r, "offset")
	if err != nil {
		writeError(w, r, err)
		return
	}

	users, total, err := h.Service.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]userView, 0, len(users))
	for _, u := range users {
		items = append(items, fromUser(u))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

// AdminModerateNews применяет решение модерации к новости в статусе
// премодерации. Повтор решения и смена уже принятого решения — конфликт.
func (h *Handlers) AdminModerateNews(w http.ResponseWriter, r *http.Request) {
	newsID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Decision string `json:"decision"`
		AdminID  int64  `json:"admin_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	news, err := h.Service.Moderate(r.Context(), newsID, models.ModerationStatus(req.Decision), req.AdminID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromNews(*news))
}

func (h *Handlers) AdminExtendExpiry(w http.ResponseWriter, r *http.Request) {
	newsID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Until   time.Time `json:"until"`
		AdminID int64     `json:"admin_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	if err := h.Service.AdminExtendExpiry(r.Context(), newsID, req.Until, req.AdminID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdminApplyAnnotations записывает резюме и темы, присланные
// внешним AI-коллаборатором.
func (h *Handlers) AdminApplyAnnotations(w http.ResponseWriter, r *http.Request) {
	newsID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Summary string   `json:"summary"`
		Topics  []string `json:"topics"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	if err := h.Service.ApplyAIAnnotations(r.Context(), newsID, req.Summary, req.Topics); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AdminSetSourceStatus(w http.ResponseWriter, r *http.Request) {
	sourceID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	if err := h.Service.SetSourceStatus(r.Context(), sourceID, models.SourceStatus(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AdminListReports(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt32(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := models.ReportStatus(r.URL.Query().Get("status"))

	reports, err := h.Service.ListReports(r.Context(), status, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]reportView, 0, len(reports))
	for _, rep := range reports {
		items = append(items, fromReport(rep))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handlers) AdminResolveReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Status  string `json:"status"`
		AdminID int64  `json:"admin_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	if err := h.Service.ResolveReport(r.Context(), id, models.ReportStatus(req.Status), req.AdminID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AdminDigestDue отдаёт пользователей, которым пора отправить дайджест.
// Сама отправка живёт на стороне чат-коллаборатора; движок только
// считает границу по расписанию и фиксирует факт отправки.
func (h *Handlers) AdminDigestDue(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	if raw := r.URL.Query().Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, r, errInvalidArgument("invalid now"))
			return
		}
		now = parsed.UTC()
	}

	ids, err := h.Service.UsersDueForDigest(r.Context(), now)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if ids == nil {
		ids = []int64{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"user_ids": ids})
}

func (h *Handlers) AdminMarkDigestSent(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		SentAt time.Time `json:"sent_at"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	sentAt := req.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}

	if err := h.Service.MarkDigestSent(r.Context(), userID, sentAt); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
