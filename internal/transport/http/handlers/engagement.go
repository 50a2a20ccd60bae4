package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

// RecordView фиксирует прочтение новости. Идемпотентен:
// повторный просмотр той же новости не двигает счётчики.
func (h *Handlers) RecordView(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		NewsID uuid.UUID `json:"news_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	stats, err := h.Service.RecordView(r.Context(), userID, req.NewsID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromStats(stats))
}

func (h *Handlers) AddBookmark(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		NewsID uuid.UUID `json:"news_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	if err := h.Service.RecordBookmark(r.Context(), userID, req.NewsID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	newsID, err := pathUUID(r, "news_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Service.RemoveBookmark(r.Context(), userID, newsID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := queryInt32(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	news, err := h.Service.Bookmarks(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]newsView, 0, len(news))
	for _, n := range news {
		items = append(items, fromNews(n))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handlers) UserStats(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.Service.UserStats(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromStats(stats))
}

func (h *Handlers) Badges(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	badges, err := h.Service.Badges(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": fromBadges(badges)})
}

// RecordAIUsage фиксирует обращение к AI-функции от имени пользователя.
func (h *Handlers) RecordAIUsage(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.Service.RecordAIUsage(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromStats(stats))
}

func (h *Handlers) RecordAIFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Positive bool `json:"positive"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	stats, err := h.Service.RecordAIFeedback(r.Context(), userID, req.Positive)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromStats(stats))
}

// SubmitFeedback принимает свободный отзыв, опционально привязанный к новости.
func (h *Handlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		NewsID  uuid.UUID `json:"news_id"`
		Rating  int16     `json:"rating"`
		Comment string    `json:"comment"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	err = h.Service.RecordFeedback(r.Context(), models.Feedback{
		UserID:  userID,
		NewsID:  req.NewsID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
