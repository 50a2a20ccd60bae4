package handlers

import (
	"net/http"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

// Feed отдаёт страницу персональной ленты пользователя.
// Видимость и фильтры (блокировки, кастомный фид, safe_mode) вычисляет сервис.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := queryInt32(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.Service.ComputeFeed(r.Context(), id, models.ListOptions{
		Limit:     limit,
		PageToken: r.URL.Query().Get("page_token"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromPage(page))
}

func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	news, err := h.Service.NewsByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromNews(*news))
}
