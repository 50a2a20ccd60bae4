package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/morozovaa/go-feed-engine/internal/models"
)

func (h *Handlers) ListBlocks(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	blocks, err := h.Service.Blocks(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": fromBlocks(blocks)})
}

func (h *Handlers) AddBlock(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	err = h.Service.AddBlock(r.Context(), models.Block{
		UserID: userID,
		Type:   models.BlockType(req.Type),
		Value:  req.Value,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveBlock снимает блокировку; пара (type, value) приходит в теле,
// потому что value может содержать произвольный текст ключевого слова.
func (h *Handlers) RemoveBlock(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	if err := h.Service.RemoveBlock(r.Context(), userID, models.BlockType(req.Type), req.Value); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListCustomFeeds(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	feeds, err := h.Service.CustomFeeds(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": fromCustomFeeds(feeds)})
}

// SaveCustomFeed создаёт или обновляет именованный фильтр.
// Критерии декодируются в закрытую структуру: произвольный JSON клиента
// в хранилище не попадает.
func (h *Handlers) SaveCustomFeed(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Name     string              `json:"name"`
		Criteria models.FeedCriteria `json:"criteria"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	feed, err := h.Service.SaveCustomFeed(r.Context(), userID, req.Name, req.Criteria)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromCustomFeed(*feed))
}

func (h *Handlers) DeleteCustomFeed(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.Service.DeleteCustomFeed(r.Context(), userID, name); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SelectCustomFeed(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.Service.SelectCustomFeed(r.Context(), userID, name); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
