package handlers

import (
	"net/http"

	"github.com/morozovaa/go-feed-engine/internal/models"
	"github.com/morozovaa/go-feed-engine/internal/storage"
)

// EnsureUser регистрирует пользователя чат-платформы либо обновляет
// его профильные поля. Идемпотентен: повторный вызов не сбрасывает настройки.
func (h *Handlers) EnsureUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Language  string `json:"language"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	user, err := h.Service.EnsureUser(r.Context(), models.User{
		ID:        req.ID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Language:  req.Language,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromUser(*user))
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.Service.UserByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromUser(*user))
}

// UpdatePreferences — частичное обновление настроек: присутствующие поля
// меняются, отсутствующие остаются как были.
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Language          *string `json:"language"`
		SafeMode          *bool   `json:"safe_mode"`
		AutoNotifications *bool   `json:"auto_notifications"`
		DigestFrequency   *string `json:"digest_frequency"`
		ViewMode          *string `json:"view_mode"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	update := storage.UserUpdate{
		Language:          req.Language,
		SafeMode:          req.SafeMode,
		AutoNotifications: req.AutoNotifications,
	}
	if req.DigestFrequency != nil {
		freq := models.DigestFrequency(*req.DigestFrequency)
		update.DigestFrequency = &freq
	}
	if req.ViewMode != nil {
		mode := models.ViewMode(*req.ViewMode)
		update.ViewMode = &mode
	}

	user, err := h.Service.UpdatePreferences(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromUser(*user))
}
