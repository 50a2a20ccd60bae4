package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) CreateInvite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InviterID int64 `json:"inviter_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	invite, err := h.Service.CreateInvite(r.Context(), req.InviterID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, fromInvite(invite))
}

func (h *Handlers) GetInvite(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, r, errInvalidArgument("missing code"))
		return
	}

	invite, err := h.Service.InviteByCode(r.Context(), code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromInvite(invite))
}

// RedeemInvite погашает код от имени нового пользователя.
// Код одноразовый: гонку выигрывает ровно один клиент.
func (h *Handlers) RedeemInvite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code   string `json:"code"`
		UserID int64  `json:"user_id"`
	}
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, errInvalidArgument("invalid body"))
		return
	}

	invite, err := h.Service.RedeemInvite(r.Context(), req.Code, req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fromInvite(invite))
}
