// apierrors стандартизирует ответы об ошибках HTTP-слоя движка.
// На вход — доменная ошибка сервисного слоя, на выход:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/morozovaa/go-feed-engine/internal/service"
)

// APIError — единый формат для клиентов.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки и не маскировать баг;
//   - незнакомая ошибка — 500/internal без утечки деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	build := func(status int, code, msg string) (int, ErrorResponse) {
		return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
	}

	switch {
	case err == nil:
		return build(http.StatusInternalServerError, "internal", "internal error")
	case errors.Is(err, service.ErrInvalidArgument):
		return build(http.StatusBadRequest, "invalid_argument", "invalid argument")
	case errors.Is(err, service.ErrInvalidCursor):
		return build(http.StatusBadRequest, "invalid_cursor", "invalid page token")
	case errors.Is(err, service.ErrNotFound):
		return build(http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, service.ErrAlreadyExists):
		return build(http.StatusConflict, "already_exists", "already exists")
	case errors.Is(err, service.ErrAlreadyDecided):
		return build(http.StatusConflict, "already_decided", "moderation decision already applied")
	case errors.Is(err, service.ErrInvalidStateTransition):
		return build(http.StatusConflict, "invalid_state_transition", "moderation decision conflicts with current state")
	case errors.Is(err, service.ErrInviteAlreadyUsed):
		return build(http.StatusConflict, "invite_already_used", "invite already used")
	case errors.Is(err, service.ErrInviteExpired):
		return build(http.StatusGone, "invite_expired", "invite expired")
	default:
		return build(http.StatusInternalServerError, "internal", "internal error")
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
