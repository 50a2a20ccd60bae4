// handlers содержит REST-обработчики движка ленты поверх сервисного слоя.
//
// Конвенции:
//   - входные тела декодируются строго (неизвестные поля запрещены);
//   - доменные сущности не сериализуются напрямую, наружу уходят view-типы;
//   - все ошибки уходят через apierrors.WriteError для единого формата.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/morozovaa/go-feed-engine/internal/service"
	"github.com/morozovaa/go-feed-engine/internal/transport/http/apierrors"
)

// Handlers агрегирует зависимости REST-слоя.
type Handlers struct {
	Service *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{Service: svc}
}

// Healthz — проверка живости процесса.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> 400.
func errInvalidArgument(msg string) error {
	return fmt.Errorf("%s: %w", msg, service.ErrInvalidArgument)
}

// pathInt64 достаёт числовой path-параметр chi.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errInvalidArgument("missing " + name)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidArgument("invalid " + name)
	}

	return v, nil
}

// pathUUID достаёт UUID path-параметр chi.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errInvalidArgument("missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidArgument("invalid " + name)
	}

	return id, nil
}

// queryInt32 разбирает необязательный числовой query-параметр (limit/offset).
// Отсутствующее значение возвращается как 0: нормализация лимитов живёт в сервисе.
func queryInt32(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errInvalidArgument("invalid " + name)
	}

	return int32(v), nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apierrors.WriteError(w, r, err)
}
