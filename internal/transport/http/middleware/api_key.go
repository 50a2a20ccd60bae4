package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/morozovaa/go-feed-engine/internal/transport/http/apierrors"
)

// APIKey закрывает административные маршруты статическим ключом X-API-Key.
// Сравнение ключей константное по времени. Пустой настроенный ключ запрещает
// доступ целиком: тихо открывать админку при дырявом конфиге нельзя.
func APIKey(key string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-API-Key")

			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				writeUnauthorized(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	resp := apierrors.ErrorResponse{Error: apierrors.APIError{
		Code:    "unauthorized",
		Message: "missing or invalid api key",
	}}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(resp)
}
