package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader заголовок, в котором клиент может передать свой request id
const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID middleware проставляет каждому запросу идентификатор
// Если клиент прислал X-Request-ID - используется он, иначе генерируется новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID возвращает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
