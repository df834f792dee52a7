package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth извлекает идентификатор пользователя из заголовка X-User-ID
// (проставляется API-шлюзом после проверки токена) и кладет его в контекст
// Запросы без заголовка проходят дальше как анонимные: мастер доступен
// без входа до шага отправки
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get("X-User-ID"); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err == nil && userID > 0 {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
// Второе значение false для анонимных запросов
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
