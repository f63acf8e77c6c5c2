package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// HeaderUserID заголовок с идентификатором вызывающего пользователя
const HeaderUserID = "X-Sharer-User-Id"

type ctxKey int

const userIDKey ctxKey = iota

// Auth извлекает ID пользователя из заголовка X-Sharer-User-Id и кладет
// его в контекст запроса
// Запросы без заголовка пропускаются дальше: обязательность заголовка
// проверяет сам обработчик через GetUserID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderUserID)
		if header != "" {
			userID, err := strconv.ParseInt(header, 10, 64)
			if err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
