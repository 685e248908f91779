package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/HSB-ReservationService/internal/api/handlers"
	"github.com/m04kA/HSB-ReservationService/internal/session"
)

const msgUnauthorized = "требуется авторизация"

// Auth проверяет Bearer токен и кладет сессию пользователя в контекст.
// Секрет совпадает с секретом бэкенда: токены выпускает бэкенд, сервис
// их только проверяет.
func Auth(secret string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				log.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			sess, err := session.ParseToken(token, secret)
			if err != nil {
				log.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.IntoContext(r.Context(), sess)))
		})
	}
}

// GetSession извлекает сессию пользователя из контекста запроса
func GetSession(r *http.Request) (*session.Session, bool) {
	return session.FromContext(r.Context())
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
