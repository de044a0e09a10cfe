package middleware

import (
	"context"
	"net/http"

	"github.com/quesarica/QR-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// SessionValidator интерфейс проверки административной сессии
type SessionValidator interface {
	Validate(ctx context.Context, sessionToken string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет токен сессии владельца в заголовке X-Admin-Token.
// Запросы без действующей сессии отклоняются с 401.
func AdminAuth(validator SessionValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)

			if err := validator.Validate(r.Context(), token); err != nil {
				logger.Warn("AdminAuth: rejected %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
