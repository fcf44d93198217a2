package jwtmiddleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/linemk/order-backend/internal/lib/api"
	"github.com/linemk/order-backend/internal/security"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Identity — пользователь, от имени которого выполняется запрос.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// TokenVerifier проверяет токен и возвращает claims.
type TokenVerifier interface {
	Verify(token string) (*security.Claims, error)
}

// NewJWTMiddleware создаёт middleware для проверки Bearer-токена.
func NewJWTMiddleware(log *slog.Logger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "jwtmiddleware.NewJWTMiddleware"
			logger := log.With(slog.String("op", op))

			// Извлекаем токен из заголовка Authorization (формат: "Bearer <token>")
			tokenStr, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Debug("missing or malformed authorization header")
				api.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := verifier.Verify(tokenStr)
			if err != nil {
				logger.Debug("token rejected", slog.Any("error", err))
				api.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, Identity{UserID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken достаёт токен из "Bearer <token>", схема сравнивается без учёта регистра.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// FromContext извлекает Identity из контекста.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(Identity)
	return id, ok
}
