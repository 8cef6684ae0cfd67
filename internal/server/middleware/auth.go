// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// UnauthorizedMessage — тело ответа 401.
const UnauthorizedMessage = "Unauthorized"

// TokenVerifier проверяет токен и возвращает userID.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTVerifier — guard защищённых маршрутов.
//
// Токен берётся из заголовка Header целиком, без разбора схемы "Bearer".
type JWTVerifier struct {
	Tokens TokenVerifier
	Header string
}

// NewJWTVerifier создаёт guard. Пустой header означает "Authorization".
func NewJWTVerifier(tokens TokenVerifier, header string) *JWTVerifier {
	if header == "" {
		header = "Authorization"
	}
	return &JWTVerifier{Tokens: tokens, Header: header}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает false, если пользователь не аутентифицирован.
func UserIDFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(userIDKey).(string)
	return s, ok && s != ""
}

// ContextWithUserID кладёт userID в контекст. Используется guard'ом и тестами хендлеров.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthMiddleware возвращает HTTP middleware проверки токена.
//
// Нет заголовка или токен не прошёл проверку -> 401 {"message":"Unauthorized"},
// следующий обработчик не вызывается.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(v.Header)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			userID, err := v.Tokens.Verify(token)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.MessageResponse{Message: UnauthorizedMessage})
}
