// Package api реализует HTTP-слой сервера рецептов.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
//
// Любая ошибка отдаётся одинаково: {"message": "..."}.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Тексты ответов об ошибках. Клиенты сверяются с ними, менять нельзя.
const (
	MsgInvalidBody         = "Invalid request body"
	MsgBodyTooLarge        = "Request body too large"
	MsgCredentialsRequired = "Username and password are required"
	MsgUsernameTaken       = "Username already exists"
	MsgBadCredentials      = "Username or password is incorrect"
	MsgRecipeNameRequired  = "Recipe name is required"
	MsgNegativeCookingTime = "Cooking time cannot be negative"
	MsgRecipeNotFound      = "Recipe not found"
	MsgForbidden           = "Forbidden"
	MsgInternal            = "Something Went Wrong"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: guard защищённых маршрутов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// WriteError пишет ошибку в едином формате {"message": "..."}.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON читает тело запроса в v.
//
// Тело сверх лимита (http.MaxBytesReader в роутере) -> ErrBodyTooLarge, любой
// другой сбой разбора -> ErrBadJSON. Обе ошибки отдаются в writeServiceError.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return serr.ErrBodyTooLarge
	}
	return fmt.Errorf("%w: %v", serr.ErrBadJSON, err)
}

// writeServiceError переводит ошибку сервиса в статус и сообщение.
// Всё, что не распознано, логируется и уходит клиенту как 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, serr.ErrBodyTooLarge):
		WriteError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
	case errors.Is(err, serr.ErrBadJSON):
		WriteError(w, http.StatusBadRequest, MsgInvalidBody)
	case errors.Is(err, serr.ErrRecipeNameEmpty):
		WriteError(w, http.StatusBadRequest, MsgRecipeNameRequired)
	case errors.Is(err, serr.ErrNegativeCookingTime):
		WriteError(w, http.StatusBadRequest, MsgNegativeCookingTime)
	case errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, MsgCredentialsRequired)
	case errors.Is(err, serr.ErrAlreadyExists):
		WriteError(w, http.StatusBadRequest, MsgUsernameTaken)
	case errors.Is(err, serr.ErrInvalidCredentials):
		WriteError(w, http.StatusBadRequest, MsgBadCredentials)
	case errors.Is(err, serr.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
	case errors.Is(err, serr.ErrForbidden):
		WriteError(w, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, MsgRecipeNotFound)
	default:
		if h.Log != nil {
			h.Log.Logger.Sugar().Errorw(
				op+" failed",
				"error", err,
				"method", r.Method,
				"uri", r.RequestURI,
			)
		}
		WriteError(w, http.StatusInternalServerError, MsgInternal)
	}
}
