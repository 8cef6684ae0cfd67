// HTTP-хендлеры регистрации и логина
package api

import (
	"net/http"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse описывает успешный ответ регистрации.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userID"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
//
// Token передаётся в заголовке Authorization как есть, без "Bearer ".
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 200 OK: регистрация успешна;
//   - 400 Bad Request: неверный JSON, пустые поля или username занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Description  Creates a new user. Username must be unique.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      200 {object} RegisterResponse
// @Failure      400 {object} models.MessageResponse "Invalid input or username taken"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "register", err)
		return
	}

	id, err := h.Svc.Auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "register", err)
		return
	}

	writeJSON(w, http.StatusOK, RegisterResponse{
		Message: "User registered successfully",
		UserID:  id.String(),
	})
}

// Login обрабатывает вход пользователя и выдачу токена.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Description  Verifies credentials and returns a signed token without expiry.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} models.MessageResponse "Username or password is incorrect"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "login", err)
		return
	}

	res, err := h.Svc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token:  res.Token,
		UserID: res.UserID.String(),
	})
}
