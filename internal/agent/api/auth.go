// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse описывает ответ сервера при успешной регистрации.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userID"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// Token бессрочный, его нужно передавать в заголовке авторизации как есть.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userID"`
}

// Register выполняет регистрацию пользователя на сервере.
func (c *Client) Register(username, password string) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.PostJSON("/auth/register", RegisterRequest{Username: username, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает токен.
func (c *Client) Login(username, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/auth/login", LoginRequest{Username: username, Password: password}, &resp, "")
	return resp, err
}
