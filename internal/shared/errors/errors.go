// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, отрицательное время готовки и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Тело запроса больше допустимого лимита
	ErrBodyTooLarge = errors.New("body too large")
	// Неавторизован: нет токена или токен не прошёл проверку
	ErrUnauthorized = errors.New("unauthorized")
	// Пользователь аутентифицирован, но ресурс ему не принадлежит
	ErrForbidden = errors.New("forbidden")
	// Ресурс уже существует (например username уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для рецептов
var (
	ErrRecipeNameEmpty     = errors.New("recipe name cannot be empty")
	ErrNegativeCookingTime = errors.New("cooking time cannot be negative")
	ErrUserIDEmpty         = errors.New("user id cannot be empty")
)
