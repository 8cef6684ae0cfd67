// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

//go:generate mockgen -source=service.go -destination=mocks/repos_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users   UsersRepo
	Recipes RecipesRepo
	Health  HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth    *AuthService
	Recipes *RecipesService
	Health  HealthRepo
}

// NewServices собирает все сервисы приложения.
// Хэшер и выпускатель токенов создаются один раз в main и передаются сюда.
func NewServices(repos Repositories, hasher crypto.PasswordHasher, tokens TokenIssuer) *Services {
	return &Services{
		Auth:    NewAuthService(repos.Users, hasher, tokens),
		Recipes: NewRecipesService(repos.Recipes),
		Health:  repos.Health,
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login).
//
// Create возвращает ErrAlreadyExists, если username занят:
// уникальность гарантирует само хранилище.
// FindByUsername возвращает ErrNotFound, если пользователя нет.
type UsersRepo interface {
	Create(ctx context.Context, username, passwordHash string) (uuid.UUID, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// RecipesRepo — репозиторий рецептов.
//
// FindByID, FindByIDAndUpdate и FindByIDAndDelete возвращают ErrNotFound,
// если рецепта нет.
type RecipesRepo interface {
	Find(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.Recipe, error)
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	FindByIDAndUpdate(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (models.Recipe, error)
	FindByIDAndDelete(ctx context.Context, id uuid.UUID) error
}

// TokenIssuer — выпуск сессионного токена (реализация: crypto.TokenIssuer).
type TokenIssuer interface {
	Issue(userID string) (string, error)
}
