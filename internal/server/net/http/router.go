// Package http реализует маршрутизацию HTTP-слоя сервера рецептов.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - подключение guard'а к изменяющим маршрутам /recipes.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/api"
	"github.com/IvanChernomyrdin/go-recipes/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - публичное чтение рецептов и health-check;
//   - создание, изменение и удаление рецептов за guard'ом.
//
// maxBodyBytes > 0 ограничивает размер тела любого запроса.
func NewRouter(h *api.Handler, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()
	// паника в хендлере не роняет процесс, клиент получает 500
	r.Use(chimw.Recoverer)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	if maxBodyBytes > 0 {
		r.Use(chimw.RequestSize(maxBodyBytes))
	}

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", h.Health)

	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.ListRecipes)
		r.Get("/{id}", h.GetRecipe)

		// защищены пути
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AuthMiddleware())
			r.Post("/", h.CreateRecipe)
			r.Put("/{id}", h.UpdateRecipe)
			r.Delete("/{id}", h.DeleteRecipe)
		})
	})

	return r
}
