package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/middleware"
	domain "github.com/IvanChernomyrdin/go-recipes/internal/server/models"
	"github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
)

// ListRecipes возвращает все рецепты. Маршрут публичный.
//
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Success      200 {array} models.Recipe
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /recipes [get]
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.Recipes.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list recipes", err)
		return
	}

	out := make([]models.Recipe, 0, len(list))
	for _, rec := range list {
		out = append(out, rec.DTO())
	}
	writeJSON(w, http.StatusOK, out)
}

// GetRecipe возвращает рецепт по id. Маршрут публичный.
//
// @Summary      Get recipe
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      200 {object} models.Recipe
// @Failure      404 {object} models.MessageResponse "Recipe not found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /recipes/{id} [get]
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Svc.Recipes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, "get recipe", err)
		return
	}
	writeJSON(w, http.StatusOK, rec.DTO())
}

// CreateRecipe создаёт рецепт от имени пользователя из токена.
//
// Поле userOwner из тела не читается: владелец всегда тот, кто пришёл с токеном.
//
// @Summary      Create recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body models.CreateRecipeRequest true "Recipe"
// @Success      201 {object} models.CreateRecipeResponse
// @Failure      400 {object} models.MessageResponse "Invalid input or bad JSON"
// @Failure      401 {object} models.MessageResponse "Unauthorized"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /recipes [post]
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	var req models.CreateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "create recipe", err)
		return
	}

	created, err := h.Svc.Recipes.Create(r.Context(), userID, domain.Recipe{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		CookingTime:  req.CookingTime,
	})
	if err != nil {
		h.writeServiceError(w, r, "create recipe", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.CreateRecipeResponse{CreatedRecipe: created.DTO()})
}

// UpdateRecipe частично обновляет рецепт. Менять рецепт может только владелец.
//
// @Summary      Update recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Recipe ID"
// @Param        request body models.UpdateRecipeRequest true "Changed fields"
// @Success      200 {object} models.UpdateRecipeResponse
// @Failure      400 {object} models.MessageResponse "Invalid input or bad JSON"
// @Failure      401 {object} models.MessageResponse "Unauthorized"
// @Failure      403 {object} models.MessageResponse "Forbidden"
// @Failure      404 {object} models.MessageResponse "Recipe not found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /recipes/{id} [put]
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	var req models.UpdateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, "update recipe", err)
		return
	}

	updated, err := h.Svc.Recipes.Update(r.Context(), chi.URLParam(r, "id"), userID, domain.RecipePatch{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		CookingTime:  req.CookingTime,
	})
	if err != nil {
		h.writeServiceError(w, r, "update recipe", err)
		return
	}

	writeJSON(w, http.StatusOK, models.UpdateRecipeResponse{UpdatedRecipe: updated.DTO()})
}

// DeleteRecipe удаляет рецепт. Удалять может только владелец.
//
// @Summary      Delete recipe
// @Tags         recipes
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Recipe ID"
// @Success      200 {object} models.MessageResponse
// @Failure      401 {object} models.MessageResponse "Unauthorized"
// @Failure      403 {object} models.MessageResponse "Forbidden"
// @Failure      404 {object} models.MessageResponse "Recipe not found"
// @Failure      500 {object} models.MessageResponse "Internal server error"
// @Router       /recipes/{id} [delete]
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, middleware.UnauthorizedMessage)
		return
	}

	if err := h.Svc.Recipes.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		h.writeServiceError(w, r, "delete recipe", err)
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Recipe deleted successfully"})
}
