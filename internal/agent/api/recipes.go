package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
)

func recipePath(id string) string {
	return "/recipes/" + url.PathEscape(id)
}

// ListRecipes возвращает все рецепты. Токен не нужен.
func (c *Client) ListRecipes() ([]models.Recipe, error) {
	var resp []models.Recipe
	err := c.GetJSON("/recipes", &resp, "")
	return resp, err
}

// GetRecipe возвращает рецепт по id. Токен не нужен.
func (c *Client) GetRecipe(id string) (models.Recipe, error) {
	var resp models.Recipe
	err := c.GetJSON(recipePath(id), &resp, "")
	return resp, err
}

// CreateRecipe создаёт рецепт от имени владельца токена.
func (c *Client) CreateRecipe(token string, req models.CreateRecipeRequest) (models.Recipe, error) {
	var resp models.CreateRecipeResponse
	err := c.PostJSON("/recipes", req, &resp, token)
	return resp.CreatedRecipe, err
}

// UpdateRecipe отправляет только заполненные поля req.
func (c *Client) UpdateRecipe(token, id string, req models.UpdateRecipeRequest) (models.Recipe, error) {
	var resp models.UpdateRecipeResponse
	err := c.PutJSON(recipePath(id), req, &resp, token)
	return resp.UpdatedRecipe, err
}

// DeleteRecipe удаляет рецепт.
func (c *Client) DeleteRecipe(token, id string) error {
	return c.DeleteJSON(recipePath(id), nil, token)
}
