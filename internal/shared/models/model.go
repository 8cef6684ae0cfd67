// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
package models

// Recipe — рецепт в том виде, в котором он ходит по HTTP.
//
// Поля:
//   - ID: идентификатор рецепта (UUID строкой), выдаётся хранилищем
//   - Name: название, обязательно
//   - Ingredients: список ингредиентов
//   - Instructions: текст приготовления
//   - ImageURL: ссылка на картинку
//   - CookingTime: время готовки в минутах (может быть дробным), не меньше нуля
//   - UserOwner: ID владельца, проставляется сервером и не меняется
type Recipe struct {
	ID           string   `json:"_id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	ImageURL     string   `json:"imageUrl"`
	CookingTime  float64  `json:"cookingTime"`
	UserOwner    string   `json:"userOwner"`
}

// CreateRecipeRequest — запрос на создание рецепта.
//
// Используется в:
//
//	POST /recipes
//
// Владелец берётся из токена, поле userOwner в теле игнорируется.
type CreateRecipeRequest struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	ImageURL     string   `json:"imageUrl"`
	CookingTime  float64  `json:"cookingTime"`
}

// UpdateRecipeRequest — частичное обновление рецепта.
//
// Используется в:
//
//	PUT /recipes/{id}
//
// Поля — указатели, чтобы отличать "не передано" от пустого значения.
type UpdateRecipeRequest struct {
	Name         *string   `json:"name,omitempty"`
	Ingredients  *[]string `json:"ingredients,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	CookingTime  *float64  `json:"cookingTime,omitempty"`
}

// CreateRecipeResponse — ответ на создание.
type CreateRecipeResponse struct {
	CreatedRecipe Recipe `json:"createdRecipe"`
}

// UpdateRecipeResponse — ответ на обновление.
type UpdateRecipeResponse struct {
	UpdatedRecipe Recipe `json:"updatedRecipe"`
}

// MessageResponse — ответ с одним текстовым сообщением.
// Так же выглядят и ошибки API: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
