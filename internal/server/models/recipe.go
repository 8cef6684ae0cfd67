package models

import (
	"time"

	"github.com/google/uuid"

	shared "github.com/IvanChernomyrdin/go-recipes/internal/shared/models"
)

// Recipe — рецепт в хранилище. OwnerID задаётся при создании и больше не меняется.
type Recipe struct {
	ID           uuid.UUID
	Name         string
	Ingredients  []string
	Instructions string
	ImageURL     string
	CookingTime  float64
	OwnerID      uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecipePatch — набор изменяемых полей. nil — поле не трогаем.
// Владельца в патче нет.
type RecipePatch struct {
	Name         *string
	Ingredients  *[]string
	Instructions *string
	ImageURL     *string
	CookingTime  *float64
}

// Apply накладывает патч на копию рецепта.
func (p RecipePatch) Apply(r Recipe) Recipe {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Ingredients != nil {
		r.Ingredients = append([]string(nil), (*p.Ingredients)...)
	}
	if p.Instructions != nil {
		r.Instructions = *p.Instructions
	}
	if p.ImageURL != nil {
		r.ImageURL = *p.ImageURL
	}
	if p.CookingTime != nil {
		r.CookingTime = *p.CookingTime
	}
	return r
}

// DTO переводит рецепт в модель HTTP API.
func (r Recipe) DTO() shared.Recipe {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return shared.Recipe{
		ID:           r.ID.String(),
		Name:         r.Name,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		CookingTime:  r.CookingTime,
		UserOwner:    r.OwnerID.String(),
	}
}
