package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

// RecipesService — CRUD рецептов с проверкой владельца.
//
// Чтение публичное, изменять и удалять рецепт может только его владелец.
type RecipesService struct {
	recipes RecipesRepo
}

// NewRecipesService создаёт сервис рецептов.
func NewRecipesService(recipes RecipesRepo) *RecipesService {
	return &RecipesService{recipes: recipes}
}

// List возвращает все рецепты.
func (s *RecipesService) List(ctx context.Context) ([]models.Recipe, error) {
	list, err := s.recipes.Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list recipes: %v", serr.ErrInternal, err)
	}
	return list, nil
}

// Get возвращает рецепт по id. Кривой id — это тоже ErrNotFound.
func (s *RecipesService) Get(ctx context.Context, id string) (models.Recipe, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return models.Recipe{}, serr.ErrNotFound
	}
	return s.find(ctx, rid)
}

// Create сохраняет рецепт, владельцем становится userID.
// ID и OwnerID из recipe игнорируются.
func (s *RecipesService) Create(ctx context.Context, userID string, recipe models.Recipe) (models.Recipe, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return models.Recipe{}, serr.ErrUnauthorized
	}

	if err := validateRecipe(recipe.Name, recipe.CookingTime); err != nil {
		return models.Recipe{}, err
	}

	recipe.ID = uuid.Nil
	recipe.OwnerID = owner
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}

	created, err := s.recipes.Create(ctx, recipe)
	if err != nil {
		if errors.Is(err, serr.ErrUnauthorized) {
			return models.Recipe{}, serr.ErrUnauthorized
		}
		return models.Recipe{}, fmt.Errorf("%w: create recipe: %v", serr.ErrInternal, err)
	}
	return created, nil
}

// Update применяет патч к рецепту.
//
// Порядок проверок: рецепт существует (ErrNotFound), принадлежит userID
// (ErrForbidden), затем валидность полей (ErrInvalidInput).
func (s *RecipesService) Update(ctx context.Context, id, userID string, patch models.RecipePatch) (models.Recipe, error) {
	rid, err := s.authorize(ctx, id, userID)
	if err != nil {
		return models.Recipe{}, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return models.Recipe{}, fmt.Errorf("%w: %w", serr.ErrInvalidInput, serr.ErrRecipeNameEmpty)
	}
	if patch.CookingTime != nil && *patch.CookingTime < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %w", serr.ErrInvalidInput, serr.ErrNegativeCookingTime)
	}

	updated, err := s.recipes.FindByIDAndUpdate(ctx, rid, patch)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Recipe{}, serr.ErrNotFound
		}
		return models.Recipe{}, fmt.Errorf("%w: update recipe: %v", serr.ErrInternal, err)
	}
	return updated, nil
}

// Delete удаляет рецепт. Проверки те же, что у Update.
func (s *RecipesService) Delete(ctx context.Context, id, userID string) error {
	rid, err := s.authorize(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.recipes.FindByIDAndDelete(ctx, rid); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return serr.ErrNotFound
		}
		return fmt.Errorf("%w: delete recipe: %v", serr.ErrInternal, err)
	}
	return nil
}

// authorize ищет рецепт и сверяет владельца.
func (s *RecipesService) authorize(ctx context.Context, id, userID string) (uuid.UUID, error) {
	rid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, serr.ErrNotFound
	}

	existing, err := s.find(ctx, rid)
	if err != nil {
		return uuid.Nil, err
	}

	if existing.OwnerID.String() != userID {
		return uuid.Nil, serr.ErrForbidden
	}
	return rid, nil
}

func (s *RecipesService) find(ctx context.Context, id uuid.UUID) (models.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Recipe{}, serr.ErrNotFound
		}
		return models.Recipe{}, fmt.Errorf("%w: find recipe: %v", serr.ErrInternal, err)
	}
	return recipe, nil
}

func validateRecipe(name string, cookingTime float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %w", serr.ErrInvalidInput, serr.ErrRecipeNameEmpty)
	}
	if cookingTime < 0 {
		return fmt.Errorf("%w: %w", serr.ErrInvalidInput, serr.ErrNegativeCookingTime)
	}
	return nil
}
