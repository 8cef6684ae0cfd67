package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

const recipeColumns = `id, name, ingredients, instructions, image_url, cooking_time, owner_id, created_at, updated_at`

// RecipesRepository реализует хранилище рецептов (PostgreSQL).
// Ингредиенты лежат в jsonb-массиве.
type RecipesRepository struct {
	db *sql.DB
}

// NewRecipesRepository создаёт новый экземпляр RecipesRepository.
func NewRecipesRepository(db *sql.DB) *RecipesRepository {
	return &RecipesRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var (
		rec         models.Recipe
		ingredients []byte
	)
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&ingredients,
		&rec.Instructions,
		&rec.ImageURL,
		&rec.CookingTime,
		&rec.OwnerID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.Recipe{}, err
	}

	rec.Ingredients = []string{}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &rec.Ingredients); err != nil {
			return models.Recipe{}, err
		}
	}
	return rec, nil
}

// Find возвращает все рецепты в порядке создания.
func (r *RecipesRepository) Find(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	list := make([]models.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return list, nil
}

func (r *RecipesRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Recipe, error) {
	rec, err := scanRecipe(r.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id=$1`,
		id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, serr.ErrNotFound
		}
		return models.Recipe{}, serr.ErrInternal
	}
	return rec, nil
}

// Create сохраняет рецепт и возвращает его с id и временем, выданными базой.
//
// Если владельца нет в users (токен пережил пользователя) — ErrUnauthorized.
func (r *RecipesRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	ingredients, err := marshalIngredients(recipe.Ingredients)
	if err != nil {
		return models.Recipe{}, serr.ErrInternal
	}

	created, err := scanRecipe(r.db.QueryRowContext(ctx, `
		INSERT INTO recipes (name, ingredients, instructions, image_url, cooking_time, owner_id)
		VALUES ($1, $2::jsonb, $3, $4, $5, $6)
		RETURNING `+recipeColumns,
		recipe.Name,
		ingredients,
		recipe.Instructions,
		recipe.ImageURL,
		recipe.CookingTime,
		recipe.OwnerID,
	))
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return models.Recipe{}, serr.ErrUnauthorized
		}
		return models.Recipe{}, serr.ErrInternal
	}
	return created, nil
}

// FindByIDAndUpdate обновляет только переданные поля патча и возвращает
// рецепт после обновления. owner_id не трогается никогда.
func (r *RecipesRepository) FindByIDAndUpdate(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (models.Recipe, error) {
	var ingredients any
	if patch.Ingredients != nil {
		b, err := marshalIngredients(*patch.Ingredients)
		if err != nil {
			return models.Recipe{}, serr.ErrInternal
		}
		ingredients = b
	}

	updated, err := scanRecipe(r.db.QueryRowContext(ctx, `
		UPDATE recipes SET
			name         = COALESCE($2::text, name),
			ingredients  = COALESCE($3::jsonb, ingredients),
			instructions = COALESCE($4::text, instructions),
			image_url    = COALESCE($5::text, image_url),
			cooking_time = COALESCE($6::double precision, cooking_time),
			updated_at   = now()
		WHERE id = $1
		RETURNING `+recipeColumns,
		id,
		patch.Name,
		ingredients,
		patch.Instructions,
		patch.ImageURL,
		patch.CookingTime,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, serr.ErrNotFound
		}
		return models.Recipe{}, serr.ErrInternal
	}
	return updated, nil
}

func (r *RecipesRepository) FindByIDAndDelete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id=$1`, id)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

func marshalIngredients(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	return string(b), err
}
