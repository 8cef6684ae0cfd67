package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-recipes/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-recipes/internal/shared/errors"
)

// MemoryStore — хранилище в памяти процесса (db.driver: memory).
//
// Обе коллекции живут под одним мьютексом: уникальность username и
// существование владельца рецепта проверяются атомарно с записью.
// Наружу отдаются копии, изменить запись в обход методов нельзя.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[uuid.UUID]models.User
	byUsername map[string]uuid.UUID

	recipes map[uuid.UUID]models.Recipe
	order   []uuid.UUID // порядок создания для Find

	now func() time.Time
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[uuid.UUID]models.User),
		byUsername: make(map[string]uuid.UUID),
		recipes:    make(map[uuid.UUID]models.Recipe),
		now:        time.Now,
	}
}

// Users возвращает коллекцию пользователей.
func (s *MemoryStore) Users() *MemoryUsers { return &MemoryUsers{s: s} }

// Recipes возвращает коллекцию рецептов.
func (s *MemoryStore) Recipes() *MemoryRecipes { return &MemoryRecipes{s: s} }

// Ping всегда успешен.
func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

// MemoryUsers — пользователи в MemoryStore.
type MemoryUsers struct{ s *MemoryStore }

func (u *MemoryUsers) Create(ctx context.Context, username, passwordHash string) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[username]; taken {
		return uuid.Nil, serr.ErrAlreadyExists
	}

	id := uuid.New()
	s.users[id] = models.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}
	s.byUsername[username] = id
	return id, nil
}

func (u *MemoryUsers) FindByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s := u.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return models.User{}, serr.ErrNotFound
	}
	return s.users[id], nil
}

// MemoryRecipes — рецепты в MemoryStore.
type MemoryRecipes struct{ s *MemoryStore }

func (r *MemoryRecipes) Find(ctx context.Context) ([]models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Recipe, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, cloneRecipe(s.recipes[id]))
	}
	return list, nil
}

func (r *MemoryRecipes) FindByID(ctx context.Context, id uuid.UUID) (models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return models.Recipe{}, err
	}

	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.recipes[id]
	if !ok {
		return models.Recipe{}, serr.ErrNotFound
	}
	return cloneRecipe(rec), nil
}

func (r *MemoryRecipes) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return models.Recipe{}, err
	}

	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[recipe.OwnerID]; !ok {
		return models.Recipe{}, serr.ErrUnauthorized
	}

	now := s.now()
	recipe = cloneRecipe(recipe)
	recipe.ID = uuid.New()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	s.recipes[recipe.ID] = recipe
	s.order = append(s.order, recipe.ID)
	return cloneRecipe(recipe), nil
}

func (r *MemoryRecipes) FindByIDAndUpdate(ctx context.Context, id uuid.UUID, patch models.RecipePatch) (models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return models.Recipe{}, err
	}

	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.recipes[id]
	if !ok {
		return models.Recipe{}, serr.ErrNotFound
	}

	rec = patch.Apply(rec)
	rec.UpdatedAt = s.now()
	s.recipes[id] = rec
	return cloneRecipe(rec), nil
}

func (r *MemoryRecipes) FindByIDAndDelete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return serr.ErrNotFound
	}
	delete(s.recipes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneRecipe(r models.Recipe) models.Recipe {
	r.Ingredients = append([]string{}, r.Ingredients...)
	return r
}
