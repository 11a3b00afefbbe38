package testutils

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/miambidi/mealplan/internal/domain/ingredient"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
	"github.com/miambidi/mealplan/internal/ports/outbound"
)

// FakePantryRepository is an in-memory PantryRepository. ForcedErr, when
// set, is returned from every call so error paths can be exercised.
type FakePantryRepository struct {
	mu        sync.RWMutex
	items     map[uuid.UUID]*pantry.Item
	ForcedErr error
}

// NewFakePantryRepository creates an empty in-memory pantry repository.
func NewFakePantryRepository() *FakePantryRepository {
	return &FakePantryRepository{items: make(map[uuid.UUID]*pantry.Item)}
}

func (f *FakePantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	if f.ForcedErr != nil {
		return f.ForcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID()] = item
	return nil
}

func (f *FakePantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	if f.ForcedErr != nil {
		return f.ForcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID()]; !ok {
		return pantry.ErrItemNotFound
	}
	f.items[item.ID()] = item
	return nil
}

func (f *FakePantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.ForcedErr != nil {
		return f.ForcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return pantry.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *FakePantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.items[id], nil
}

func (f *FakePantryRepository) FindByName(ctx context.Context, normalizedName string) (*pantry.Item, error) {
	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}
	want := ingredient.Normalize(normalizedName)
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, item := range f.items {
		if item.Ingredient().NormalizedName() == want {
			return item, nil
		}
	}
	return nil, nil
}

func (f *FakePantryRepository) FindAll(ctx context.Context) ([]*pantry.Item, error) {
	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*pantry.Item, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Ingredient().NormalizedName() < out[j].Ingredient().NormalizedName()
	})
	return out, nil
}

// FakeRecipeRepository is an in-memory RecipeRepository.
type FakeRecipeRepository struct {
	mu        sync.RWMutex
	recipes   map[uuid.UUID]*recipe.Recipe
	order     []uuid.UUID
	ForcedErr error
}

// NewFakeRecipeRepository creates an empty in-memory recipe repository.
func NewFakeRecipeRepository() *FakeRecipeRepository {
	return &FakeRecipeRepository{recipes: make(map[uuid.UUID]*recipe.Recipe)}
}

func (f *FakeRecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	if f.ForcedErr != nil {
		return f.ForcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[rec.ID()] = rec
	f.order = append(f.order, rec.ID())
	return nil
}

func (f *FakeRecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	if f.ForcedErr != nil {
		return f.ForcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[rec.ID()]; !ok {
		return recipe.ErrRecipeNotFound
	}
	f.recipes[rec.ID()] = rec
	return nil
}

func (f *FakeRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.ForcedErr != nil {
		return f.ForcedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[id]; !ok {
		return recipe.ErrRecipeNotFound
	}
	delete(f.recipes, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *FakeRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.recipes[id], nil
}

func (f *FakeRecipeRepository) FindAll(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int, error) {
	if f.ForcedErr != nil {
		return nil, 0, f.ForcedErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	total := len(f.order)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	out := make([]*recipe.Recipe, 0, end-offset)
	for _, id := range f.order[offset:end] {
		out = append(out, f.recipes[id])
	}
	return out, total, nil
}

func (f *FakeRecipeRepository) Search(ctx context.Context, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	if f.ForcedErr != nil {
		return nil, 0, f.ForcedErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var matched []*recipe.Recipe
	for _, id := range f.order {
		rec := f.recipes[id]
		if criteria.Query != "" &&
			!strings.Contains(strings.ToLower(rec.Name()), strings.ToLower(criteria.Query)) &&
			!strings.Contains(strings.ToLower(rec.Description()), strings.ToLower(criteria.Query)) {
			continue
		}
		if criteria.MinRating != nil && rec.Rating() < *criteria.MinRating {
			continue
		}
		if criteria.Ingredient != "" && !requiresIngredient(rec, criteria.Ingredient) {
			continue
		}
		matched = append(matched, rec)
	}
	total := len(matched)
	if criteria.Offset >= total {
		return nil, total, nil
	}
	end := criteria.Offset + criteria.Limit
	if criteria.Limit <= 0 || end > total {
		end = total
	}
	return matched[criteria.Offset:end], total, nil
}

func (f *FakeRecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if f.ForcedErr != nil {
		return nil, f.ForcedErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*recipe.Recipe
	for _, id := range ids {
		if rec, ok := f.recipes[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func requiresIngredient(rec *recipe.Recipe, name string) bool {
	want := ingredient.Normalize(name)
	for _, req := range rec.Requirements() {
		if strings.Contains(ingredient.Normalize(req.Name), want) {
			return true
		}
	}
	return false
}
