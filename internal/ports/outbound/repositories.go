// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
)

// PantryRepository defines the interface for pantry stock persistence
type PantryRepository interface {
	Create(ctx context.Context, item *pantry.Item) error
	Update(ctx context.Context, item *pantry.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error)

	// FindByName resolves an item by its normalized ingredient name.
	FindByName(ctx context.Context, normalizedName string) (*pantry.Item, error)
	FindAll(ctx context.Context) ([]*pantry.Item, error)
}

// RecipeRepository defines the interface for recipe catalog persistence
type RecipeRepository interface {
	Create(ctx context.Context, rec *recipe.Recipe) error
	Update(ctx context.Context, rec *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// Query operations
	FindAll(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]*recipe.Recipe, int, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error)
}

// SearchCriteria defines search parameters for recipes
type SearchCriteria struct {
	Query      string
	MinRating  *float64
	Ingredient string
	Offset     int
	Limit      int
	OrderBy    string
	OrderDir   string
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// DeletePattern removes every key matching the glob pattern. Used to
	// invalidate recommendation results when pantry or catalog state changes.
	DeletePattern(ctx context.Context, pattern string) error
}
