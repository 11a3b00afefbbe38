package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for the recipe catalog
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	RateRecipe(ctx context.Context, recipeID uuid.UUID, rating float64) error
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, params PaginationParams) (*RecipeList, error)
	SearchRecipes(ctx context.Context, query SearchQuery) (*RecipeList, error)
}

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	Name        string                    `json:"name" validate:"required,min=2,max=200"`
	Description string                    `json:"description" validate:"max=2000"`
	Servings    int                       `json:"servings" validate:"omitempty,gte=1,lte=50"`
	Ingredients []RecipeIngredientCommand `json:"ingredients" validate:"dive"`
}

// UpdateRecipeCommand contains partial updates for a recipe
type UpdateRecipeCommand struct {
	RecipeID    uuid.UUID                  `json:"-" validate:"required"`
	Name        *string                    `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string                    `json:"description" validate:"omitempty,max=2000"`
	Servings    *int                       `json:"servings" validate:"omitempty,gte=1,lte=50"`
	Ingredients *[]RecipeIngredientCommand `json:"ingredients" validate:"omitempty,dive"`
}

// RecipeIngredientCommand describes one required ingredient
type RecipeIngredientCommand struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"max=50"`
}

// SearchQuery defines search parameters
type SearchQuery struct {
	Text       string           `json:"text" validate:"max=200"`
	Ingredient string           `json:"ingredient" validate:"max=200"`
	MinRating  *float64         `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
	Pagination PaginationParams `json:"pagination"`
}

// PaginationParams for paginated queries
type PaginationParams struct {
	Page     int    `json:"page" validate:"omitempty,gte=1"`
	PageSize int    `json:"page_size" validate:"omitempty,gte=1,lte=100"`
	OrderBy  string `json:"order_by" validate:"omitempty,oneof=name rating created_at"`
	Order    string `json:"order" validate:"omitempty,oneof=asc desc"`
}

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Servings    int                   `json:"servings"`
	Rating      float64               `json:"rating"`
	Ingredients []RecipeIngredientDTO `json:"ingredients"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// RecipeIngredientDTO for required ingredient data
type RecipeIngredientDTO struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// RecipeList for paginated results
type RecipeList struct {
	Recipes    []RecipeDTO `json:"recipes"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
