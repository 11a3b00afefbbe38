// Package recipe contains the domain logic for the recipe catalog.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the catalog aggregate. The recommendation core consumes it
// read-only through the Requirements projection.
type Recipe struct {
	id          uuid.UUID
	name        string
	description string
	ingredients []RequiredIngredient
	rating      float64
	servings    int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewRecipe creates a recipe with validation.
func NewRecipe(name, description string) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Recipe{
		id:          uuid.New(),
		name:        name,
		description: description,
		servings:    1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Rehydrate rebuilds a recipe from persisted state.
func Rehydrate(id uuid.UUID, name, description string, ingredients []RequiredIngredient, rating float64, servings int, createdAt, updatedAt time.Time) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if servings <= 0 {
		servings = 1
	}

	return &Recipe{
		id:          id,
		name:        name,
		description: description,
		ingredients: append([]RequiredIngredient(nil), ingredients...),
		rating:      rating,
		servings:    servings,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the recipe identifier.
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe description.
func (r *Recipe) Description() string {
	return r.description
}

// Rating returns the household rating, 0 when unrated.
func (r *Recipe) Rating() float64 {
	return r.rating
}

// Servings returns how many servings the recipe yields.
func (r *Recipe) Servings() int {
	return r.servings
}

// CreatedAt returns when the recipe was created.
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last modified.
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// Requirements returns the required ingredients, read-only.
func (r *Recipe) Requirements() []RequiredIngredient {
	return append([]RequiredIngredient(nil), r.ingredients...)
}

// Rename updates the recipe name with validation.
func (r *Recipe) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	r.name = name
	r.updatedAt = time.Now()
	return nil
}

// AddIngredient appends a required ingredient.
func (r *Recipe) AddIngredient(req RequiredIngredient) error {
	if err := req.Validate(); err != nil {
		return err
	}
	r.ingredients = append(r.ingredients, req)
	r.updatedAt = time.Now()
	return nil
}

// ReplaceIngredients swaps the full requirement list.
func (r *Recipe) ReplaceIngredients(reqs []RequiredIngredient) error {
	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			return err
		}
	}
	r.ingredients = append([]RequiredIngredient(nil), reqs...)
	r.updatedAt = time.Now()
	return nil
}

// Rate sets the household rating.
func (r *Recipe) Rate(rating float64) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}
	r.rating = rating
	r.updatedAt = time.Now()
	return nil
}

// SetServings updates the serving count.
func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	r.servings = servings
	r.updatedAt = time.Now()
	return nil
}

func validateName(name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 200 {
		return ErrNameTooLong
	}
	return nil
}
