// Package testutils provides test data factories and fake repositories for
// consistent test data generation.
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
)

// commonIngredients are ingredient names that show up in a typical
// Cameroonian-French household pantry. Factories draw from this list so
// generated pantries and recipes overlap enough to exercise the matcher.
var commonIngredients = []string{
	"Tomate", "Oignon", "Ail", "Riz", "Plantain", "Huile d'arachide",
	"Sel", "Poivre", "Cube assaisonnement", "Gingembre", "Persil",
	"Poulet", "Poisson fumé", "Arachide", "Manioc",
}

var commonUnits = []string{"g", "kg", "ml", "l", "pièce", "cuillère à soupe"}

// RecipeFactory builds domain recipes with seeded fake data.
type RecipeFactory struct {
	faker *gofakeit.Faker
}

// NewRecipeFactory creates a recipe factory with a seeded faker so runs
// are reproducible.
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Recipe builds a valid recipe with the given number of random ingredients.
func (f *RecipeFactory) Recipe(ingredientCount int) *recipe.Recipe {
	r, err := recipe.NewRecipe(
		fmt.Sprintf("%s de %s", f.faker.Dinner(), f.faker.FirstName()),
		f.faker.Sentence(8),
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced an invalid recipe: %v", err))
	}
	for i := 0; i < ingredientCount; i++ {
		req := recipe.RequiredIngredient{
			Name:     f.faker.RandomString(commonIngredients),
			Quantity: float64(f.faker.Number(1, 500)),
			Unit:     f.faker.RandomString(commonUnits),
		}
		if err := r.AddIngredient(req); err != nil {
			panic(fmt.Sprintf("factory produced an invalid ingredient: %v", err))
		}
	}
	if err := r.Rate(float64(f.faker.Number(10, 50)) / 10); err != nil {
		panic(fmt.Sprintf("factory produced an invalid rating: %v", err))
	}
	return r
}

// RecipeBuilder provides a fluent interface for building test recipes.
type RecipeBuilder struct {
	name        string
	description string
	rating      float64
	servings    int
	ingredients []recipe.RequiredIngredient
	createdAt   time.Time
}

// NewRecipeBuilder creates a recipe builder with sensible defaults.
func NewRecipeBuilder() *RecipeBuilder {
	return &RecipeBuilder{
		name:        "Recette de test",
		description: "Une recette construite pour les tests",
		rating:      4.0,
		servings:    4,
		createdAt:   time.Now().UTC(),
	}
}

// WithName sets the recipe name.
func (b *RecipeBuilder) WithName(name string) *RecipeBuilder {
	b.name = name
	return b
}

// WithRating sets the recipe rating.
func (b *RecipeBuilder) WithRating(rating float64) *RecipeBuilder {
	b.rating = rating
	return b
}

// WithServings sets the recipe servings.
func (b *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	b.servings = servings
	return b
}

// WithIngredient appends a required ingredient.
func (b *RecipeBuilder) WithIngredient(name string, quantity float64, unit string) *RecipeBuilder {
	b.ingredients = append(b.ingredients, recipe.RequiredIngredient{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	})
	return b
}

// Build constructs the recipe, panicking on invalid inputs so broken
// test setup fails loudly.
func (b *RecipeBuilder) Build() *recipe.Recipe {
	r, err := recipe.Rehydrate(
		uuid.New(), b.name, b.description, b.ingredients,
		b.rating, b.servings, b.createdAt, b.createdAt,
	)
	if err != nil {
		panic(fmt.Sprintf("recipe builder: %v", err))
	}
	return r
}

// PantryFactory builds pantry items with seeded fake data.
type PantryFactory struct {
	faker *gofakeit.Faker
}

// NewPantryFactory creates a pantry factory with a seeded faker.
func NewPantryFactory(seed int64) *PantryFactory {
	return &PantryFactory{faker: gofakeit.New(seed)}
}

// Item builds a valid pantry item with a random common ingredient.
func (f *PantryFactory) Item() *pantry.Item {
	item, err := pantry.NewItem(
		f.faker.RandomString(commonIngredients),
		float64(f.faker.Number(1, 1000)),
		f.faker.RandomString(commonUnits),
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced an invalid pantry item: %v", err))
	}
	return item
}

// NamedItem builds a pantry item with the given identity.
func NamedItem(name string, quantity float64, unit string, aliases ...string) *pantry.Item {
	item, err := pantry.NewItem(name, quantity, unit, aliases...)
	if err != nil {
		panic(fmt.Sprintf("pantry item %q: %v", name, err))
	}
	return item
}
