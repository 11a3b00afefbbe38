package gorm

import (
	"github.com/miambidi/mealplan/internal/domain/ingredient"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
)

// pantryItemToModel converts a pantry domain aggregate to its GORM model
func pantryItemToModel(item *pantry.Item) *PantryItemModel {
	ref := item.Ingredient()
	return &PantryItemModel{
		ID:             item.ID(),
		Name:           ref.Name(),
		NormalizedName: ref.NormalizedName(),
		Aliases:        StringSlice(ref.Aliases()),
		Quantity:       item.Quantity(),
		Unit:           item.Unit(),
		CreatedAt:      item.CreatedAt(),
		UpdatedAt:      item.UpdatedAt(),
	}
}

// pantryItemToDomain rebuilds the aggregate. The normalized name is
// recomputed by the domain, not read back from the row.
func pantryItemToDomain(model *PantryItemModel) (*pantry.Item, error) {
	return pantry.Rehydrate(
		model.ID,
		model.Name,
		model.Quantity,
		model.Unit,
		[]string(model.Aliases),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// recipeToModel converts a recipe domain aggregate to its GORM model
func recipeToModel(entity *recipe.Recipe) *RecipeModel {
	reqs := entity.Requirements()
	records := make(IngredientsField, 0, len(reqs))
	for _, req := range reqs {
		records = append(records, IngredientRecord{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
		})
	}

	return &RecipeModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Ingredients: records,
		Rating:      entity.Rating(),
		Servings:    entity.Servings(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// recipeToDomain rebuilds the recipe aggregate from a row
func recipeToDomain(model *RecipeModel) (*recipe.Recipe, error) {
	reqs := make([]recipe.RequiredIngredient, 0, len(model.Ingredients))
	for _, record := range model.Ingredients {
		reqs = append(reqs, recipe.RequiredIngredient{
			Name:     record.Name,
			Quantity: record.Quantity,
			Unit:     record.Unit,
		})
	}

	return recipe.Rehydrate(
		model.ID,
		model.Name,
		model.Description,
		reqs,
		model.Rating,
		model.Servings,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// normalizeLookup prepares a raw name for the normalized-name index
func normalizeLookup(name string) string {
	return ingredient.Normalize(name)
}
