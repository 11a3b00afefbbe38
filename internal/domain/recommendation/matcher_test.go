package recommendation

import (
	"testing"

	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		required  recipe.RequiredIngredient
		available pantry.StockItem
		expected  Availability
	}{
		{
			name:      "NamesDoNotMatch",
			required:  recipe.RequiredIngredient{Name: "Tomate", Quantity: 2, Unit: "pièce"},
			available: pantry.StockItem{IngredientName: "Oignon", Quantity: 500, Unit: "g"},
			expected:  NoMatch,
		},
		{
			name:      "SameUnitEnoughStock",
			required:  recipe.RequiredIngredient{Name: "Riz", Quantity: 200, Unit: "g"},
			available: pantry.StockItem{IngredientName: "riz", Quantity: 500, Unit: "g"},
			expected:  Sufficient,
		},
		{
			name:      "SameUnitNotEnoughStock",
			required:  recipe.RequiredIngredient{Name: "Riz", Quantity: 500, Unit: "g"},
			available: pantry.StockItem{IngredientName: "riz", Quantity: 200, Unit: "g"},
			expected:  Insufficient,
		},
		{
			name:      "UnitLabelsDifferOnlyByAccent",
			required:  recipe.RequiredIngredient{Name: "Tomate", Quantity: 2, Unit: "pièce"},
			available: pantry.StockItem{IngredientName: "Tomate", Quantity: 3, Unit: "piece"},
			expected:  Sufficient,
		},
		{
			name:      "ConvertedStockCoversRequirement",
			required:  recipe.RequiredIngredient{Name: "Tomate", Quantity: 2, Unit: "pièce"},
			available: pantry.StockItem{IngredientName: "Tomate", Quantity: 300, Unit: "g"},
			expected:  Sufficient,
		},
		{
			name:      "ConvertedStockFallsShort",
			required:  recipe.RequiredIngredient{Name: "Tomate", Quantity: 2, Unit: "pièce"},
			available: pantry.StockItem{IngredientName: "Tomate", Quantity: 100, Unit: "g"},
			expected:  Insufficient,
		},
		{
			name:      "UnknownConversion",
			required:  recipe.RequiredIngredient{Name: "Safran", Quantity: 2, Unit: "dose"},
			available: pantry.StockItem{IngredientName: "Safran", Quantity: 1, Unit: "sachet"},
			expected:  Unknown,
		},
		{
			name:      "RequirementWithoutQuantity",
			required:  recipe.RequiredIngredient{Name: "Sel"},
			available: pantry.StockItem{IngredientName: "Sel", Quantity: 500, Unit: "g"},
			expected:  Sufficient,
		},
		{
			name:      "StockWithoutQuantity",
			required:  recipe.RequiredIngredient{Name: "Persil", Quantity: 1, Unit: "botte"},
			available: pantry.StockItem{IngredientName: "Persil"},
			expected:  Sufficient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(tt.required, tt.available))
		})
	}
}

func TestAvailabilitySatisfied(t *testing.T) {
	assert.True(t, Sufficient.Satisfied())
	assert.True(t, Unknown.Satisfied(), "unknown conversions count as available by design")
	assert.False(t, Insufficient.Satisfied())
	assert.False(t, NoMatch.Satisfied())
}

func TestAvailabilityString(t *testing.T) {
	assert.Equal(t, "sufficient", Sufficient.String())
	assert.Equal(t, "insufficient", Insufficient.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "no_match", NoMatch.String())
}
