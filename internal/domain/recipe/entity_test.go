package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	t.Run("ValidRecipe", func(t *testing.T) {
		r, err := NewRecipe("Ndolé", "Plat national au plantain")
		require.NoError(t, err)

		assert.Equal(t, "Ndolé", r.Name())
		assert.Equal(t, 1, r.Servings())
		assert.Zero(t, r.Rating())
		assert.Empty(t, r.Requirements())
	})

	t.Run("NameTooShort", func(t *testing.T) {
		_, err := NewRecipe("N", "")
		assert.ErrorIs(t, err, ErrNameTooShort)
	})

	t.Run("NameTooLong", func(t *testing.T) {
		_, err := NewRecipe(string(make([]byte, 201)), "")
		assert.ErrorIs(t, err, ErrNameTooLong)
	})
}

func TestRecipeIngredients(t *testing.T) {
	t.Run("AddValidIngredient", func(t *testing.T) {
		r, _ := NewRecipe("Salade", "")

		err := r.AddIngredient(RequiredIngredient{Name: "Tomate", Quantity: 2, Unit: "pièce"})
		require.NoError(t, err)
		assert.Len(t, r.Requirements(), 1)
	})

	t.Run("RejectUnnamedIngredient", func(t *testing.T) {
		r, _ := NewRecipe("Salade", "")

		err := r.AddIngredient(RequiredIngredient{Quantity: 2, Unit: "pièce"})
		assert.ErrorIs(t, err, ErrIngredientNameRequired)
	})

	t.Run("RejectNegativeQuantity", func(t *testing.T) {
		r, _ := NewRecipe("Salade", "")

		err := r.AddIngredient(RequiredIngredient{Name: "Tomate", Quantity: -2, Unit: "pièce"})
		assert.ErrorIs(t, err, ErrNegativeIngredientQty)
	})

	t.Run("RequirementsAreACopy", func(t *testing.T) {
		r, _ := NewRecipe("Salade", "")
		_ = r.AddIngredient(RequiredIngredient{Name: "Tomate", Quantity: 2, Unit: "pièce"})

		reqs := r.Requirements()
		reqs[0].Name = "Oignon"

		assert.Equal(t, "Tomate", r.Requirements()[0].Name)
	})
}

func TestRecipeRating(t *testing.T) {
	r, _ := NewRecipe("Salade", "")

	require.NoError(t, r.Rate(4.5))
	assert.Equal(t, 4.5, r.Rating())

	assert.ErrorIs(t, r.Rate(5.5), ErrInvalidRating)
	assert.ErrorIs(t, r.Rate(-1), ErrInvalidRating)
}

func TestRequiredIngredientHasQuantity(t *testing.T) {
	assert.True(t, RequiredIngredient{Name: "Riz", Quantity: 200, Unit: "g"}.HasQuantity())
	assert.False(t, RequiredIngredient{Name: "Sel"}.HasQuantity())
	assert.False(t, RequiredIngredient{Name: "Sel", Quantity: 2}.HasQuantity())
}
