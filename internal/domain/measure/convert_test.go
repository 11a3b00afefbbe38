package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEquivalenceInformal(t *testing.T) {
	t.Run("PieceToGrams", func(t *testing.T) {
		c := FindEquivalence("tomate", 2, "pièce", "g")
		require.NotNil(t, c)

		assert.Equal(t, 300.0, c.Quantity)
		assert.Equal(t, "g", c.Unit)
		assert.Equal(t, ConfidenceHigh, c.Confidence)
		assert.True(t, c.IsApproximate)
		assert.Contains(t, c.Description, "→")
	})

	t.Run("GramsToPiece", func(t *testing.T) {
		c := FindEquivalence("Tomate", 300, "g", "pièce")
		require.NotNil(t, c)
		assert.Equal(t, 2.0, c.Quantity)
	})

	t.Run("InformalToInformal", func(t *testing.T) {
		c := FindEquivalence("ail", 1, "tête", "gousse")
		require.NotNil(t, c)
		assert.Equal(t, 10.0, c.Quantity)
		assert.Equal(t, ConfidenceHigh, c.Confidence)
	})

	t.Run("AccentedIngredientNameNormalizedInternally", func(t *testing.T) {
		c := FindEquivalence("  TOMATE ", 1, "piece", "g")
		require.NotNil(t, c)
		assert.Equal(t, 150.0, c.Quantity)
	})

	t.Run("CountDimensionAgreement", func(t *testing.T) {
		c := FindEquivalence("oeuf", 2, "douzaine", "pièce")
		require.NotNil(t, c)
		assert.Equal(t, 24.0, c.Quantity)
	})

	t.Run("DimensionMismatchFallsThrough", func(t *testing.T) {
		// citron "filet" only encodes a count while "pièce" only
		// encodes a weight; the informal path must fail silently.
		assert.Nil(t, FindEquivalence("citron", 1, "filet", "pièce"))
	})

	t.Run("UnitAbsentFallsThrough", func(t *testing.T) {
		assert.Nil(t, FindEquivalence("tomate", 1, "pièce", "botte"))
	})
}

func TestFindEquivalenceStandard(t *testing.T) {
	t.Run("KilogramsToGrams", func(t *testing.T) {
		c := FindEquivalence("riz", 1, "kg", "g")
		require.NotNil(t, c)

		assert.Equal(t, 1000.0, c.Quantity)
		assert.Equal(t, "g", c.Unit)
		assert.Equal(t, ConfidenceExact, c.Confidence)
		assert.False(t, c.IsApproximate)
	})

	t.Run("VolumeChain", func(t *testing.T) {
		c := FindEquivalence("lait", 3, "cl", "ml")
		require.NotNil(t, c)
		assert.Equal(t, 30.0, c.Quantity)
	})

	t.Run("CookingMeasureToMilliliters", func(t *testing.T) {
		c := FindEquivalence("vanille", 2, "cuillère à soupe", "ml")
		require.NotNil(t, c)
		assert.Equal(t, 30.0, c.Quantity)
	})

	t.Run("WeightToVolumeIsNotStandard", func(t *testing.T) {
		assert.Nil(t, FindEquivalence("sel", 1, "kg", "l"))
	})
}

func TestFindEquivalenceDensity(t *testing.T) {
	t.Run("CupOfFlourToGrams", func(t *testing.T) {
		c := FindEquivalence("farine", 2, "tasse", "g")
		require.NotNil(t, c)

		assert.Equal(t, 240.0, c.Quantity)
		assert.Equal(t, ConfidenceMedium, c.Confidence)
		assert.True(t, c.IsApproximate)
	})

	t.Run("GramsBackToCups", func(t *testing.T) {
		c := FindEquivalence("sucre", 100, "g", "tasse")
		require.NotNil(t, c)
		assert.Equal(t, 0.5, c.Quantity)
	})

	t.Run("TablespoonOfOil", func(t *testing.T) {
		c := FindEquivalence("huile", 3, "cuillère à soupe", "g")
		require.NotNil(t, c)
		assert.Equal(t, 42.0, c.Quantity)
	})

	t.Run("UnknownIngredientHasNoDensity", func(t *testing.T) {
		assert.Nil(t, FindEquivalence("piment", 1, "tasse", "g"))
	})
}

func TestFindEquivalenceUnknown(t *testing.T) {
	assert.Nil(t, FindEquivalence("inconnu-ingredient", 1, "pièce", "g"))
	assert.Nil(t, FindEquivalence("tomate", 1, "botte", "g"))
}

func TestFindEquivalenceRoundTrip(t *testing.T) {
	pairs := []struct {
		ingredient string
		unitA      string
		unitB      string
		quantity   float64
	}{
		{"tomate", "pièce", "g", 2},
		{"carotte", "botte", "kg", 3},
		{"oeuf", "douzaine", "pièce", 1},
		{"farine", "tasse", "g", 2},
	}

	for _, p := range pairs {
		forward := FindEquivalence(p.ingredient, p.quantity, p.unitA, p.unitB)
		require.NotNil(t, forward, "%s %s→%s", p.ingredient, p.unitA, p.unitB)

		back := FindEquivalence(p.ingredient, forward.Quantity, p.unitB, p.unitA)
		require.NotNil(t, back, "%s %s→%s", p.ingredient, p.unitB, p.unitA)

		assert.InDelta(t, p.quantity, back.Quantity, 0.01,
			"round trip for %s via %s/%s", p.ingredient, p.unitA, p.unitB)
	}
}

func TestFindEquivalenceIsDeterministic(t *testing.T) {
	first := FindEquivalence("tomate", 2, "pièce", "g")
	for i := 0; i < 10; i++ {
		again := FindEquivalence("tomate", 2, "pièce", "g")
		assert.Equal(t, first, again)
	}
}

func TestCanConvert(t *testing.T) {
	assert.True(t, CanConvert("tomate", "pièce", "g"))
	assert.True(t, CanConvert("n'importe quoi", "kg", "g"))
	assert.False(t, CanConvert("inconnu-ingredient", "pièce", "g"))
}

func TestAllEquivalences(t *testing.T) {
	t.Run("KnownIngredient", func(t *testing.T) {
		entries := AllEquivalences("Carotte")
		require.NotEmpty(t, entries)

		units := make([]string, 0, len(entries))
		for _, e := range entries {
			units = append(units, e.Unit)
		}
		assert.Contains(t, units, "piece")
		assert.Contains(t, units, "botte")
		assert.Contains(t, units, "g", "standard weight entries are merged in")
	})

	t.Run("UnknownIngredient", func(t *testing.T) {
		assert.Empty(t, AllEquivalences("inconnu-ingredient"))
	})

	t.Run("SortedByUnit", func(t *testing.T) {
		entries := AllEquivalences("carotte")
		for i := 1; i < len(entries); i++ {
			assert.LessOrEqual(t, entries[i-1].Unit, entries[i].Unit)
		}
	})
}

func BenchmarkFindEquivalence(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FindEquivalence("tomate", 2, "pièce", "g")
	}
}
