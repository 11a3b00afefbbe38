package measure

import (
	"fmt"
	"math"
	"sort"

	"github.com/miambidi/mealplan/internal/domain/ingredient"
)

// FindEquivalence resolves quantity fromUnit into toUnit for the given
// ingredient. Resolution order, first success wins:
//
//  1. ingredient-specific informal lookup, both units through the
//     equivalence table, requiring dimension agreement;
//  2. standard metric/cooking unit arithmetic;
//  3. per-ingredient volume/weight density heuristic.
//
// A nil result means no conversion is known. That is a legitimate outcome
// callers must handle, not an error.
func FindEquivalence(ingredientName string, quantity float64, fromUnit, toUnit string) *Conversion {
	name := ingredient.Normalize(ingredientName)
	from := normalizeUnit(fromUnit)
	to := normalizeUnit(toUnit)

	if c := convertInformal(name, quantity, from, to); c != nil {
		return c
	}
	if c := convertStandard(quantity, from, to); c != nil {
		return c
	}
	if c := convertDensity(name, quantity, from, to); c != nil {
		return c
	}
	return nil
}

// CanConvert reports whether any conversion path exists between the two
// units for the given ingredient.
func CanConvert(ingredientName, unitA, unitB string) bool {
	return FindEquivalence(ingredientName, 1, unitA, unitB) != nil
}

// AllEquivalences returns every equivalence entry registered for the
// ingredient, sorted by unit label. The empty slice means none are known.
func AllEquivalences(ingredientName string) []Equivalence {
	units, ok := equivalences[ingredient.Normalize(ingredientName)]
	if !ok {
		return nil
	}

	entries := make([]Equivalence, 0, len(units))
	for _, e := range units {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Unit < entries[j].Unit
	})
	return entries
}

// convertInformal walks both units through the ingredient's equivalence
// table. Both entries must encode the same canonical dimension; a weight
// entry against a count entry falls through silently.
func convertInformal(name string, quantity float64, from, to string) *Conversion {
	units, ok := equivalences[name]
	if !ok {
		return nil
	}
	fromEntry, okFrom := units[from]
	toEntry, okTo := units[to]
	if !okFrom || !okTo {
		return nil
	}

	var ratio float64
	switch {
	case fromEntry.Weight > 0 && toEntry.Weight > 0:
		ratio = fromEntry.Weight / toEntry.Weight
	case fromEntry.Count > 0 && toEntry.Count > 0:
		ratio = fromEntry.Count / toEntry.Count
	default:
		return nil
	}

	return &Conversion{
		Quantity:      round2(quantity * ratio),
		Unit:          to,
		Confidence:    ConfidenceHigh,
		IsApproximate: true,
		Description:   fromEntry.Description + " → " + toEntry.Description,
	}
}

// convertStandard applies exact unit arithmetic when both units belong to
// the same standard dimension.
func convertStandard(quantity float64, from, to string) *Conversion {
	var factors map[string]float64
	switch {
	case hasKey(weightFactors, from) && hasKey(weightFactors, to):
		factors = weightFactors
	case hasKey(volumeFactors, from) && hasKey(volumeFactors, to):
		factors = volumeFactors
	default:
		return nil
	}

	return &Conversion{
		Quantity:      round2(quantity * factors[from] / factors[to]),
		Unit:          to,
		Confidence:    ConfidenceExact,
		IsApproximate: false,
		Description:   fmt.Sprintf("conversion exacte %s → %s", from, to),
	}
}

// convertDensity applies the per-ingredient gram-per-measure constants, in
// either direction (cooking volume to weight, or weight back to a cooking
// volume).
func convertDensity(name string, quantity float64, from, to string) *Conversion {
	grams, ok := densityTable[name]
	if !ok {
		return nil
	}

	if perMeasure, volumeSide := grams[from]; volumeSide && hasKey(weightFactors, to) {
		converted := quantity * perMeasure / weightFactors[to]
		return &Conversion{
			Quantity:      round2(converted),
			Unit:          to,
			Confidence:    ConfidenceMedium,
			IsApproximate: true,
			Description:   fmt.Sprintf("1 %s de %s ≈ %g g", from, name, perMeasure),
		}
	}

	if perMeasure, volumeSide := grams[to]; volumeSide && hasKey(weightFactors, from) {
		converted := quantity * weightFactors[from] / perMeasure
		return &Conversion{
			Quantity:      round2(converted),
			Unit:          to,
			Confidence:    ConfidenceMedium,
			IsApproximate: true,
			Description:   fmt.Sprintf("1 %s de %s ≈ %g g", to, name, perMeasure),
		}
	}

	return nil
}

func hasKey(m map[string]float64, key string) bool {
	_, ok := m[key]
	return ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
