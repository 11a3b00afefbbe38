// Package recommendation contains the availability matcher and the recipe
// recommendation scorer. Both are pure functions over pantry stock, the
// recipe catalog and the static unit-equivalence table.
package recommendation

import (
	"github.com/miambidi/mealplan/internal/domain/ingredient"
	"github.com/miambidi/mealplan/internal/domain/measure"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
)

// Availability is the tri-state outcome of matching one requirement against
// one stock item. NoMatch means the pair is not even a candidate (names do
// not match).
type Availability int

const (
	NoMatch Availability = iota
	Insufficient
	// Unknown means the names match but the units cannot be reconciled.
	// The scorer counts Unknown as available: the recommendation flow
	// prefers false positives over hiding a recipe the household could
	// probably cook.
	Unknown
	Sufficient
)

// String returns a stable label for logging and API payloads.
func (a Availability) String() string {
	switch a {
	case Insufficient:
		return "insufficient"
	case Unknown:
		return "unknown"
	case Sufficient:
		return "sufficient"
	default:
		return "no_match"
	}
}

// Satisfied reports whether the scorer counts this outcome as "have it".
func (a Availability) Satisfied() bool {
	return a == Sufficient || a == Unknown
}

// Match determines whether a stock item covers a recipe requirement.
//
// Names are compared with the loose bidirectional substring policy. When
// both sides track quantities, equal units compare directly and differing
// units go through the converter; a conversion the table does not know
// yields Unknown. When either side does not track a quantity, a name match
// alone is Sufficient.
func Match(required recipe.RequiredIngredient, available pantry.StockItem) Availability {
	if !ingredient.NamesMatch(required.Name, available.IngredientName) {
		return NoMatch
	}

	if !required.HasQuantity() || available.Quantity <= 0 || available.Unit == "" {
		return Sufficient
	}

	if ingredient.Normalize(available.Unit) == ingredient.Normalize(required.Unit) {
		if available.Quantity >= required.Quantity {
			return Sufficient
		}
		return Insufficient
	}

	converted := measure.FindEquivalence(required.Name, available.Quantity, available.Unit, required.Unit)
	if converted == nil {
		return Unknown
	}
	if converted.Quantity >= required.Quantity {
		return Sufficient
	}
	return Insufficient
}
