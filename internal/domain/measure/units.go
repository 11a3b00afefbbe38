// Package measure contains the unit-equivalence table and converter. It maps
// informal French units ("1 pièce", "1 botte") to canonical weight or count,
// performs standard metric and cooking-measure arithmetic, and applies
// per-ingredient volume/weight heuristics. All tables are compiled-in,
// read-only reference data; absence of a conversion is a value (nil), never
// an error.
package measure

import (
	"github.com/miambidi/mealplan/internal/domain/ingredient"
)

// Dimension is the canonical basis a conversion ultimately resolves to.
type Dimension string

const (
	DimensionWeight Dimension = "weight" // grams
	DimensionVolume Dimension = "volume" // milliliters
	DimensionCount  Dimension = "count"  // pieces
)

// Confidence qualifies how trustworthy a conversion result is.
type Confidence string

const (
	// ConfidenceExact marks standard unit arithmetic (kg to g, l to ml).
	ConfidenceExact Confidence = "exact"
	// ConfidenceHigh marks ingredient-specific informal equivalences.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium marks density-based volume/weight heuristics.
	ConfidenceMedium Confidence = "medium"
)

// Conversion is the result of a successful unit resolution.
type Conversion struct {
	Quantity      float64
	Unit          string
	Confidence    Confidence
	IsApproximate bool
	Description   string
}

// weightFactors expresses standard weight units in grams.
var weightFactors = map[string]float64{
	"kg": 1000,
	"g":  1,
	"mg": 0.001,
}

// volumeFactors expresses standard volume and cooking units in milliliters.
var volumeFactors = map[string]float64{
	"l":                 1000,
	"dl":                100,
	"cl":                10,
	"ml":                1,
	"cuillere a cafe":   5,
	"cuillere a soupe":  15,
	"tasse":             250,
}

// unitAliases folds common shorthand onto the canonical unit labels. Lookup
// keys are normalized (see normalizeUnit), so accented input like "pièce" or
// "cuillère à soupe" already lands on the right key.
var unitAliases = map[string]string{
	"litre":       "l",
	"litres":      "l",
	"millilitre":  "ml",
	"millilitres": "ml",
	"gramme":      "g",
	"grammes":     "g",
	"kilo":        "kg",
	"kilogramme":  "kg",
	"kilogrammes": "kg",
	"c.a.c":       "cuillere a cafe",
	"cac":         "cuillere a cafe",
	"c.a.s":       "cuillere a soupe",
	"cas":         "cuillere a soupe",
	"cup":         "tasse",
	"pieces":      "piece",
	"gousses":     "gousse",
	"tranches":    "tranche",
	"bottes":      "botte",
}

// normalizeUnit canonicalizes a unit label the same way ingredient names are
// canonicalized, then folds aliases.
func normalizeUnit(unit string) string {
	normalized := ingredient.Normalize(unit)
	if canonical, ok := unitAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// StandardDimension returns the dimension of a standard unit label, or ""
// when the label is not a standard unit.
func StandardDimension(unit string) Dimension {
	u := normalizeUnit(unit)
	if _, ok := weightFactors[u]; ok {
		return DimensionWeight
	}
	if _, ok := volumeFactors[u]; ok {
		return DimensionVolume
	}
	return ""
}
