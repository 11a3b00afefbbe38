package inbound

import "context"

// ConversionService exposes the unit equivalence table and converter
type ConversionService interface {
	// Convert resolves a quantity of an ingredient from one unit to another.
	// A nil result with a nil error means no equivalence is known.
	Convert(ctx context.Context, query ConversionQuery) (*ConversionDTO, error)

	// ListEquivalences returns every informal equivalence recorded for an
	// ingredient, sorted by unit label.
	ListEquivalences(ctx context.Context, ingredientName string) ([]EquivalenceDTO, error)
}

// ConversionQuery defines conversion parameters
type ConversionQuery struct {
	Ingredient string  `json:"ingredient" validate:"required,min=1,max=200"`
	Quantity   float64 `json:"quantity" validate:"gte=0"`
	FromUnit   string  `json:"from_unit" validate:"required,max=50"`
	ToUnit     string  `json:"to_unit" validate:"required,max=50"`
}

// ConversionDTO is the result of a unit conversion
type ConversionDTO struct {
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	Confidence    string  `json:"confidence"`
	IsApproximate bool    `json:"is_approximate"`
	Description   string  `json:"description,omitempty"`
}

// EquivalenceDTO is one informal equivalence entry
type EquivalenceDTO struct {
	Ingredient  string  `json:"ingredient"`
	Unit        string  `json:"unit"`
	Weight      float64 `json:"weight_grams,omitempty"`
	Count       float64 `json:"count,omitempty"`
	Description string  `json:"description,omitempty"`
	Approximate bool    `json:"approximate"`
}
