// Package conversion provides the application layer over the unit
// equivalence table and converter.
package conversion

import (
	"context"

	"github.com/miambidi/mealplan/internal/application/validation"
	"github.com/miambidi/mealplan/internal/domain/measure"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"go.uber.org/zap"
)

// ConversionService implements the conversion use cases
type ConversionService struct {
	metrics   *monitoring.MetricsCollector
	validator *validation.Validator
	logger    *zap.Logger
}

// NewConversionService creates a new conversion service
func NewConversionService(metrics *monitoring.MetricsCollector, logger *zap.Logger) inbound.ConversionService {
	return &ConversionService{
		metrics:   metrics,
		validator: validation.New(),
		logger:    logger.Named("conversion-service"),
	}
}

// Convert resolves a quantity of an ingredient from one unit to another
func (s *ConversionService) Convert(ctx context.Context, query inbound.ConversionQuery) (*inbound.ConversionDTO, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, err
	}

	result := measure.FindEquivalence(query.Ingredient, query.Quantity, query.FromUnit, query.ToUnit)
	if result == nil {
		s.metrics.RecordConversion("unknown")
		s.logger.Debug("No equivalence path",
			zap.String("ingredient", query.Ingredient),
			zap.String("from", query.FromUnit),
			zap.String("to", query.ToUnit),
		)
		return nil, nil
	}

	s.metrics.RecordConversion(outcomeFor(result.Confidence))

	return &inbound.ConversionDTO{
		Quantity:      result.Quantity,
		Unit:          result.Unit,
		Confidence:    string(result.Confidence),
		IsApproximate: result.IsApproximate,
		Description:   result.Description,
	}, nil
}

// ListEquivalences returns every informal equivalence recorded for an
// ingredient
func (s *ConversionService) ListEquivalences(ctx context.Context, ingredientName string) ([]inbound.EquivalenceDTO, error) {
	equivalences := measure.AllEquivalences(ingredientName)

	dtos := make([]inbound.EquivalenceDTO, 0, len(equivalences))
	for _, eq := range equivalences {
		dtos = append(dtos, inbound.EquivalenceDTO{
			Ingredient:  eq.Ingredient,
			Unit:        eq.Unit,
			Weight:      eq.Weight,
			Count:       eq.Count,
			Description: eq.Description,
			Approximate: eq.Approximate,
		})
	}
	return dtos, nil
}

// outcomeFor maps a confidence level back to the resolution path that
// produced it. The converter assigns each path a distinct level.
func outcomeFor(c measure.Confidence) string {
	switch c {
	case measure.ConfidenceExact:
		return "standard"
	case measure.ConfidenceMedium:
		return "density"
	default:
		return "informal"
	}
}
