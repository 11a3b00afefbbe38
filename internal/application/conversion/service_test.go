package conversion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/pkg/errors"
)

func newTestService(t *testing.T) inbound.ConversionService {
	t.Helper()
	return NewConversionService(monitoring.NewMetricsCollector(zap.NewNop()), zap.NewNop())
}

func TestConvertStandardUnits(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Convert(context.Background(), inbound.ConversionQuery{
		Ingredient: "farine",
		Quantity:   2,
		FromUnit:   "kg",
		ToUnit:     "g",
	})
	require.NoError(t, err)
	require.NotNil(t, dto)

	assert.Equal(t, 2000.0, dto.Quantity)
	assert.Equal(t, "g", dto.Unit)
	assert.Equal(t, "exact", dto.Confidence)
	assert.False(t, dto.IsApproximate)
}

func TestConvertInformalEquivalence(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Convert(context.Background(), inbound.ConversionQuery{
		Ingredient: "Tomate",
		Quantity:   3,
		FromUnit:   "pièce",
		ToUnit:     "g",
	})
	require.NoError(t, err)
	require.NotNil(t, dto)

	assert.Equal(t, "g", dto.Unit)
	assert.Equal(t, "high", dto.Confidence)
	assert.True(t, dto.IsApproximate)
	assert.Greater(t, dto.Quantity, 0.0)
}

func TestConvertUnknownPairReturnsNil(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Convert(context.Background(), inbound.ConversionQuery{
		Ingredient: "licorne",
		Quantity:   1,
		FromUnit:   "pièce",
		ToUnit:     "g",
	})
	require.NoError(t, err)
	assert.Nil(t, dto, "an unknown pair is an answer, not an error")
}

func TestConvertValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Convert(context.Background(), inbound.ConversionQuery{
		Quantity: 1,
		FromUnit: "g",
		ToUnit:   "kg",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestListEquivalences(t *testing.T) {
	svc := newTestService(t)

	dtos, err := svc.ListEquivalences(context.Background(), "TOMATE")
	require.NoError(t, err)
	require.NotEmpty(t, dtos)

	for _, dto := range dtos {
		assert.Equal(t, "tomate", dto.Ingredient)
		assert.NotEmpty(t, dto.Unit)
	}
}

func TestListEquivalencesUnknownIngredient(t *testing.T) {
	svc := newTestService(t)

	dtos, err := svc.ListEquivalences(context.Background(), "licorne")
	require.NoError(t, err)
	assert.Empty(t, dtos)
}
