package pantry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/memory"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/pkg/errors"
	"github.com/miambidi/mealplan/test/testutils"
)

func newTestService(t *testing.T) (inbound.PantryService, *testutils.FakePantryRepository) {
	t.Helper()
	repo := testutils.NewFakePantryRepository()
	svc := NewPantryService(repo, memory.NewCacheRepository(), monitoring.NewMetricsCollector(zap.NewNop()), zap.NewNop())
	return svc, repo
}

func TestAddItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.AddItem(ctx, inbound.AddPantryItemCommand{
		Name:     "Huile d'Arachide",
		Aliases:  []string{"huile"},
		Quantity: 1,
		Unit:     "l",
	})
	require.NoError(t, err)

	assert.Equal(t, "Huile d'Arachide", dto.Name)
	assert.Equal(t, "huile d'arachide", dto.NormalizedName)
	assert.Equal(t, []string{"huile"}, dto.Aliases)
	assert.Equal(t, 1.0, dto.Quantity)
	assert.NotEqual(t, uuid.Nil, dto.ID)
}

func TestAddItemRejectsDuplicateIngredient(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: "Tomate", Quantity: 6, Unit: "pièce"})
	require.NoError(t, err)

	// Same identity after normalization, different surface form.
	_, err = svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: "  TOMATE ", Quantity: 2, Unit: "kg"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeConflict, errors.GetCode(err))
}

func TestAddItemValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: "X", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))

	_, err = svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: "Riz", Quantity: -1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestUpdateItemPartial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: "Riz", Quantity: 2, Unit: "kg"})
	require.NoError(t, err)

	qty := 5.0
	updated, err := svc.UpdateItem(ctx, inbound.UpdatePantryItemCommand{ItemID: dto.ID, Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 5.0, updated.Quantity)
	assert.Equal(t, "Riz", updated.Name, "name stays untouched on a quantity-only update")
	assert.Equal(t, "kg", updated.Unit)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	qty := 1.0
	_, err := svc.UpdateItem(context.Background(), inbound.UpdatePantryItemCommand{ItemID: uuid.New(), Quantity: &qty})
	require.Error(t, err)
	assert.Equal(t, errors.CodePantryItemNotFound, errors.GetCode(err))
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: "Sel", Quantity: 500, Unit: "g"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, dto.ID))

	_, err = svc.GetItem(ctx, dto.ID)
	assert.Equal(t, errors.CodePantryItemNotFound, errors.GetCode(err))

	err = svc.RemoveItem(ctx, dto.ID)
	assert.Equal(t, errors.CodePantryItemNotFound, errors.GetCode(err))
}

func TestListItemsSortedByNormalizedName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Tomate", "Ail", "Oignon"} {
		_, err := svc.AddItem(ctx, inbound.AddPantryItemCommand{Name: name, Quantity: 1, Unit: "pièce"})
		require.NoError(t, err)
	}

	items, err := svc.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Ail", items[0].Name)
	assert.Equal(t, "Oignon", items[1].Name)
	assert.Equal(t, "Tomate", items[2].Name)
}

func TestRepositoryFailureSurfacesAsDatabaseError(t *testing.T) {
	svc, repo := newTestService(t)
	repo.ForcedErr = assert.AnError

	_, err := svc.ListItems(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
}
