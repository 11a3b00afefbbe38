package recommendation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/infrastructure/persistence/memory"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"github.com/miambidi/mealplan/pkg/errors"
	"github.com/miambidi/mealplan/test/testutils"
)

type fixture struct {
	svc        inbound.RecommendationService
	pantryRepo *testutils.FakePantryRepository
	recipeRepo *testutils.FakeRecipeRepository
	cache      outbound.CacheRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		pantryRepo: testutils.NewFakePantryRepository(),
		recipeRepo: testutils.NewFakeRecipeRepository(),
		cache:      memory.NewCacheRepository(),
	}
	f.svc = NewRecommendationService(
		f.pantryRepo, f.recipeRepo, f.cache,
		monitoring.NewMetricsCollector(zap.NewNop()), zap.NewNop(),
	)
	return f
}

func (f *fixture) stock(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, f.pantryRepo.Create(context.Background(), testutils.NamedItem(name, 10, "pièce")))
	}
}

func TestRecommendRanksFullMatchesFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stock(t, "Tomate", "Oignon", "Riz")

	full := testutils.NewRecipeBuilder().
		WithName("Riz sauté").
		WithIngredient("Riz", 300, "g").
		WithIngredient("Tomate", 2, "pièce").
		WithIngredient("Oignon", 1, "pièce").
		Build()
	partial := testutils.NewRecipeBuilder().
		WithName("Poulet rôti").
		WithIngredient("Poulet", 1, "pièce").
		WithIngredient("Oignon", 2, "pièce").
		Build()
	none := testutils.NewRecipeBuilder().
		WithName("Gâteau au chocolat").
		WithIngredient("Chocolat", 200, "g").
		WithIngredient("Farine", 250, "g").
		Build()

	require.NoError(t, f.recipeRepo.Create(ctx, none))
	require.NoError(t, f.recipeRepo.Create(ctx, partial))
	require.NoError(t, f.recipeRepo.Create(ctx, full))

	got, err := f.svc.Recommend(ctx, inbound.RecommendationQuery{})
	require.NoError(t, err)

	// The chocolate cake shares nothing with the pantry and is dropped.
	require.Len(t, got, 2)

	assert.Equal(t, "Riz sauté", got[0].Name)
	assert.Equal(t, 3, got[0].MatchCount)
	assert.Equal(t, 0, got[0].MissingCount)
	assert.Equal(t, 100.0, got[0].MatchPercentage)

	assert.Equal(t, "Poulet rôti", got[1].Name)
	assert.Equal(t, 1, got[1].MatchCount)
	assert.ElementsMatch(t, []string{"Poulet"}, got[1].MissingIngredients)

	assert.Greater(t, got[0].PriorityScore, got[1].PriorityScore)
}

func TestRecommendHonorsTopN(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stock(t, "Tomate")

	for i := 0; i < 5; i++ {
		rec := testutils.NewRecipeBuilder().
			WithName(fmt.Sprintf("Plat tomate %d", i)).
			WithIngredient("Tomate", 1, "pièce").
			Build()
		require.NoError(t, f.recipeRepo.Create(ctx, rec))
	}

	got, err := f.svc.Recommend(ctx, inbound.RecommendationQuery{TopN: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecommendValidatesTopN(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Recommend(context.Background(), inbound.RecommendationQuery{TopN: 500})
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestRecommendServesCachedResultUntilInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stock(t, "Tomate")

	rec := testutils.NewRecipeBuilder().WithName("Salade de tomates").WithIngredient("Tomate", 3, "pièce").Build()
	require.NoError(t, f.recipeRepo.Create(ctx, rec))

	first, err := f.svc.Recommend(ctx, inbound.RecommendationQuery{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A new recipe is invisible while the cached result is alive.
	late := testutils.NewRecipeBuilder().WithName("Tomates farcies").WithIngredient("Tomate", 6, "pièce").Build()
	require.NoError(t, f.recipeRepo.Create(ctx, late))

	cached, err := f.svc.Recommend(ctx, inbound.RecommendationQuery{})
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	// Mutations invalidate with this exact pattern.
	require.NoError(t, f.cache.DeletePattern(ctx, "recommendations:*"))

	fresh, err := f.svc.Recommend(ctx, inbound.RecommendationQuery{})
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestRecommendEmptyCatalog(t *testing.T) {
	f := newFixture(t)
	f.stock(t, "Tomate")

	got, err := f.svc.Recommend(context.Background(), inbound.RecommendationQuery{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendPropagatesRepositoryFailure(t *testing.T) {
	f := newFixture(t)
	f.recipeRepo.ForcedErr = assert.AnError

	_, err := f.svc.Recommend(context.Background(), inbound.RecommendationQuery{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDatabaseError, errors.GetCode(err))
}
