// Package recommendation provides the application layer for ranking the
// recipe catalog against the current pantry.
package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/miambidi/mealplan/internal/application/validation"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/domain/recipe"
	"github.com/miambidi/mealplan/internal/domain/recommendation"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"github.com/miambidi/mealplan/pkg/errors"
	"go.uber.org/zap"
)

// catalogPageSize bounds how many recipes are loaded per repository call
// while scoring the full catalog.
const catalogPageSize = 500

// cacheTTL is short on purpose. Mutations invalidate eagerly, the TTL
// only caps staleness if an invalidation is missed.
const cacheTTL = 5 * time.Minute

// RecommendationService implements the recommendation use case
type RecommendationService struct {
	pantryRepo outbound.PantryRepository
	recipeRepo outbound.RecipeRepository
	cache      outbound.CacheRepository
	metrics    *monitoring.MetricsCollector
	validator  *validation.Validator
	logger     *zap.Logger
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	pantryRepo outbound.PantryRepository,
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) inbound.RecommendationService {
	return &RecommendationService{
		pantryRepo: pantryRepo,
		recipeRepo: recipeRepo,
		cache:      cache,
		metrics:    metrics,
		validator:  validation.New(),
		logger:     logger.Named("recommendation-service"),
	}
}

// Recommend scores the catalog against the pantry and returns the top
// matches, best first
func (s *RecommendationService) Recommend(ctx context.Context, query inbound.RecommendationQuery) ([]inbound.RecommendationDTO, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, err
	}

	topN := query.TopN
	if topN <= 0 {
		topN = recommendation.DefaultTopN
	}

	cacheKey := fmt.Sprintf("recommendations:top%d", topN)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var dtos []inbound.RecommendationDTO
		if err := json.Unmarshal(cached, &dtos); err == nil {
			s.metrics.RecordRecommendationCacheHit()
			return dtos, nil
		}
		s.logger.Warn("Discarding undecodable cached recommendations", zap.String("key", cacheKey))
	}
	s.metrics.RecordRecommendationCacheMiss()

	started := time.Now()

	items, err := s.pantryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}

	stock := make([]pantry.StockItem, 0, len(items))
	for _, item := range items {
		stock = append(stock, item.Stock())
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	scored := recommendation.Recommend(stock, catalog, topN)
	s.metrics.RecordRecommendation(time.Since(started))

	dtos := make([]inbound.RecommendationDTO, 0, len(scored))
	for _, sc := range scored {
		dtos = append(dtos, inbound.RecommendationDTO{
			RecipeID:           sc.Recipe.ID(),
			Name:               sc.Recipe.Name(),
			Rating:             sc.Recipe.Rating(),
			MatchCount:         sc.MatchCount,
			MissingCount:       sc.MissingCount,
			MatchedIngredients: sc.MatchedIngredients,
			MissingIngredients: sc.MissingIngredients,
			MatchPercentage:    float64(sc.MatchPercentage),
			AvailabilityRatio:  sc.AvailabilityRatio,
			PriorityScore:      sc.PriorityScore,
		})
	}

	s.logger.Info("Computed recommendations",
		zap.Int("pantry_items", len(stock)),
		zap.Int("catalog_size", len(catalog)),
		zap.Int("results", len(dtos)),
		zap.Duration("elapsed", time.Since(started)),
	)

	if payload, err := json.Marshal(dtos); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache recommendations", zap.Error(err))
		}
	}

	return dtos, nil
}

// loadCatalog pages through the full recipe catalog
func (s *RecommendationService) loadCatalog(ctx context.Context) ([]*recipe.Recipe, error) {
	var catalog []*recipe.Recipe
	offset := 0
	for {
		page, total, err := s.recipeRepo.FindAll(ctx, offset, catalogPageSize)
		if err != nil {
			return nil, errors.NewDatabaseError("list recipes", err)
		}
		catalog = append(catalog, page...)
		offset += len(page)
		if len(page) == 0 || offset >= total {
			return catalog, nil
		}
	}
}
