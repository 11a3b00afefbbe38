// Package recipe provides the application layer for the recipe catalog
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/miambidi/mealplan/internal/application/validation"
	"github.com/miambidi/mealplan/internal/domain/recipe"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"github.com/miambidi/mealplan/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	recommendationKeyPattern = "recommendations:*"
)

// RecipeService implements the recipe catalog use cases
type RecipeService struct {
	repo      outbound.RecipeRepository
	cache     outbound.CacheRepository
	metrics   *monitoring.MetricsCollector
	validator *validation.Validator
	logger    *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	repo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		validator: validation.New(),
		logger:    logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}

	s.logger.Info("Creating recipe",
		zap.String("name", cmd.Name),
		zap.Int("ingredients", len(cmd.Ingredients)),
	)

	entity, err := recipe.NewRecipe(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
	}

	if cmd.Servings > 0 {
		if err := entity.SetServings(cmd.Servings); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}

	for _, ing := range cmd.Ingredients {
		req := recipe.RequiredIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		}
		if err := entity.AddIngredient(req); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.metrics.RecordRecipeCreated()
	s.invalidateRecommendations(ctx)

	return entityToDTO(entity), nil
}

// UpdateRecipe applies a partial update to a recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}

	entity, err := s.repo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	if cmd.Name != nil {
		if err := entity.Rename(*cmd.Name); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}
	if cmd.Servings != nil {
		if err := entity.SetServings(*cmd.Servings); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}
	if cmd.Ingredients != nil {
		reqs := make([]recipe.RequiredIngredient, 0, len(*cmd.Ingredients))
		for _, ing := range *cmd.Ingredients {
			reqs = append(reqs, recipe.RequiredIngredient{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
			})
		}
		if err := entity.ReplaceIngredients(reqs); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.invalidateRecommendations(ctx)

	return entityToDTO(entity), nil
}

// RateRecipe records the household rating for a recipe
func (s *RecipeService) RateRecipe(ctx context.Context, recipeID uuid.UUID, rating float64) error {
	entity, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if err := entity.Rate(rating); err != nil {
		return errors.NewBadRequestError(err.Error()).WithCause(err)
	}

	if err := s.repo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update recipe", err)
	}

	// Rating feeds the priority score, so ranked results are stale now.
	s.invalidateRecommendations(ctx)

	return nil
}

// DeleteRecipe removes a recipe from the catalog
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	entity, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	if err := s.repo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.logger.Info("Deleted recipe",
		zap.String("recipe_id", recipeID.String()),
		zap.String("name", entity.Name()),
	)

	s.invalidateRecommendations(ctx)

	return nil
}

// GetRecipeByID returns a single recipe
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.repo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return entityToDTO(entity), nil
}

// ListRecipes returns a page of the catalog
func (s *RecipeService) ListRecipes(ctx context.Context, params inbound.PaginationParams) (*inbound.RecipeList, error) {
	page, pageSize := normalizePagination(params)

	entities, total, err := s.repo.FindAll(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	return buildList(entities, total, page, pageSize), nil
}

// SearchRecipes searches the catalog
func (s *RecipeService) SearchRecipes(ctx context.Context, query inbound.SearchQuery) (*inbound.RecipeList, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, err
	}

	page, pageSize := normalizePagination(query.Pagination)

	criteria := outbound.SearchCriteria{
		Query:      query.Text,
		Ingredient: query.Ingredient,
		MinRating:  query.MinRating,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
		OrderBy:    query.Pagination.OrderBy,
		OrderDir:   query.Pagination.Order,
	}

	entities, total, err := s.repo.Search(ctx, criteria)
	if err != nil {
		return nil, errors.NewDatabaseError("search recipes", err)
	}

	return buildList(entities, total, page, pageSize), nil
}

func (s *RecipeService) invalidateRecommendations(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, recommendationKeyPattern); err != nil {
		s.logger.Warn("Failed to invalidate recommendation cache", zap.Error(err))
	}
}

func normalizePagination(params inbound.PaginationParams) (page, pageSize int) {
	page = params.Page
	if page < 1 {
		page = 1
	}
	pageSize = params.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func buildList(entities []*recipe.Recipe, total, page, pageSize int) *inbound.RecipeList {
	dtos := make([]inbound.RecipeDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, *entityToDTO(entity))
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &inbound.RecipeList{
		Recipes:    dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	reqs := entity.Requirements()
	ingredients := make([]inbound.RecipeIngredientDTO, 0, len(reqs))
	for _, req := range reqs {
		ingredients = append(ingredients, inbound.RecipeIngredientDTO{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
		})
	}

	return &inbound.RecipeDTO{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Servings:    entity.Servings(),
		Rating:      entity.Rating(),
		Ingredients: ingredients,
		CreatedAt:   entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   entity.UpdatedAt().Format(time.RFC3339),
	}
}
