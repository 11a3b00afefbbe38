package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/miambidi/mealplan/internal/domain/recipe"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(ctx context.Context, entity *recipe.Recipe) error {
	model := recipeToModel(entity)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update updates an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, entity *recipe.Recipe) error {
	model := recipeToModel(entity)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recipe.ErrRecipeNotFound
	}

	return nil
}

// Delete deletes a recipe by ID (soft delete)
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recipe.ErrRecipeNotFound
	}

	return nil
}

// FindByID finds a recipe by ID. A missing row returns nil, nil.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return recipeToDomain(&model)
}

// FindAll returns a page of the catalog ordered by creation time
func (r *RecipeRepository) FindAll(ctx context.Context, offset, limit int) ([]*recipe.Recipe, int, error) {
	var models []RecipeModel
	var total int64

	countResult := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&total)
	if countResult.Error != nil {
		return nil, 0, countResult.Error
	}

	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return modelsToDomain(models, int(total))
}

// Search searches the catalog by name, ingredient and rating
func (r *RecipeRepository) Search(ctx context.Context, criteria outbound.SearchCriteria) ([]*recipe.Recipe, int, error) {
	query := r.db.WithContext(ctx).Model(&RecipeModel{})

	if criteria.Query != "" {
		pattern := "%" + strings.ToLower(criteria.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if criteria.Ingredient != "" {
		// Ingredients are a JSON column; matching on the serialized text is
		// deliberately loose, the matcher does the precise work in memory.
		pattern := "%" + strings.ToLower(criteria.Ingredient) + "%"
		query = query.Where("LOWER(ingredients) LIKE ?", pattern)
	}

	if criteria.MinRating != nil {
		query = query.Where("rating >= ?", *criteria.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(criteria.OrderBy, criteria.OrderDir))

	if criteria.Limit > 0 {
		query = query.Offset(criteria.Offset).Limit(criteria.Limit)
	}

	var models []RecipeModel
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return modelsToDomain(models, int(total))
}

// FindByIDs loads a batch of recipes
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entities, _, err := modelsToDomain(models, len(models))
	return entities, err
}

// orderClause whitelists sortable columns to keep user input out of SQL
func orderClause(orderBy, orderDir string) string {
	column := "created_at"
	switch orderBy {
	case "name":
		column = "name"
	case "rating":
		column = "rating"
	case "created_at":
		column = "created_at"
	}

	dir := "DESC"
	if strings.EqualFold(orderDir, "asc") {
		dir = "ASC"
	}

	return fmt.Sprintf("%s %s", column, dir)
}

func modelsToDomain(models []RecipeModel, total int) ([]*recipe.Recipe, int, error) {
	entities := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		entity, err := recipeToDomain(&models[i])
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}
	return entities, total, nil
}
