package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"gorm.io/gorm"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Create creates a new pantry item
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	model := pantryItemToModel(item)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update updates an existing pantry item
func (r *PantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	model := pantryItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}

// Delete deletes a pantry item by ID (soft delete)
func (r *PantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PantryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}

// FindByID finds a pantry item by ID. A missing row returns nil, nil.
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	var model PantryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return pantryItemToDomain(&model)
}

// FindByName resolves an item by its normalized ingredient name.
// Raw names are normalized before the lookup so callers may pass either.
func (r *PantryRepository) FindByName(ctx context.Context, name string) (*pantry.Item, error) {
	var model PantryItemModel

	result := r.db.WithContext(ctx).First(&model, "normalized_name = ?", normalizeLookup(name))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return pantryItemToDomain(&model)
}

// FindAll returns the full pantry ordered by name
func (r *PantryRepository) FindAll(ctx context.Context) ([]*pantry.Item, error) {
	var models []PantryItemModel

	result := r.db.WithContext(ctx).Order("normalized_name ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*pantry.Item, 0, len(models))
	for i := range models {
		item, err := pantryItemToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
