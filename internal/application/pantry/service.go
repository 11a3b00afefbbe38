// Package pantry provides the application layer for pantry stock management
// This implements the use cases defined in the inbound ports
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/miambidi/mealplan/internal/application/validation"
	"github.com/miambidi/mealplan/internal/domain/pantry"
	"github.com/miambidi/mealplan/internal/infrastructure/monitoring"
	"github.com/miambidi/mealplan/internal/ports/inbound"
	"github.com/miambidi/mealplan/internal/ports/outbound"
	"github.com/miambidi/mealplan/pkg/errors"
	"go.uber.org/zap"
)

// recommendationKeyPattern matches every cached recommendation result.
// Any pantry mutation invalidates them all.
const recommendationKeyPattern = "recommendations:*"

// PantryService implements the pantry use cases
type PantryService struct {
	repo      outbound.PantryRepository
	cache     outbound.CacheRepository
	metrics   *monitoring.MetricsCollector
	validator *validation.Validator
	logger    *zap.Logger
}

// NewPantryService creates a new pantry service
func NewPantryService(
	repo outbound.PantryRepository,
	cache outbound.CacheRepository,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) inbound.PantryService {
	return &PantryService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		validator: validation.New(),
		logger:    logger.Named("pantry-service"),
	}
}

// AddItem stocks a new pantry item
func (s *PantryService) AddItem(ctx context.Context, cmd inbound.AddPantryItemCommand) (*inbound.PantryItemDTO, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}

	s.logger.Info("Adding pantry item",
		zap.String("name", cmd.Name),
		zap.Float64("quantity", cmd.Quantity),
		zap.String("unit", cmd.Unit),
	)

	item, err := pantry.NewItem(cmd.Name, cmd.Quantity, cmd.Unit, cmd.Aliases...)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
	}

	// Merge with an existing entry for the same ingredient instead of
	// creating a duplicate row.
	existing, err := s.repo.FindByName(ctx, item.Ingredient().NormalizedName())
	if err != nil {
		return nil, errors.NewDatabaseError("look up pantry item", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("This ingredient is already stocked").
			WithMetadata("item_id", existing.ID().String())
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("create pantry item", err)
	}

	s.afterMutation(ctx)

	return itemToDTO(item), nil
}

// UpdateItem applies a partial update to a pantry item
func (s *PantryService) UpdateItem(ctx context.Context, cmd inbound.UpdatePantryItemCommand) (*inbound.PantryItemDTO, error) {
	if err := s.validator.Struct(cmd); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry item", err)
	}
	if item == nil {
		return nil, errors.NewPantryItemNotFoundError(cmd.ItemID.String())
	}

	if cmd.Name != nil {
		if err := item.Rename(*cmd.Name); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}
	if cmd.Quantity != nil {
		if err := item.SetQuantity(*cmd.Quantity); err != nil {
			return nil, errors.NewBadRequestError(err.Error()).WithCause(err)
		}
	}
	if cmd.Unit != nil {
		item.SetUnit(*cmd.Unit)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("update pantry item", err)
	}

	s.afterMutation(ctx)

	return itemToDTO(item), nil
}

// RemoveItem deletes a pantry item
func (s *PantryService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return errors.NewDatabaseError("find pantry item", err)
	}
	if item == nil {
		return errors.NewPantryItemNotFoundError(itemID.String())
	}

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return errors.NewDatabaseError("delete pantry item", err)
	}

	s.logger.Info("Removed pantry item",
		zap.String("item_id", itemID.String()),
		zap.String("name", item.Ingredient().Name()),
	)

	s.afterMutation(ctx)

	return nil
}

// GetItem returns a single pantry item
func (s *PantryService) GetItem(ctx context.Context, itemID uuid.UUID) (*inbound.PantryItemDTO, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry item", err)
	}
	if item == nil {
		return nil, errors.NewPantryItemNotFoundError(itemID.String())
	}
	return itemToDTO(item), nil
}

// ListItems returns the full pantry
func (s *PantryService) ListItems(ctx context.Context) ([]inbound.PantryItemDTO, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}

	dtos := make([]inbound.PantryItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *itemToDTO(item))
	}
	return dtos, nil
}

// afterMutation invalidates cached recommendations and refreshes the
// pantry size gauge. Failures here are logged, never surfaced: stale
// metrics or cache must not fail a write that already committed.
func (s *PantryService) afterMutation(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, recommendationKeyPattern); err != nil {
		s.logger.Warn("Failed to invalidate recommendation cache", zap.Error(err))
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Warn("Failed to refresh pantry size gauge", zap.Error(err))
		return
	}
	s.metrics.SetPantrySize(len(items))
}

func itemToDTO(item *pantry.Item) *inbound.PantryItemDTO {
	ref := item.Ingredient()
	return &inbound.PantryItemDTO{
		ID:             item.ID(),
		Name:           ref.Name(),
		NormalizedName: ref.NormalizedName(),
		Aliases:        ref.Aliases(),
		Quantity:       item.Quantity(),
		Unit:           item.Unit(),
		CreatedAt:      item.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      item.UpdatedAt().Format(time.RFC3339),
	}
}
