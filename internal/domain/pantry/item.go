// Package pantry contains the domain logic for household pantry stock.
package pantry

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/miambidi/mealplan/internal/domain/ingredient"
)

// Domain errors for pantry operations
var (
	ErrNegativeQuantity = errors.New("pantry quantity cannot be negative")
	ErrItemNotFound     = errors.New("pantry item not found")
)

// StockItem is the plain read-only shape the matching and scoring pipeline
// consumes. Quantity or Unit may legitimately be zero-valued: presence
// without quantity tracking still counts as "have it".
type StockItem struct {
	IngredientName string
	Quantity       float64
	Unit           string
}

// Item is the pantry stock aggregate. The matching core never mutates it; it
// only reads the StockItem projection.
type Item struct {
	id        uuid.UUID
	ref       ingredient.Reference
	quantity  float64
	unit      string
	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates a pantry item with a derived ingredient identity.
func NewItem(name string, quantity float64, unit string, aliases ...string) (*Item, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	ref, err := ingredient.NewReference(name, aliases...)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Item{
		id:        uuid.New(),
		ref:       ref,
		quantity:  quantity,
		unit:      unit,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Rehydrate rebuilds an item from persisted state. Derived identity fields
// are recomputed rather than trusted from storage.
func Rehydrate(id uuid.UUID, name string, quantity float64, unit string, aliases []string, createdAt, updatedAt time.Time) (*Item, error) {
	ref, err := ingredient.NewReference(name, aliases...)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		quantity = 0
	}

	return &Item{
		id:        id,
		ref:       ref,
		quantity:  quantity,
		unit:      unit,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the item identifier.
func (i *Item) ID() uuid.UUID {
	return i.id
}

// Ingredient returns the ingredient identity.
func (i *Item) Ingredient() ingredient.Reference {
	return i.ref
}

// Quantity returns the stocked quantity.
func (i *Item) Quantity() float64 {
	return i.quantity
}

// Unit returns the stocked unit label.
func (i *Item) Unit() string {
	return i.unit
}

// CreatedAt returns when the item was first stocked.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns when the item was last modified.
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// SetQuantity updates the stocked amount.
func (i *Item) SetQuantity(quantity float64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	i.quantity = quantity
	i.updatedAt = time.Now()
	return nil
}

// SetUnit updates the stocked unit label.
func (i *Item) SetUnit(unit string) {
	i.unit = unit
	i.updatedAt = time.Now()
}

// Rename changes the ingredient identity, recomputing the normalized name
// and search terms.
func (i *Item) Rename(name string) error {
	ref, err := i.ref.Rename(name)
	if err != nil {
		return err
	}
	i.ref = ref
	i.updatedAt = time.Now()
	return nil
}

// Stock returns the read-only projection consumed by the matcher.
func (i *Item) Stock() StockItem {
	return StockItem{
		IngredientName: i.ref.Name(),
		Quantity:       i.quantity,
		Unit:           i.unit,
	}
}
