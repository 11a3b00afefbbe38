// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// PantryService defines the use cases for managing the household pantry
type PantryService interface {
	// Commands - operations that modify state
	AddItem(ctx context.Context, cmd AddPantryItemCommand) (*PantryItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdatePantryItemCommand) (*PantryItemDTO, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error

	// Queries - operations that read state
	GetItem(ctx context.Context, itemID uuid.UUID) (*PantryItemDTO, error)
	ListItems(ctx context.Context) ([]PantryItemDTO, error)
}

// AddPantryItemCommand contains data for stocking a new pantry item
type AddPantryItemCommand struct {
	Name     string   `json:"name" validate:"required,min=2,max=200"`
	Aliases  []string `json:"aliases" validate:"max=20,dive,min=1,max=200"`
	Quantity float64  `json:"quantity" validate:"gte=0"`
	Unit     string   `json:"unit" validate:"max=50"`
}

// UpdatePantryItemCommand contains partial updates for a pantry item
type UpdatePantryItemCommand struct {
	ItemID   uuid.UUID `json:"-" validate:"required"`
	Name     *string   `json:"name" validate:"omitempty,min=2,max=200"`
	Quantity *float64  `json:"quantity" validate:"omitempty,gte=0"`
	Unit     *string   `json:"unit" validate:"omitempty,max=50"`
}

// PantryItemDTO is the data transfer object for pantry items
type PantryItemDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`
	Aliases        []string  `json:"aliases,omitempty"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}
