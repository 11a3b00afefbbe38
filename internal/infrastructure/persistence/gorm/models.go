// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PantryItemModel represents the GORM model for pantry stock
type PantryItemModel struct {
	ID             uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Name           string      `gorm:"type:varchar(255);not null"`
	NormalizedName string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Aliases        StringSlice `gorm:"type:json"`
	Quantity       float64     `gorm:"default:0"`
	Unit           string      `gorm:"type:varchar(50)"`
	CreatedAt      time.Time   `gorm:"index"`
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID        `gorm:"type:char(36);primaryKey"`
	Name        string           `gorm:"type:varchar(255);not null;index"`
	Description string           `gorm:"type:text"`
	Ingredients IngredientsField `gorm:"type:json"`
	Rating      float64          `gorm:"default:0;index"`
	Servings    int              `gorm:"default:1"`
	CreatedAt   time.Time        `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// IngredientRecord is the JSON shape of one required ingredient
type IngredientRecord struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// IngredientsField custom type for the required ingredient list
type IngredientsField []IngredientRecord

// Scan implements the sql.Scanner interface
func (f *IngredientsField) Scan(value interface{}) error {
	if value == nil {
		*f = IngredientsField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("cannot scan %T into IngredientsField", value)
	}
}

// Value implements the driver.Valuer interface
func (f IngredientsField) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "[]", nil
	}
	return json.Marshal(f)
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for PantryItemModel
func (p *PantryItemModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (PantryItemModel) TableName() string {
	return "pantry_items"
}

func (RecipeModel) TableName() string {
	return "recipes"
}
