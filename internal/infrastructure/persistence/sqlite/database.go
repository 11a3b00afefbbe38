// Package sqlite provides SQLite database setup for development and tests
package sqlite

import (
	"fmt"

	gormModels "github.com/miambidi/mealplan/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.PantryItemModel{},
		&gormModels.RecipeModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a starter pantry and catalog
func SeedDatabase(db *gorm.DB) error {
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	pantry := []gormModels.PantryItemModel{
		{Name: "Tomate", NormalizedName: "tomate", Quantity: 6, Unit: "pièce"},
		{Name: "Oignon", NormalizedName: "oignon", Quantity: 4, Unit: "pièce"},
		{Name: "Riz", NormalizedName: "riz", Quantity: 2, Unit: "kg"},
		{Name: "Huile d'arachide", NormalizedName: "huile d'arachide", Aliases: gormModels.StringSlice{"huile"}, Quantity: 1, Unit: "l"},
		{Name: "Plantain", NormalizedName: "plantain", Quantity: 5, Unit: "pièce"},
		{Name: "Ail", NormalizedName: "ail", Quantity: 2, Unit: "tête"},
		{Name: "Cube assaisonnement", NormalizedName: "cube assaisonnement", Aliases: gormModels.StringSlice{"cube maggi"}, Quantity: 10, Unit: "pièce"},
		{Name: "Sel", NormalizedName: "sel"},
	}

	for i := range pantry {
		if err := db.Create(&pantry[i]).Error; err != nil {
			return fmt.Errorf("failed to create pantry item: %w", err)
		}
	}

	recipes := []gormModels.RecipeModel{
		{
			Name:        "Riz sauté aux légumes",
			Description: "Riz sauté rapide avec tomates, oignons et ail",
			Rating:      4.5,
			Servings:    4,
			Ingredients: gormModels.IngredientsField{
				{Name: "Riz", Quantity: 500, Unit: "g"},
				{Name: "Tomate", Quantity: 3, Unit: "pièce"},
				{Name: "Oignon", Quantity: 1, Unit: "pièce"},
				{Name: "Ail", Quantity: 2, Unit: "gousse"},
				{Name: "Huile", Quantity: 3, Unit: "cuillère à soupe"},
				{Name: "Sel"},
			},
		},
		{
			Name:        "Plantain mûr frit",
			Description: "Tranches de plantain dorées à la poêle",
			Rating:      4.8,
			Servings:    3,
			Ingredients: gormModels.IngredientsField{
				{Name: "Plantain", Quantity: 3, Unit: "pièce"},
				{Name: "Huile", Quantity: 0.5, Unit: "l"},
				{Name: "Sel"},
			},
		},
		{
			Name:        "Sauce tomate maison",
			Description: "Base de sauce tomate mijotée pour accompagner riz ou pâtes",
			Rating:      4.2,
			Servings:    6,
			Ingredients: gormModels.IngredientsField{
				{Name: "Tomate", Quantity: 800, Unit: "g"},
				{Name: "Oignon", Quantity: 2, Unit: "pièce"},
				{Name: "Ail", Quantity: 3, Unit: "gousse"},
				{Name: "Cube assaisonnement", Quantity: 1, Unit: "pièce"},
				{Name: "Huile", Quantity: 4, Unit: "cuillère à soupe"},
			},
		},
		{
			Name:        "Poulet DG",
			Description: "Poulet sauté au plantain et aux légumes",
			Rating:      4.9,
			Servings:    6,
			Ingredients: gormModels.IngredientsField{
				{Name: "Poulet", Quantity: 1.5, Unit: "kg"},
				{Name: "Plantain", Quantity: 4, Unit: "pièce"},
				{Name: "Carotte", Quantity: 2, Unit: "pièce"},
				{Name: "Haricot vert", Quantity: 200, Unit: "g"},
				{Name: "Tomate", Quantity: 2, Unit: "pièce"},
				{Name: "Oignon", Quantity: 1, Unit: "pièce"},
			},
		},
	}

	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}
	}

	return nil
}
