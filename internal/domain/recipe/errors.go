package recipe

import "errors"

// Domain errors for recipe operations

var (
	ErrNameTooShort           = errors.New("recipe name must be at least 2 characters")
	ErrNameTooLong            = errors.New("recipe name must not exceed 200 characters")
	ErrIngredientNameRequired = errors.New("required ingredient name is required")
	ErrNegativeIngredientQty  = errors.New("required ingredient quantity cannot be negative")
	ErrInvalidRating          = errors.New("rating must be between 0 and 5")
	ErrInvalidServings        = errors.New("servings must be greater than 0")
	ErrRecipeNotFound         = errors.New("recipe not found")
)
