package recipe

// RequiredIngredient is an immutable (name, quantity, unit) triple a recipe
// calls for. Quantity and Unit may both be empty; the matcher then treats a
// name match alone as sufficient.
type RequiredIngredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// Validate validates the requirement.
func (ri RequiredIngredient) Validate() error {
	if ri.Name == "" {
		return ErrIngredientNameRequired
	}
	if ri.Quantity < 0 {
		return ErrNegativeIngredientQty
	}
	return nil
}

// HasQuantity reports whether the requirement tracks an amount at all.
func (ri RequiredIngredient) HasQuantity() bool {
	return ri.Quantity > 0 && ri.Unit != ""
}
