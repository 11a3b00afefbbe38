// Package validation wraps go-playground/validator for command validation
// at the application boundary.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/miambidi/mealplan/pkg/errors"
)

// Validator validates command and query structs by their validate tags
type Validator struct {
	validate *validator.Validate
}

// New creates a validator using struct tag names for error reporting
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates a struct and converts failures to an AppError
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "validate command")
	}

	fields := make([]errors.ValidationError, 0, len(invalid))
	for _, fe := range invalid {
		fields = append(fields, errors.ValidationError{
			Field:   fe.Field(),
			Value:   fe.Value(),
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("field %s failed on the %s rule", fe.Field(), fe.Tag()),
		})
	}

	return errors.NewValidationErrors(fields)
}
