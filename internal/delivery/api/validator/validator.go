// Package validator adapts go-playground/validator to echo.
package validator

import (
	"regexp"

	"dashboard/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Discord ids are unsigned 64-bit integers rendered in decimal.
var snowflakePattern = regexp.MustCompile(`^[0-9]{15,20}$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the project's custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("snowflake", func(fl validator.FieldLevel) bool {
		return snowflakePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate validates a struct using its `validate` tags.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
