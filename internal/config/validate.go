package config

import (
	"github.com/Prathapkumar-67/aptitude-website/internal/apperror"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the `validate` tags of a DTO and reports the first
// failure as a validation error.
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return apperror.Validation("invalid field %s (%s)", errs[0].Field(), errs[0].Tag())
		}
		return apperror.Validation("invalid request")
	}
	return nil
}
