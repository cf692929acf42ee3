// util/validation_util.go

package util

import (
	"strings"

	"github.com/go-playground/validator/v10"

	things_errors "github.com/dev-mohitbeniwal/thingsconsole/errors"
)

// Identifier is a named request argument that must not be empty.
type Identifier struct {
	Field string
	Value string
}

func ID(field, value string) Identifier {
	return Identifier{Field: field, Value: value}
}

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

// RequireIdentifiers returns a *ValidationError for the first empty or
// blank identifier.
func (v *ValidationUtil) RequireIdentifiers(operation string, ids ...Identifier) error {
	for _, id := range ids {
		if err := v.validate.Var(strings.TrimSpace(id.Value), "required"); err != nil {
			return &things_errors.ValidationError{
				Operation: operation,
				Field:     id.Field,
				Err:       things_errors.ErrValidation,
			}
		}
	}
	return nil
}

// RequireEach applies RequireIdentifiers to every element of a list argument.
func (v *ValidationUtil) RequireEach(operation, field string, values []string) error {
	for _, value := range values {
		if err := v.RequireIdentifiers(operation, ID(field, value)); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePage checks the search window arguments.
func (v *ValidationUtil) ValidatePage(operation string, offset, count int) error {
	if err := v.validate.Var(offset, "gte=0"); err != nil {
		return &things_errors.ValidationError{Operation: operation, Field: "offset", Err: things_errors.ErrInvalidPagination}
	}
	if err := v.validate.Var(count, "gt=0"); err != nil {
		return &things_errors.ValidationError{Operation: operation, Field: "count", Err: things_errors.ErrInvalidPagination}
	}
	return nil
}
