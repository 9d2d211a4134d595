// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound payloads.
package validator

import (
	domainerrors "organic/internal/domain/errors"

	"github.com/pkg/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on the bound payload and maps failures to the
// shared validation error so the error handler renders a 400.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.ErrValidationFailed.WithDetails(first.Field() + " failed on the '" + first.Tag() + "' rule")
	}

	return domainerrors.ErrValidationFailed
}
