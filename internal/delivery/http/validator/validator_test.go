package validator

import (
	"testing"

	domainerrors "organic/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Name  string `validate:"required,max=10"`
	Email string `validate:"omitempty,email"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleInput{Name: "Produce"}))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "required")
}

func TestValidate_InvalidEmail(t *testing.T) {
	v := New()

	err := v.Validate(&sampleInput{Name: "Produce", Email: "not-an-email"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
