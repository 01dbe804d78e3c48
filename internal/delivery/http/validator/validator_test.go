package validator

import (
	"testing"

	domainerrors "identity/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Validate(&sampleRequest{Name: "Ann", Email: "ann@x.com"}))
}

func TestValidator_ReportsEveryField(t *testing.T) {
	err := New().Validate(&sampleRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "name: required, email: email", appErr.Details())
}

func TestValidator_NonStruct(t *testing.T) {
	err := New().Validate("plain string")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
