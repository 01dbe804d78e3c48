// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "identity/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New returns an echo.Validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the struct tags of i. Failures come back as ErrValidationFailed
// listing each offending field and the rule it broke.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, strings.ToLower(fe.Field())+": "+fe.Tag())
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, ", "))
}
