package http

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo.
type RequestValidator struct {
	validate *validatorv10.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validatorv10.New()}
}

// Validate reports every failing field in one errs.ValueIsInvalidError.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validatorv10.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", errors.New(strings.Join(fields, "; ")))
}
