package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// AmountScale is the number of fractional digits an amount may carry.
	AmountScale = 6
	// AmountIntegerDigits is the number of digits allowed before the point.
	AmountIntegerDigits = 12
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// ErrAmountIsNotConstructed is returned when validating a zero-value Amount.
var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError("Amount must be created via NewAmount or AmountFromString")

// Amount is a strictly positive decimal with at most AmountIntegerDigits
// integer digits and AmountScale fractional digits, the range of a
// numeric(18,6) column. Order quantities and unit prices are both amounts.
type Amount struct {
	value decimal.Decimal
}

// NewAmount returns an error unless value is greater than zero and fits the
// stored precision. Trailing zeros beyond the scale are accepted.
func NewAmount(paramName string, value decimal.Decimal) (Amount, error) {
	switch {
	case !value.IsPositive():
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is not greater than 0", value))
	case !value.Equal(value.Truncate(AmountScale)):
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s has more than %d decimal places", value, AmountScale))
	case value.GreaterThanOrEqual(maxAmount):
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s has more than %d integer digits", value, AmountIntegerDigits))
	}
	return Amount{value: value}, nil
}

// AmountFromString parses a decimal literal such as "12.5".
func AmountFromString(paramName, s string) (Amount, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return NewAmount(paramName, value)
}

// MustAmount panics if value is not positive. Intended for tests and constants.
func MustAmount(value string) Amount {
	a, err := AmountFromString("amount", value)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsWhole reports whether the amount has no fractional part.
func (a Amount) IsWhole() bool {
	return a.value.Equal(a.value.Truncate(0))
}

func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) String() string {
	return a.value.String()
}

// Validate returns ErrAmountIsNotConstructed for the zero value.
func (a Amount) Validate() error {
	if !a.value.IsPositive() {
		return ErrAmountIsNotConstructed
	}
	return nil
}
