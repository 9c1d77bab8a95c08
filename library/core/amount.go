package core

import (
	"github.com/shopspring/decimal"
)

// Amount is a sum of money in the base currency unit.
// It marshals to a JSON string, so payloads keep their exact value.
type Amount = decimal.Decimal

// ZeroAmount is the neutral fee.
var ZeroAmount = decimal.Zero

// AmountFromInt creates an Amount of whole currency units.
func AmountFromInt(units int64) Amount {
	return decimal.NewFromInt(units)
}

// ParseAmount parses a decimal string like "12.50" and rejects negative values.
func ParseAmount(field string, value string) (Amount, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return ZeroAmount, newValidationError(field, value, ErrInvalidAmount)
	}

	if amount.IsNegative() {
		return ZeroAmount, newValidationError(field, value, ErrNegativeAmount)
	}

	return amount, nil
}
