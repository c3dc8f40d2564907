package entity

import "github.com/shopspring/decimal"

// Operator transforms an amount, e.g. rounding or taking a percentage
type Operator func(Money) (Money, error)

var hundred = decimal.NewFromInt(100)

// DefaultRounding rounds half-even to the default fraction digits of the amount's currency
func DefaultRounding() Operator {
	return func(m Money) (Money, error) {
		scale := int32(m.Currency.DefaultFractionDigits)
		return NewMoney(m.Amount.RoundBank(scale), m.Currency), nil
	}
}

// Rounding rounds half-even to a fixed number of decimal places
func Rounding(scale int32) Operator {
	return func(m Money) (Money, error) {
		return NewMoney(m.Amount.RoundBank(scale), m.Currency), nil
	}
}

// Percent returns the given percentage of an amount
func Percent(percent decimal.Decimal) Operator {
	return func(m Money) (Money, error) {
		return NewMoney(m.Amount.Mul(percent).Div(hundred), m.Currency), nil
	}
}
