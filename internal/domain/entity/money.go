package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount in a given currency
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency CurrencyUnit    `json:"currency"`
}

// NewMoney creates an amount in the given currency
func NewMoney(amount decimal.Decimal, currency CurrencyUnit) Money {
	return Money{Amount: amount, Currency: currency}
}

// MoneyFromInt creates an amount from an integer value
func MoneyFromInt(amount int64, currency CurrencyUnit) Money {
	return NewMoney(decimal.NewFromInt(amount), currency)
}

// MoneyFromFloat creates an amount from a float value
func MoneyFromFloat(amount float64, currency CurrencyUnit) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// MoneyFromString parses a decimal string such as "1123.50"
func MoneyFromString(amount string, currency CurrencyUnit) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewMoney(d, currency), nil
}

// Add returns m + other
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.Amount.Add(other.Amount), m.Currency), nil
}

// Subtract returns m - other
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.Amount.Sub(other.Amount), m.Currency), nil
}

// Multiply returns m * factor
func (m Money) Multiply(factor decimal.Decimal) Money {
	return NewMoney(m.Amount.Mul(factor), m.Currency)
}

// Divide returns m / divisor
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return NewMoney(m.Amount.Div(divisor), m.Currency), nil
}

// Negate returns -m
func (m Money) Negate() Money {
	return NewMoney(m.Amount.Neg(), m.Currency)
}

// With applies an operator to the amount
func (m Money) With(op Operator) (Money, error) {
	return op(m)
}

// Equal reports whether both amounts have the same currency and numeric value.
// Trailing zeros are ignored, so 1.5 BRL equals 1.50 BRL.
func (m Money) Equal(other Money) bool {
	return m.Currency.Equal(other.Currency) && m.Amount.Equal(other.Amount)
}

// IsEqualTo compares the numeric values of two amounts in the same currency
func (m Money) IsEqualTo(other Money) (bool, error) {
	c, err := m.compare(other)
	return err == nil && c == 0, err
}

// IsGreaterThan reports whether m > other
func (m Money) IsGreaterThan(other Money) (bool, error) {
	c, err := m.compare(other)
	return c > 0, err
}

// IsGreaterThanOrEqualTo reports whether m >= other
func (m Money) IsGreaterThanOrEqualTo(other Money) (bool, error) {
	c, err := m.compare(other)
	return err == nil && c >= 0, err
}

// IsLessThan reports whether m < other
func (m Money) IsLessThan(other Money) (bool, error) {
	c, err := m.compare(other)
	return c < 0, err
}

// IsLessThanOrEqualTo reports whether m <= other
func (m Money) IsLessThanOrEqualTo(other Money) (bool, error) {
	c, err := m.compare(other)
	return err == nil && c <= 0, err
}

func (m Money) IsZero() bool           { return m.Amount.IsZero() }
func (m Money) IsPositive() bool       { return m.Amount.IsPositive() }
func (m Money) IsPositiveOrZero() bool { return !m.Amount.IsNegative() }
func (m Money) IsNegative() bool       { return m.Amount.IsNegative() }
func (m Money) IsNegativeOrZero() bool { return !m.Amount.IsPositive() }

func (m Money) String() string {
	return m.Currency.Code + " " + m.Amount.String()
}

func (m Money) compare(other Money) (int, error) {
	if err := m.checkCurrency(other); err != nil {
		return 0, err
	}
	return m.Amount.Cmp(other.Amount), nil
}

func (m Money) checkCurrency(other Money) error {
	if !m.Currency.Equal(other.Currency) {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency.Code, other.Currency.Code)
	}
	return nil
}
