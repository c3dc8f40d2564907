package entity

import "strings"

// CurrencyUnit represents an ISO 4217 currency
type CurrencyUnit struct {
	Code                  string `json:"code"`
	DefaultFractionDigits int    `json:"default_fraction_digits"`
}

// Equal reports whether both units denote the same currency
func (c CurrencyUnit) Equal(other CurrencyUnit) bool {
	return strings.EqualFold(c.Code, other.Code)
}

func (c CurrencyUnit) String() string {
	return c.Code
}
