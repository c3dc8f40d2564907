package entity

import "errors"

var (
	// ErrUnknownCurrency is returned when a code or locale does not resolve to an ISO 4217 currency
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrInvalidLocale is returned when a locale string is not a valid BCP 47 tag
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrCurrencyMismatch is returned when two amounts in different currencies are combined or compared
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero is returned when an amount is divided by zero
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidAmount is returned when an amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrRateNotAvailable signals that a provider cannot produce a rate for the request
	ErrRateNotAvailable = errors.New("exchange rate not available")

	// ErrUnknownProvider is returned when no provider is registered under a name
	ErrUnknownProvider = errors.New("unknown exchange rate provider")

	// ErrUnknownRateType is returned when a rate type name is not recognized
	ErrUnknownRateType = errors.New("unknown rate type")
)
