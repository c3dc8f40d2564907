package service

import (
	"github.com/fincatto/money/internal/domain/entity"
)

// ExchangeRateProvider supplies conversion factors between currency pairs.
// A provider that cannot produce a rate returns entity.ErrRateNotAvailable.
type ExchangeRateProvider interface {
	// Context describes the provider and the rate types it serves
	Context() entity.ProviderContext

	// IsAvailable reports whether the provider can serve the query
	IsAvailable(query entity.ConversionQuery) bool

	// GetExchangeRate returns the rate between two currency codes
	GetExchangeRate(baseCode, termCode string) (*entity.ExchangeRate, error)

	// ExchangeRate returns the rate for a conversion query
	ExchangeRate(query entity.ConversionQuery) (*entity.ExchangeRate, error)

	// Reversed returns the rate converting in the opposite direction
	Reversed(rate *entity.ExchangeRate) (*entity.ExchangeRate, error)
}
