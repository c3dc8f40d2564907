package service

import (
	"github.com/fincatto/money/internal/domain/entity"
)

// ExchangeRateProviderRegistry looks up providers by name
type ExchangeRateProviderRegistry interface {
	// Provider returns the named provider, or the default one when name is empty
	Provider(name string) (ExchangeRateProvider, error)

	// Contexts lists the registered providers ordered by name
	Contexts() []entity.ProviderContext
}
