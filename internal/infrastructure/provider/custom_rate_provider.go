package provider

import (
	"fmt"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const (
	// CustomProviderName is the name the custom provider registers under
	CustomProviderName = "DFP"

	customProviderDescription = "Custom Provider"
)

// customFactor is applied to every pair of distinct currencies
var customFactor = decimal.RequireFromString("1.5")

// CustomRateProvider supplies a constant factor of 1.5 between distinct currencies
// and the identity rate for a currency converted into itself
type CustomRateProvider struct {
	currencies repository.CurrencyRepository
	context    entity.ProviderContext
}

// NewCustomRateProvider creates the custom rate provider
func NewCustomRateProvider(currencies repository.CurrencyRepository) *CustomRateProvider {
	return &CustomRateProvider{
		currencies: currencies,
		context: entity.ProviderContext{
			ProviderName: CustomProviderName,
			RateTypes:    []entity.RateType{entity.RateTypeOther},
			Attributes: map[string]string{
				"providerDescription": customProviderDescription,
			},
		},
	}
}

// Context describes the provider
func (p *CustomRateProvider) Context() entity.ProviderContext {
	return copyContext(p.context)
}

// IsAvailable is true only when the query converts a currency into itself
func (p *CustomRateProvider) IsAvailable(query entity.ConversionQuery) bool {
	return query.SameCurrency()
}

// GetExchangeRate returns factor 1 for equal codes and 1.5 otherwise.
// Unknown codes fail with the currency repository's error.
func (p *CustomRateProvider) GetExchangeRate(baseCode, termCode string) (*entity.ExchangeRate, error) {
	base, err := p.currencies.FindByCode(baseCode)
	if err != nil {
		return nil, err
	}

	term, err := p.currencies.FindByCode(termCode)
	if err != nil {
		return nil, err
	}

	factor := customFactor
	if base.Equal(term) {
		factor = decimal.NewFromInt(1)
	}

	return newRate(base, term, factor, CustomProviderName, entity.RateTypeOther), nil
}

// ExchangeRate returns the identity rate for same-currency queries only
func (p *CustomRateProvider) ExchangeRate(query entity.ConversionQuery) (*entity.ExchangeRate, error) {
	if !query.SameCurrency() {
		return nil, notAvailable(CustomProviderName, query.Base, query.Term)
	}

	return newRate(query.Base, query.Term, decimal.NewFromInt(1), CustomProviderName, entity.RateTypeOther), nil
}

// Reversed swaps base and term of a rate issued by this provider, with factor 1
func (p *CustomRateProvider) Reversed(rate *entity.ExchangeRate) (*entity.ExchangeRate, error) {
	if !rate.IssuedBy(CustomProviderName) {
		return nil, fmt.Errorf("%w: %s only reverses its own rates", entity.ErrRateNotAvailable, CustomProviderName)
	}

	return swapped(rate, decimal.NewFromInt(1)), nil
}
