package provider

import (
	"fmt"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// IdentityProviderName is the name the identity provider registers under
const IdentityProviderName = "IDENT"

// IdentityRateProvider only converts a currency into itself
type IdentityRateProvider struct {
	currencies repository.CurrencyRepository
}

// NewIdentityRateProvider creates the identity rate provider
func NewIdentityRateProvider(currencies repository.CurrencyRepository) *IdentityRateProvider {
	return &IdentityRateProvider{currencies: currencies}
}

func (p *IdentityRateProvider) Context() entity.ProviderContext {
	return entity.ProviderContext{
		ProviderName: IdentityProviderName,
		RateTypes:    []entity.RateType{entity.RateTypeOther},
	}
}

func (p *IdentityRateProvider) IsAvailable(query entity.ConversionQuery) bool {
	return query.SameCurrency()
}

func (p *IdentityRateProvider) GetExchangeRate(baseCode, termCode string) (*entity.ExchangeRate, error) {
	base, err := p.currencies.FindByCode(baseCode)
	if err != nil {
		return nil, err
	}

	term, err := p.currencies.FindByCode(termCode)
	if err != nil {
		return nil, err
	}

	return p.ExchangeRate(entity.ConversionQuery{Base: base, Term: term})
}

func (p *IdentityRateProvider) ExchangeRate(query entity.ConversionQuery) (*entity.ExchangeRate, error) {
	if !query.SameCurrency() {
		return nil, notAvailable(IdentityProviderName, query.Base, query.Term)
	}

	return newRate(query.Base, query.Term, decimal.NewFromInt(1), IdentityProviderName, entity.RateTypeOther), nil
}

func (p *IdentityRateProvider) Reversed(rate *entity.ExchangeRate) (*entity.ExchangeRate, error) {
	if !rate.IssuedBy(IdentityProviderName) {
		return nil, fmt.Errorf("%w: %s only reverses its own rates", entity.ErrRateNotAvailable, IdentityProviderName)
	}

	return swapped(rate, decimal.NewFromInt(1)), nil
}
