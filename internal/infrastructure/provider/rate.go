// Package provider holds the exchange rate providers and their registry
package provider

import (
	"fmt"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func newRate(base, term entity.CurrencyUnit, factor decimal.Decimal, providerName string, rateType entity.RateType) *entity.ExchangeRate {
	return &entity.ExchangeRate{
		Base:   base,
		Term:   term,
		Factor: factor,
		Context: entity.ConversionContext{
			ProviderName: providerName,
			RateType:     rateType,
		},
	}
}

// swapped returns rate with base and term exchanged, keeping its context
func swapped(rate *entity.ExchangeRate, factor decimal.Decimal) *entity.ExchangeRate {
	return &entity.ExchangeRate{
		Base:    rate.Term,
		Term:    rate.Base,
		Factor:  factor,
		Context: rate.Context,
	}
}

func notAvailable(providerName string, base, term entity.CurrencyUnit) error {
	return fmt.Errorf("%w: %s cannot convert %s to %s", entity.ErrRateNotAvailable, providerName, base.Code, term.Code)
}

func copyContext(ctx entity.ProviderContext) entity.ProviderContext {
	out := entity.ProviderContext{
		ProviderName: ctx.ProviderName,
		RateTypes:    append([]entity.RateType(nil), ctx.RateTypes...),
	}
	if ctx.Attributes != nil {
		out.Attributes = make(map[string]string, len(ctx.Attributes))
		for k, v := range ctx.Attributes {
			out.Attributes[k] = v
		}
	}
	return out
}
