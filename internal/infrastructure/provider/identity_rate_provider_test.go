package provider

import (
	"testing"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/infrastructure/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRateProvider(t *testing.T) {
	p := NewIdentityRateProvider(currency.NewTextCurrencyRepository())

	t.Run("Same currency", func(t *testing.T) {
		rate, err := p.GetExchangeRate("EUR", "eur")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(rate.Factor))
		assert.Equal(t, IdentityProviderName, rate.Context.ProviderName)
	})

	t.Run("Distinct currencies", func(t *testing.T) {
		rate, err := p.GetExchangeRate("EUR", "USD")
		assert.Nil(t, rate)
		assert.ErrorIs(t, err, entity.ErrRateNotAvailable)
	})

	t.Run("Availability", func(t *testing.T) {
		eur := unit(t, "EUR")
		usd := unit(t, "USD")
		assert.True(t, p.IsAvailable(entity.ConversionQuery{Base: eur, Term: eur}))
		assert.False(t, p.IsAvailable(entity.ConversionQuery{Base: eur, Term: usd}))
	})

	t.Run("Reverses only its own rates", func(t *testing.T) {
		rate, err := p.GetExchangeRate("EUR", "EUR")
		require.NoError(t, err)

		reversed, err := p.Reversed(rate)
		require.NoError(t, err)
		assert.Equal(t, IdentityProviderName, reversed.Context.ProviderName)

		custom, err := NewCustomRateProvider(currency.NewTextCurrencyRepository()).GetExchangeRate("EUR", "EUR")
		require.NoError(t, err)

		_, err = p.Reversed(custom)
		assert.ErrorIs(t, err, entity.ErrRateNotAvailable)
	})
}
