package provider

import (
	"errors"
	"testing"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/infrastructure/currency"
	"github.com/fincatto/money/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unit(t *testing.T, code string) entity.CurrencyUnit {
	t.Helper()

	u, err := currency.NewTextCurrencyRepository().FindByCode(code)
	require.NoError(t, err)
	return u
}

func TestCustomRateProviderGetExchangeRate(t *testing.T) {
	p := NewCustomRateProvider(currency.NewTextCurrencyRepository())

	t.Run("Distinct currencies use the constant factor", func(t *testing.T) {
		rate, err := p.GetExchangeRate("BRL", "USD")
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("1.5").Equal(rate.Factor))
		assert.Equal(t, "BRL", rate.Base.Code)
		assert.Equal(t, "USD", rate.Term.Code)
		assert.Equal(t, CustomProviderName, rate.Context.ProviderName)
		assert.Equal(t, entity.RateTypeOther, rate.Context.RateType)
	})

	t.Run("Same currency is the identity", func(t *testing.T) {
		for _, code := range []string{"BRL", "USD", "EUR", "JPY", "HUF"} {
			rate, err := p.GetExchangeRate(code, code)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(1).Equal(rate.Factor), code)
		}
	})

	t.Run("Codes are compared ignoring case", func(t *testing.T) {
		rate, err := p.GetExchangeRate("brl", "BRL")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(rate.Factor))
	})

	t.Run("Every distinct pair gets 1.5", func(t *testing.T) {
		codes := []string{"BRL", "USD", "EUR", "GBP", "JPY"}
		for _, base := range codes {
			for _, term := range codes {
				if base == term {
					continue
				}
				rate, err := p.GetExchangeRate(base, term)
				require.NoError(t, err)
				assert.Equal(t, "1.5", rate.Factor.String(), base+"->"+term)
			}
		}
	})

	t.Run("Unknown currency", func(t *testing.T) {
		rate, err := p.GetExchangeRate("BRL", "XYZ")
		assert.Nil(t, rate)
		assert.ErrorIs(t, err, entity.ErrUnknownCurrency)
	})
}

func TestCustomRateProviderPassesRepositoryErrorsThrough(t *testing.T) {
	repo := new(mocks.MockCurrencyRepository)
	p := NewCustomRateProvider(repo)

	lookupErr := errors.New("currency data unavailable")
	repo.On("FindByCode", "BRL").Return(entity.CurrencyUnit{}, lookupErr).Once()

	rate, err := p.GetExchangeRate("BRL", "USD")
	assert.Nil(t, rate)
	assert.Same(t, lookupErr, err)

	repo.AssertExpectations(t)
}

func TestCustomRateProviderQuery(t *testing.T) {
	p := NewCustomRateProvider(currency.NewTextCurrencyRepository())
	brl := unit(t, "BRL")
	usd := unit(t, "USD")

	t.Run("Same currency query", func(t *testing.T) {
		query := entity.ConversionQuery{Base: brl, Term: brl}

		assert.True(t, p.IsAvailable(query))

		rate, err := p.ExchangeRate(query)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1).Equal(rate.Factor))
		assert.Equal(t, brl, rate.Base)
		assert.Equal(t, brl, rate.Term)
		assert.Equal(t, CustomProviderName, rate.Context.ProviderName)
	})

	t.Run("Distinct currency query is not applicable", func(t *testing.T) {
		query := entity.ConversionQuery{Base: brl, Term: usd}

		assert.False(t, p.IsAvailable(query))

		rate, err := p.ExchangeRate(query)
		assert.Nil(t, rate)
		assert.ErrorIs(t, err, entity.ErrRateNotAvailable)
	})
}

func TestCustomRateProviderReversed(t *testing.T) {
	p := NewCustomRateProvider(currency.NewTextCurrencyRepository())

	t.Run("Own rate is swapped with factor 1", func(t *testing.T) {
		rate, err := p.GetExchangeRate("BRL", "USD")
		require.NoError(t, err)

		reversed, err := p.Reversed(rate)
		require.NoError(t, err)

		assert.Equal(t, "USD", reversed.Base.Code)
		assert.Equal(t, "BRL", reversed.Term.Code)
		assert.True(t, decimal.NewFromInt(1).Equal(reversed.Factor))
		assert.Equal(t, rate.Context, reversed.Context)

		// the input is left untouched
		assert.Equal(t, "BRL", rate.Base.Code)
		assert.Equal(t, "1.5", rate.Factor.String())
	})

	t.Run("Foreign rate is not applicable", func(t *testing.T) {
		foreign := &entity.ExchangeRate{
			Base:    unit(t, "EUR"),
			Term:    unit(t, "USD"),
			Factor:  decimal.RequireFromString("1.08"),
			Context: entity.ConversionContext{ProviderName: "ECB", RateType: entity.RateTypeDeferred},
		}

		reversed, err := p.Reversed(foreign)
		assert.Nil(t, reversed)
		assert.ErrorIs(t, err, entity.ErrRateNotAvailable)
	})

	t.Run("Nil rate is not applicable", func(t *testing.T) {
		reversed, err := p.Reversed(nil)
		assert.Nil(t, reversed)
		assert.ErrorIs(t, err, entity.ErrRateNotAvailable)
	})
}

func TestCustomRateProviderContext(t *testing.T) {
	p := NewCustomRateProvider(currency.NewTextCurrencyRepository())

	ctx := p.Context()
	assert.Equal(t, "DFP", ctx.ProviderName)
	assert.Equal(t, []entity.RateType{entity.RateTypeOther}, ctx.RateTypes)
	assert.Equal(t, "Custom Provider", ctx.Attributes["providerDescription"])

	ctx.Attributes["providerDescription"] = "changed"
	assert.Equal(t, "Custom Provider", p.Context().Attributes["providerDescription"])
}
