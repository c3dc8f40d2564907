package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	brl = CurrencyUnit{Code: "BRL", DefaultFractionDigits: 2}
	usd = CurrencyUnit{Code: "USD", DefaultFractionDigits: 2}
	jpy = CurrencyUnit{Code: "JPY", DefaultFractionDigits: 0}
)

func TestMoneyArithmetic(t *testing.T) {
	t.Run("Add and subtract", func(t *testing.T) {
		sum, err := MoneyFromInt(100, brl).Add(MoneyFromInt(50, brl))
		require.NoError(t, err)
		assert.True(t, sum.Equal(MoneyFromInt(150, brl)))

		diff, err := sum.Subtract(MoneyFromInt(200, brl))
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
		assert.Equal(t, "-50", diff.Amount.String())
	})

	t.Run("Mixed currencies", func(t *testing.T) {
		_, err := MoneyFromInt(100, brl).Add(MoneyFromInt(50, usd))
		assert.ErrorIs(t, err, ErrCurrencyMismatch)

		equal, err := MoneyFromInt(1, brl).IsEqualTo(MoneyFromInt(1, usd))
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
		assert.False(t, equal)
	})

	t.Run("Multiply and divide", func(t *testing.T) {
		m := MoneyFromInt(10, brl).Multiply(decimal.RequireFromString("1.5"))
		assert.Equal(t, "15", m.Amount.String())

		half, err := m.Divide(decimal.NewFromInt(2))
		require.NoError(t, err)
		assert.Equal(t, "7.5", half.Amount.String())

		_, err = m.Divide(decimal.Zero)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("Negate", func(t *testing.T) {
		m := MoneyFromInt(5, brl).Negate()
		assert.True(t, m.IsNegative())
		assert.True(t, m.IsNegativeOrZero())
		assert.False(t, m.IsPositiveOrZero())
	})
}

func TestMoneyComparison(t *testing.T) {
	small := MoneyFromInt(10, brl)
	large := MoneyFromInt(20, brl)

	gt, err := large.IsGreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	lt, err := small.IsLessThan(large)
	require.NoError(t, err)
	assert.True(t, lt)

	ge, err := small.IsGreaterThanOrEqualTo(MoneyFromInt(10, brl))
	require.NoError(t, err)
	assert.True(t, ge)

	le, err := large.IsLessThanOrEqualTo(small)
	require.NoError(t, err)
	assert.False(t, le)

	// Trailing zeros do not matter
	a, err := MoneyFromString("1.5", brl)
	require.NoError(t, err)
	b, err := MoneyFromString("1.50", brl)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	assert.True(t, MoneyFromInt(0, brl).IsZero())
	assert.False(t, MoneyFromInt(0, brl).IsPositive())
}

func TestMoneyFromString(t *testing.T) {
	m, err := MoneyFromString("1123.50", brl)
	require.NoError(t, err)
	assert.Equal(t, "BRL 1123.5", m.String())

	_, err = MoneyFromString("abc", brl)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestOperators(t *testing.T) {
	t.Run("Default rounding is half even", func(t *testing.T) {
		m, err := MoneyFromString("2.345", brl)
		require.NoError(t, err)

		rounded, err := m.With(DefaultRounding())
		require.NoError(t, err)
		assert.Equal(t, "2.34", rounded.Amount.String())

		yen, err := MoneyFromString("1500.5", jpy)
		require.NoError(t, err)

		rounded, err = yen.With(DefaultRounding())
		require.NoError(t, err)
		assert.Equal(t, "1500", rounded.Amount.String())
	})

	t.Run("Fixed rounding", func(t *testing.T) {
		m, err := MoneyFromString("1.23456", usd)
		require.NoError(t, err)

		rounded, err := m.With(Rounding(3))
		require.NoError(t, err)
		assert.Equal(t, "1.235", rounded.Amount.String())
	})

	t.Run("Percent", func(t *testing.T) {
		tenPercent, err := MoneyFromInt(1000, brl).With(Percent(decimal.NewFromInt(10)))
		require.NoError(t, err)
		assert.True(t, tenPercent.Equal(MoneyFromInt(100, brl)))
	})
}

func TestExchangeRateIssuedBy(t *testing.T) {
	var rate *ExchangeRate
	assert.False(t, rate.IssuedBy("DFP"))

	rate = &ExchangeRate{Base: brl, Term: usd, Factor: decimal.NewFromInt(1), Context: ConversionContext{ProviderName: "DFP"}}
	assert.True(t, rate.IssuedBy("DFP"))
	assert.False(t, rate.IssuedBy("IDENT"))
}
