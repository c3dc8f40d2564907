package format

import (
	"testing"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var (
	eur = entity.CurrencyUnit{Code: "EUR", DefaultFractionDigits: 2}
	brl = entity.CurrencyUnit{Code: "BRL", DefaultFractionDigits: 2}
	usd = entity.CurrencyUnit{Code: "USD", DefaultFractionDigits: 2}
	jpy = entity.CurrencyUnit{Code: "JPY", DefaultFractionDigits: 0}
)

func TestAmountFormatterLocales(t *testing.T) {
	f := NewAmountFormatter()
	amount := decimal.RequireFromString("1123.50")

	t.Run("Germany", func(t *testing.T) {
		assert.Equal(t, "1.123,50 EUR", f.Format(entity.NewMoney(amount, eur), language.MustParse("de-DE")))
	})

	t.Run("Italy", func(t *testing.T) {
		assert.Equal(t, "1.123,50 EUR", f.Format(entity.NewMoney(amount, eur), language.MustParse("it-IT")))
	})

	t.Run("Brazil", func(t *testing.T) {
		assert.Equal(t, "BRL 1.123,50", f.Format(entity.NewMoney(amount, brl), language.MustParse("pt-BR")))
	})

	t.Run("United States", func(t *testing.T) {
		assert.Equal(t, "USD1,123.50", f.Format(entity.NewMoney(amount, usd), language.MustParse("en-US")))
	})
}

func TestAmountFormatterDigits(t *testing.T) {
	f := NewAmountFormatter()
	us := language.MustParse("en-US")

	t.Run("Pads to the currency digits", func(t *testing.T) {
		assert.Equal(t, "USD100.00", f.Format(entity.MoneyFromInt(100, usd), us))
	})

	t.Run("Zero digit currency", func(t *testing.T) {
		assert.Equal(t, "JPY1,500", f.Format(entity.MoneyFromInt(1500, jpy), us))
	})

	t.Run("Negative amount", func(t *testing.T) {
		assert.Equal(t, "-USD12.30", f.Format(entity.MoneyFromFloat(-12.3, usd), us))
		assert.Equal(t, "-12,30 EUR", f.Format(entity.MoneyFromFloat(-12.3, eur), language.MustParse("de-DE")))
	})

	t.Run("Half way amounts round half even", func(t *testing.T) {
		assert.Equal(t, "USD2.68", f.Format(entity.NewMoney(decimal.RequireFromString("2.675"), usd), us))
		assert.Equal(t, "USD2.62", f.Format(entity.NewMoney(decimal.RequireFromString("2.625"), usd), us))
		assert.Equal(t, "JPY1,500", f.Format(entity.NewMoney(decimal.RequireFromString("1500.5"), jpy), us))
	})

	t.Run("Matches default rounding", func(t *testing.T) {
		m := entity.NewMoney(decimal.RequireFromString("1.005"), brl)
		rounded, err := m.With(entity.DefaultRounding())
		require.NoError(t, err)

		pt := language.MustParse("pt-BR")
		assert.Equal(t, f.Format(rounded, pt), f.Format(m, pt))
		assert.Equal(t, "BRL 1,00", f.Format(m, pt))
	})

	t.Run("Large amounts stay exact", func(t *testing.T) {
		m := entity.NewMoney(decimal.RequireFromString("12345678901234567.89"), usd)
		assert.Equal(t, "USD12,345,678,901,234,567.89", f.Format(m, us))
	})

	t.Run("Fraction keeps leading zeros", func(t *testing.T) {
		assert.Equal(t, "USD0.05", f.Format(entity.NewMoney(decimal.RequireFromString("0.05"), usd), us))
		assert.Equal(t, "1.000,01 EUR", f.Format(entity.NewMoney(decimal.RequireFromString("1000.009"), eur), language.MustParse("de-DE")))
	})

	t.Run("Negative amount that rounds to zero", func(t *testing.T) {
		assert.Equal(t, "USD0.00", f.Format(entity.NewMoney(decimal.RequireFromString("-0.001"), usd), us))
	})
}

func TestPlacementFor(t *testing.T) {
	assert.Equal(t, prefixTight, placementFor(language.MustParse("en-GB")))
	assert.Equal(t, prefixSpaced, placementFor(language.MustParse("pt-BR")))
	assert.Equal(t, suffixSpaced, placementFor(language.MustParse("pt-PT")))
	assert.Equal(t, suffixSpaced, placementFor(language.MustParse("de-AT")))
	assert.Equal(t, prefixSpaced, placementFor(language.MustParse("de-CH")))
	assert.Equal(t, prefixSpaced, placementFor(language.MustParse("sw-KE")))
}
