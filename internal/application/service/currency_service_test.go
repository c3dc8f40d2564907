package service

import (
	"context"
	"testing"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/infrastructure/currency"
	"github.com/fincatto/money/internal/infrastructure/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestCurrencyService() *CurrencyService {
	return NewCurrencyService(
		currency.NewTextCurrencyRepository(),
		format.NewAmountFormatter(),
		language.AmericanEnglish,
		discardLogger(),
	)
}

func TestCurrencyService(t *testing.T) {
	service := newTestCurrencyService()
	ctx := context.Background()

	t.Run("Code and locale agree", func(t *testing.T) {
		byCode, err := service.Currency(ctx, "USD")
		require.NoError(t, err)

		byLocale, err := service.CurrencyForLocale(ctx, "en-US")
		require.NoError(t, err)

		assert.Equal(t, byCode, byLocale)
	})

	t.Run("Invalid locale", func(t *testing.T) {
		_, err := service.CurrencyForLocale(ctx, "not a locale!")
		assert.ErrorIs(t, err, entity.ErrInvalidLocale)
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := service.Currency(ctx, "XYZ")
		assert.ErrorIs(t, err, entity.ErrUnknownCurrency)
	})

	t.Run("Default rounding of the real", func(t *testing.T) {
		amount, err := service.Amount(ctx, "1.5006", "BRL")
		require.NoError(t, err)

		rounded, err := service.Round(ctx, amount)
		require.NoError(t, err)

		expected, err := service.Amount(ctx, "1.5", "BRL")
		require.NoError(t, err)
		assert.True(t, expected.Equal(rounded), rounded.String())
	})

	t.Run("Invalid amount", func(t *testing.T) {
		_, err := service.Amount(ctx, "one", "BRL")
		assert.ErrorIs(t, err, entity.ErrInvalidAmount)
	})

	t.Run("Format with explicit and default locale", func(t *testing.T) {
		amount, err := service.Amount(ctx, "1123.50", "EUR")
		require.NoError(t, err)

		formatted, err := service.Format(ctx, amount, "de-DE")
		require.NoError(t, err)
		assert.Equal(t, "1.123,50 EUR", formatted)

		formatted, err = service.Format(ctx, amount, "")
		require.NoError(t, err)
		assert.Equal(t, "EUR1,123.50", formatted)
	})

	t.Run("Format with invalid locale", func(t *testing.T) {
		amount, err := service.Amount(ctx, "1", "EUR")
		require.NoError(t, err)

		_, err = service.Format(ctx, amount, "??")
		assert.ErrorIs(t, err, entity.ErrInvalidLocale)
	})
}
