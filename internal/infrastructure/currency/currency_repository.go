// Package currency resolves ISO 4217 currencies from the CLDR data shipped with golang.org/x/text
package currency

import (
	"fmt"
	"strings"

	"github.com/fincatto/money/internal/domain/entity"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// TextCurrencyRepository implements the CurrencyRepository interface on top of x/text
type TextCurrencyRepository struct{}

// NewTextCurrencyRepository creates a new currency repository
func NewTextCurrencyRepository() *TextCurrencyRepository {
	return &TextCurrencyRepository{}
}

// FindByCode finds a currency by its ISO 4217 code, ignoring case
func (r *TextCurrencyRepository) FindByCode(code string) (entity.CurrencyUnit, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return entity.CurrencyUnit{}, fmt.Errorf("%w: %q", entity.ErrUnknownCurrency, code)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return entity.CurrencyUnit{}, fmt.Errorf("%w: %q", entity.ErrUnknownCurrency, code)
	}

	return toCurrencyUnit(unit), nil
}

// FindByLocale finds the currency of the locale's region.
// The region must be explicit or inferred with high confidence.
func (r *TextCurrencyRepository) FindByLocale(locale language.Tag) (entity.CurrencyUnit, error) {
	region, confidence := locale.Region()
	if confidence < language.High {
		return entity.CurrencyUnit{}, fmt.Errorf("%w: locale %s has no country", entity.ErrUnknownCurrency, locale)
	}

	unit, ok := currency.FromRegion(region)
	if !ok {
		return entity.CurrencyUnit{}, fmt.Errorf("%w: no currency for region %s", entity.ErrUnknownCurrency, region)
	}

	return toCurrencyUnit(unit), nil
}

func toCurrencyUnit(unit currency.Unit) entity.CurrencyUnit {
	scale, _ := currency.Standard.Rounding(unit)
	return entity.CurrencyUnit{
		Code:                  unit.String(),
		DefaultFractionDigits: scale,
	}
}
