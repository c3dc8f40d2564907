// Package format renders monetary amounts the way a locale writes them
package format

import (
	"strings"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// codePlacement says where the currency code goes relative to the number
type codePlacement struct {
	prefix bool
	space  bool
}

var (
	prefixTight  = codePlacement{prefix: true}
	prefixSpaced = codePlacement{prefix: true, space: true}
	suffixSpaced = codePlacement{space: true}
)

// placements are keyed by "language-REGION" first, then by language alone
var placements = map[string]codePlacement{
	"en":    prefixTight,
	"ja":    prefixTight,
	"ko":    prefixTight,
	"zh":    prefixTight,
	"pt-BR": prefixSpaced,
	"de-CH": prefixSpaced,
	"pt":    suffixSpaced,
	"de":    suffixSpaced,
	"it":    suffixSpaced,
	"es":    suffixSpaced,
	"nl":    suffixSpaced,
	"pl":    suffixSpaced,
	"hu":    suffixSpaced,
	"cs":    suffixSpaced,
	"sv":    suffixSpaced,
	"da":    suffixSpaced,
	"fi":    suffixSpaced,
	"nb":    suffixSpaced,
	"ru":    suffixSpaced,
	"tr":    suffixSpaced,
}

// AmountFormatter formats amounts with the locale's number symbols and the ISO currency code
type AmountFormatter struct{}

// NewAmountFormatter creates a new formatter
func NewAmountFormatter() *AmountFormatter {
	return &AmountFormatter{}
}

// Format renders m rounded half-even to the currency's default fraction digits, e.g. "1.123,50 EUR" for de-DE.
// The integer part goes through the locale's grouping and must fit in an int64.
func (f *AmountFormatter) Format(m entity.Money, locale language.Tag) string {
	scale := int32(m.Currency.DefaultFractionDigits)
	rounded := m.Amount.RoundBank(scale)

	digits := formatDigits(message.NewPrinter(locale), rounded.Abs(), scale)

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}

	p := placementFor(locale)
	if p.prefix {
		b.WriteString(m.Currency.Code)
		if p.space {
			b.WriteByte(' ')
		}
		b.WriteString(digits)
		return b.String()
	}

	b.WriteString(digits)
	if p.space {
		b.WriteByte(' ')
	}
	b.WriteString(m.Currency.Code)
	return b.String()
}

// formatDigits prints a non-negative amount with exactly scale fraction digits
// using the printer's digits, grouping and decimal separator.
func formatDigits(printer *message.Printer, amount decimal.Decimal, scale int32) string {
	intPart := amount.Truncate(0)
	out := printer.Sprint(number.Decimal(intPart.IntPart()))
	if scale <= 0 {
		return out
	}

	// A leading 1 keeps the fraction's zero padding through integer formatting.
	fraction := amount.Sub(intPart).Shift(scale).Add(decimal.New(1, scale)).IntPart()
	padded := []rune(printer.Sprint(number.Decimal(fraction, number.NoSeparator())))

	return out + decimalSeparator(printer) + string(padded[1:])
}

// decimalSeparator extracts the separator the printer puts between 1 and 5 in 1.5
func decimalSeparator(printer *message.Printer) string {
	sample := []rune(printer.Sprint(number.Decimal(1.5, number.Scale(1))))
	if len(sample) < 3 {
		return "."
	}
	return string(sample[1 : len(sample)-1])
}

func placementFor(locale language.Tag) codePlacement {
	base, _ := locale.Base()
	region, _ := locale.Region()

	if p, ok := placements[base.String()+"-"+region.String()]; ok {
		return p
	}
	if p, ok := placements[base.String()]; ok {
		return p
	}
	return prefixSpaced
}
