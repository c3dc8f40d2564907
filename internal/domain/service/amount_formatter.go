package service

import (
	"github.com/fincatto/money/internal/domain/entity"
	"golang.org/x/text/language"
)

// AmountFormatter renders an amount for a locale
type AmountFormatter interface {
	Format(m entity.Money, locale language.Tag) string
}
