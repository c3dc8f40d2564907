// Package repository internal/domain/repository/currency_repository.go
package repository

import (
	"github.com/fincatto/money/internal/domain/entity"
	"golang.org/x/text/language"
)

// CurrencyRepository defines the interface for currency lookup
type CurrencyRepository interface {
	// FindByCode finds a currency by its ISO 4217 code
	FindByCode(code string) (entity.CurrencyUnit, error)

	// FindByLocale finds the currency used in the locale's region
	FindByLocale(locale language.Tag) (entity.CurrencyUnit, error)
}
