// Package service internal/application/service/currency_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/domain/repository"
	domainservice "github.com/fincatto/money/internal/domain/service"
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/fincatto/money/internal/infrastructure/middleware"
	"golang.org/x/text/language"
)

// CurrencyService handles currency lookup, rounding and formatting
type CurrencyService struct {
	currencies    repository.CurrencyRepository
	formatter     domainservice.AmountFormatter
	defaultLocale language.Tag
	logger        logger.Logger
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(currencies repository.CurrencyRepository, formatter domainservice.AmountFormatter, defaultLocale language.Tag, log logger.Logger) *CurrencyService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &CurrencyService{
		currencies:    currencies,
		formatter:     formatter,
		defaultLocale: defaultLocale,
		logger:        log,
	}
}

// Currency looks up a currency by ISO code
func (s *CurrencyService) Currency(ctx context.Context, code string) (entity.CurrencyUnit, error) {
	unit, err := s.currencies.FindByCode(code)
	if err != nil {
		s.logger.Warn("Currency lookup failed", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"code":       code,
			"error":      err.Error(),
		})
		return entity.CurrencyUnit{}, err
	}

	return unit, nil
}

// CurrencyForLocale looks up the currency used in a locale such as "pt-BR"
func (s *CurrencyService) CurrencyForLocale(ctx context.Context, locale string) (entity.CurrencyUnit, error) {
	tag, err := s.parseLocale(locale)
	if err != nil {
		return entity.CurrencyUnit{}, err
	}

	unit, err := s.currencies.FindByLocale(tag)
	if err != nil {
		s.logger.Warn("Currency lookup by locale failed", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"locale":     tag.String(),
			"error":      err.Error(),
		})
		return entity.CurrencyUnit{}, err
	}

	return unit, nil
}

// Amount parses a decimal amount in the currency with the given code
func (s *CurrencyService) Amount(ctx context.Context, amount, code string) (entity.Money, error) {
	unit, err := s.Currency(ctx, code)
	if err != nil {
		return entity.Money{}, err
	}

	return entity.MoneyFromString(amount, unit)
}

// Round applies the default rounding of the amount's currency
func (s *CurrencyService) Round(ctx context.Context, m entity.Money) (entity.Money, error) {
	rounded, err := m.With(entity.DefaultRounding())
	if err != nil {
		return entity.Money{}, fmt.Errorf("failed to round amount: %w", err)
	}

	s.logger.Debug("Amount rounded", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"currency":   m.Currency.Code,
		"amount":     m.Amount.String(),
		"rounded":    rounded.Amount.String(),
	})

	return rounded, nil
}

// Format renders the amount for a locale; an empty locale uses the configured default
func (s *CurrencyService) Format(ctx context.Context, m entity.Money, locale string) (string, error) {
	tag := s.defaultLocale
	if strings.TrimSpace(locale) != "" {
		var err error
		if tag, err = s.parseLocale(locale); err != nil {
			return "", err
		}
	}

	formatted := s.formatter.Format(m, tag)

	s.logger.Debug("Amount formatted", map[string]interface{}{
		"request_id": middleware.GetRequestID(ctx),
		"locale":     tag.String(),
		"formatted":  formatted,
	})

	return formatted, nil
}

func (s *CurrencyService) parseLocale(locale string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", entity.ErrInvalidLocale, locale)
	}
	return tag, nil
}
