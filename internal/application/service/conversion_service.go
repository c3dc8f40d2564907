// Package service internal/application/service/conversion_service.go
package service

import (
	"context"
	"fmt"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/domain/repository"
	domainservice "github.com/fincatto/money/internal/domain/service"
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/fincatto/money/internal/infrastructure/middleware"
)

// ConvertedAmount is the result of converting an amount with a provider's rate
type ConvertedAmount struct {
	Original  entity.Money         `json:"original"`
	Rate      *entity.ExchangeRate `json:"rate"`
	Converted entity.Money         `json:"converted"`
}

// Availability tells whether a provider can answer a conversion query
type Availability struct {
	Base      entity.CurrencyUnit `json:"base"`
	Term      entity.CurrencyUnit `json:"term"`
	Provider  string              `json:"provider"`
	Available bool                `json:"available"`
}

// ConversionService converts amounts between currencies using registered providers
type ConversionService struct {
	currencies repository.CurrencyRepository
	providers  domainservice.ExchangeRateProviderRegistry
	logger     logger.Logger
}

// NewConversionService creates a new conversion service
func NewConversionService(currencies repository.CurrencyRepository, providers domainservice.ExchangeRateProviderRegistry, log logger.Logger) *ConversionService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionService{
		currencies: currencies,
		providers:  providers,
		logger:     log,
	}
}

// Providers lists the registered providers
func (s *ConversionService) Providers() []entity.ProviderContext {
	return s.providers.Contexts()
}

// ExchangeRate asks the named provider for the rate between two currency codes
func (s *ConversionService) ExchangeRate(ctx context.Context, baseCode, termCode, providerName string) (*entity.ExchangeRate, error) {
	requestID := middleware.GetRequestID(ctx)

	provider, err := s.provider(ctx, providerName)
	if err != nil {
		return nil, err
	}

	rate, err := provider.GetExchangeRate(baseCode, termCode)
	if err != nil {
		s.logger.Warn("Failed to get exchange rate", map[string]interface{}{
			"request_id": requestID,
			"provider":   provider.Context().ProviderName,
			"base":       baseCode,
			"term":       termCode,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	s.logger.Info("Found exchange rate", map[string]interface{}{
		"request_id": requestID,
		"provider":   rate.Context.ProviderName,
		"base":       rate.Base.Code,
		"term":       rate.Term.Code,
		"factor":     rate.Factor.String(),
	})

	return rate, nil
}

// IsConversionAvailable reports whether the named provider can convert base into term.
// A provider offering none of the requested rate types is reported as unavailable.
func (s *ConversionService) IsConversionAvailable(ctx context.Context, baseCode, termCode, providerName string, rateTypes ...entity.RateType) (*Availability, error) {
	query, err := s.query(baseCode, termCode, providerName, rateTypes)
	if err != nil {
		return nil, err
	}

	provider, err := s.provider(ctx, query.ProviderName())
	if err != nil {
		return nil, err
	}

	pc := provider.Context()
	return &Availability{
		Base:      query.Base,
		Term:      query.Term,
		Provider:  pc.ProviderName,
		Available: query.AcceptsRateTypes(pc.RateTypes) && provider.IsAvailable(query),
	}, nil
}

// Convert converts an amount into the term currency.
// The result is rounded with the term currency's default rounding.
func (s *ConversionService) Convert(ctx context.Context, amount entity.Money, termCode, providerName string, rateTypes ...entity.RateType) (*ConvertedAmount, error) {
	requestID := middleware.GetRequestID(ctx)

	s.logger.Info("Converting amount", map[string]interface{}{
		"request_id": requestID,
		"amount":     amount.Amount.String(),
		"currency":   amount.Currency.Code,
		"term":       termCode,
		"provider":   providerName,
	})

	query, err := s.query(amount.Currency.Code, termCode, providerName, rateTypes)
	if err != nil {
		return nil, err
	}

	provider, err := s.providerFor(ctx, query)
	if err != nil {
		return nil, err
	}

	rate, err := provider.ExchangeRate(query)
	if err != nil {
		s.logger.Warn("Exchange rate not available for conversion", map[string]interface{}{
			"request_id": requestID,
			"provider":   provider.Context().ProviderName,
			"base":       query.Base.Code,
			"term":       query.Term.Code,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	converted, err := entity.NewMoney(amount.Amount.Mul(rate.Factor), rate.Term).With(entity.DefaultRounding())
	if err != nil {
		return nil, fmt.Errorf("failed to round converted amount: %w", err)
	}

	s.logger.Info("Conversion completed", map[string]interface{}{
		"request_id":       requestID,
		"provider":         rate.Context.ProviderName,
		"original_amount":  amount.Amount.String(),
		"currency":         amount.Currency.Code,
		"exchange_rate":    rate.Factor.String(),
		"converted_amount": converted.Amount.String(),
		"term":             converted.Currency.Code,
	})

	return &ConvertedAmount{
		Original:  amount,
		Rate:      rate,
		Converted: converted,
	}, nil
}

// Reverse asks the named provider to reverse a rate
func (s *ConversionService) Reverse(ctx context.Context, rate *entity.ExchangeRate, providerName string) (*entity.ExchangeRate, error) {
	provider, err := s.provider(ctx, providerName)
	if err != nil {
		return nil, err
	}

	reversed, err := provider.Reversed(rate)
	if err != nil {
		s.logger.Warn("Rate cannot be reversed", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"provider":   provider.Context().ProviderName,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to reverse exchange rate: %w", err)
	}

	return reversed, nil
}

func (s *ConversionService) provider(ctx context.Context, name string) (domainservice.ExchangeRateProvider, error) {
	provider, err := s.providers.Provider(name)
	if err != nil {
		s.logger.Warn("Exchange rate provider not found", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"provider":   name,
		})
		return nil, err
	}
	return provider, nil
}

// providerFor selects the query's provider and checks it offers a requested rate type
func (s *ConversionService) providerFor(ctx context.Context, query entity.ConversionQuery) (domainservice.ExchangeRateProvider, error) {
	provider, err := s.provider(ctx, query.ProviderName())
	if err != nil {
		return nil, err
	}

	pc := provider.Context()
	if !query.AcceptsRateTypes(pc.RateTypes) {
		s.logger.Warn("Provider offers none of the requested rate types", map[string]interface{}{
			"request_id": middleware.GetRequestID(ctx),
			"provider":   pc.ProviderName,
			"requested":  query.RateTypes,
			"offered":    pc.RateTypes,
		})
		return nil, fmt.Errorf("%w: %s offers none of the requested rate types", entity.ErrRateNotAvailable, pc.ProviderName)
	}

	return provider, nil
}

func (s *ConversionService) query(baseCode, termCode, providerName string, rateTypes []entity.RateType) (entity.ConversionQuery, error) {
	base, err := s.currencies.FindByCode(baseCode)
	if err != nil {
		return entity.ConversionQuery{}, err
	}

	term, err := s.currencies.FindByCode(termCode)
	if err != nil {
		return entity.ConversionQuery{}, err
	}

	query := entity.ConversionQuery{
		Base:      base,
		Term:      term,
		RateTypes: rateTypes,
	}
	if providerName != "" {
		query.ProviderNames = []string{providerName}
	}
	return query, nil
}
