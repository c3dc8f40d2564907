// internal/mocks/mocks.go
package mocks

import (
	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/domain/service"
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/language"
)

// MockCurrencyRepository mocks the CurrencyRepository interface
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindByCode(code string) (entity.CurrencyUnit, error) {
	args := m.Called(code)
	return args.Get(0).(entity.CurrencyUnit), args.Error(1)
}

func (m *MockCurrencyRepository) FindByLocale(locale language.Tag) (entity.CurrencyUnit, error) {
	args := m.Called(locale)
	return args.Get(0).(entity.CurrencyUnit), args.Error(1)
}

// MockExchangeRateProvider mocks the ExchangeRateProvider interface
type MockExchangeRateProvider struct {
	mock.Mock
}

func (m *MockExchangeRateProvider) Context() entity.ProviderContext {
	args := m.Called()
	return args.Get(0).(entity.ProviderContext)
}

func (m *MockExchangeRateProvider) IsAvailable(query entity.ConversionQuery) bool {
	args := m.Called(query)
	return args.Bool(0)
}

func (m *MockExchangeRateProvider) GetExchangeRate(baseCode, termCode string) (*entity.ExchangeRate, error) {
	args := m.Called(baseCode, termCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateProvider) ExchangeRate(query entity.ConversionQuery) (*entity.ExchangeRate, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateProvider) Reversed(rate *entity.ExchangeRate) (*entity.ExchangeRate, error) {
	args := m.Called(rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExchangeRate), args.Error(1)
}

// MockProviderRegistry mocks the ExchangeRateProviderRegistry interface
type MockProviderRegistry struct {
	mock.Mock
}

func (m *MockProviderRegistry) Provider(name string) (service.ExchangeRateProvider, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(service.ExchangeRateProvider), args.Error(1)
}

func (m *MockProviderRegistry) Contexts() []entity.ProviderContext {
	args := m.Called()
	return args.Get(0).([]entity.ProviderContext)
}

// MockLogger mocks the logger interface
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) Fatal(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *MockLogger) WithField(key string, value interface{}) logger.Logger {
	args := m.Called(key, value)
	return args.Get(0).(logger.Logger)
}

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	args := m.Called(fields)
	return args.Get(0).(logger.Logger)
}
