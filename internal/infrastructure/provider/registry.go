package provider

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/domain/repository"
	"github.com/fincatto/money/internal/domain/service"
	"github.com/fincatto/money/internal/infrastructure/logger"
)

// Registry maps provider names to providers.
// It is filled at startup and only read afterwards, so it carries no lock.
type Registry struct {
	providers   map[string]service.ExchangeRateProvider
	defaultName string
	logger      logger.Logger
}

// NewRegistry creates an empty registry whose default provider is defaultName
func NewRegistry(defaultName string, log logger.Logger) *Registry {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &Registry{
		providers:   make(map[string]service.ExchangeRateProvider),
		defaultName: defaultName,
		logger:      log,
	}
}

// NewDefaultRegistry registers the custom and identity providers
func NewDefaultRegistry(currencies repository.CurrencyRepository, defaultName string, log logger.Logger) (*Registry, error) {
	registry := NewRegistry(defaultName, log)

	for _, p := range []service.ExchangeRateProvider{
		NewCustomRateProvider(currencies),
		NewIdentityRateProvider(currencies),
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	if _, err := registry.Provider(""); err != nil {
		return nil, fmt.Errorf("default provider: %w", err)
	}

	return registry, nil
}

// Register adds a provider under its context name
func (r *Registry) Register(p service.ExchangeRateProvider) error {
	name := strings.TrimSpace(p.Context().ProviderName)
	if name == "" {
		return errors.New("provider name must not be empty")
	}

	key := strings.ToUpper(name)
	if _, exists := r.providers[key]; exists {
		return fmt.Errorf("provider %s is already registered", name)
	}

	r.providers[key] = p

	r.logger.Info("Exchange rate provider registered", map[string]interface{}{
		"provider":   name,
		"rate_types": p.Context().RateTypes,
	})

	return nil
}

// Provider returns the named provider, ignoring case.
// An empty name selects the default provider.
func (r *Registry) Provider(name string) (service.ExchangeRateProvider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = r.defaultName
	}

	p, ok := r.providers[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownProvider, name)
	}

	return p, nil
}

// Names returns the registered provider names in order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Context().ProviderName)
	}
	sort.Strings(names)
	return names
}

// Contexts returns the contexts of all providers ordered by name
func (r *Registry) Contexts() []entity.ProviderContext {
	contexts := make([]entity.ProviderContext, 0, len(r.providers))
	for _, p := range r.providers {
		contexts = append(contexts, p.Context())
	}
	sort.Slice(contexts, func(i, j int) bool {
		return contexts[i].ProviderName < contexts[j].ProviderName
	})
	return contexts
}
