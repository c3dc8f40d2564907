package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateType classifies how an exchange rate was obtained
type RateType string

const (
	RateTypeAny      RateType = "ANY"
	RateTypeDeferred RateType = "DEFERRED"
	RateTypeHistoric RateType = "HISTORIC"
	RateTypeOther    RateType = "OTHER"
	RateTypeRealtime RateType = "REALTIME"
)

// ProviderContext describes a registered exchange rate provider
type ProviderContext struct {
	ProviderName string            `json:"provider_name"`
	RateTypes    []RateType        `json:"rate_types"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

// ConversionContext records which provider issued a rate and of what type
type ConversionContext struct {
	ProviderName string   `json:"provider_name"`
	RateType     RateType `json:"rate_type"`
}

// ExchangeRate converts amounts from Base to Term by multiplying with Factor
type ExchangeRate struct {
	Base    CurrencyUnit      `json:"base"`
	Term    CurrencyUnit      `json:"term"`
	Factor  decimal.Decimal   `json:"factor"`
	Context ConversionContext `json:"context"`
}

// IssuedBy reports whether the rate was produced by the named provider
func (r *ExchangeRate) IssuedBy(providerName string) bool {
	return r != nil && r.Context.ProviderName == providerName
}

// ConversionQuery asks a provider for a rate between two currencies
type ConversionQuery struct {
	Base          CurrencyUnit
	Term          CurrencyUnit
	ProviderNames []string
	RateTypes     []RateType
}

// SameCurrency reports whether the query converts a currency into itself
func (q ConversionQuery) SameCurrency() bool {
	return q.Base.Code == q.Term.Code
}

// ProviderName returns the first requested provider, or an empty string
func (q ConversionQuery) ProviderName() string {
	if len(q.ProviderNames) == 0 {
		return ""
	}
	return strings.TrimSpace(q.ProviderNames[0])
}

// AcceptsRateTypes reports whether a provider offering the given rate types can answer the query.
// A query without rate types, or one asking for ANY, accepts every provider.
func (q ConversionQuery) AcceptsRateTypes(offered []RateType) bool {
	if len(q.RateTypes) == 0 {
		return true
	}
	for _, requested := range q.RateTypes {
		if requested == RateTypeAny {
			return true
		}
		for _, rt := range offered {
			if rt == requested {
				return true
			}
		}
	}
	return false
}

// ParseRateType converts a name such as "other" into a RateType
func ParseRateType(s string) (RateType, error) {
	rt := RateType(strings.ToUpper(strings.TrimSpace(s)))
	switch rt {
	case RateTypeAny, RateTypeDeferred, RateTypeHistoric, RateTypeOther, RateTypeRealtime:
		return rt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRateType, s)
}
