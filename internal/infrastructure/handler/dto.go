package handler

// CurrencyResponse represents a currency unit
type CurrencyResponse struct {
	Code                  string `json:"code"`
	DefaultFractionDigits int    `json:"default_fraction_digits"`
}

// ProviderResponse describes a registered exchange rate provider
type ProviderResponse struct {
	Name       string            `json:"name"`
	RateTypes  []string          `json:"rate_types"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ExchangeRateResponse represents an exchange rate
type ExchangeRateResponse struct {
	Base     string `json:"base"`
	Term     string `json:"term"`
	Factor   string `json:"factor"`
	Provider string `json:"provider"`
	RateType string `json:"rate_type"`
}

// AvailabilityResponse tells whether a provider can convert between two currencies
type AvailabilityResponse struct {
	Base      string `json:"base"`
	Term      string `json:"term"`
	Provider  string `json:"provider"`
	Available bool   `json:"available"`
}

// ConvertRequest represents the request body for the conversion endpoint
type ConvertRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Term     string `json:"term"`
	Provider string `json:"provider,omitempty"`
	RateType string `json:"rate_type,omitempty"`
}

// ConvertResponse represents the response of the conversion endpoint
type ConvertResponse struct {
	OriginalAmount  string `json:"original_amount"`
	Currency        string `json:"currency"`
	Term            string `json:"term"`
	ExchangeRate    string `json:"exchange_rate"`
	ConvertedAmount string `json:"converted_amount"`
	Provider        string `json:"provider"`
}

// FormatRequest represents the request body for the format endpoint
type FormatRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Locale   string `json:"locale,omitempty"`
	Round    bool   `json:"round,omitempty"`
}

// FormatResponse represents the response of the format endpoint
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}
