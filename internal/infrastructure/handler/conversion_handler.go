// Package handler internal/infrastructure/handler/conversion_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fincatto/money/internal/application/service"
	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/fincatto/money/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// ConversionHandler handles HTTP requests for exchange rates and conversions
type ConversionHandler struct {
	conversions *service.ConversionService
	currencies  *service.CurrencyService
	logger      logger.Logger
}

// NewConversionHandler creates a new conversion handler
func NewConversionHandler(conversions *service.ConversionService, currencies *service.CurrencyService, log logger.Logger) *ConversionHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ConversionHandler{
		conversions: conversions,
		currencies:  currencies,
		logger:      log,
	}
}

// ListProviders handles listing the registered providers
func (h *ConversionHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	contexts := h.conversions.Providers()

	resp := make([]ProviderResponse, 0, len(contexts))
	for _, c := range contexts {
		rateTypes := make([]string, 0, len(c.RateTypes))
		for _, rt := range c.RateTypes {
			rateTypes = append(rateTypes, string(rt))
		}
		resp = append(resp, ProviderResponse{
			Name:       c.ProviderName,
			RateTypes:  rateTypes,
			Attributes: c.Attributes,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetExchangeRate handles retrieving the rate between two currency codes
func (h *ConversionHandler) GetExchangeRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	vars := mux.Vars(r)
	providerName := r.URL.Query().Get("provider")

	h.logger.Info("Handling exchange rate request", map[string]interface{}{
		"request_id": requestID,
		"base":       vars["base"],
		"term":       vars["term"],
		"provider":   providerName,
	})

	rate, err := h.conversions.ExchangeRate(r.Context(), vars["base"], vars["term"], providerName)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toExchangeRateResponse(rate))
}

// GetReversedExchangeRate handles reversing the rate between two currency codes
func (h *ConversionHandler) GetReversedExchangeRate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	vars := mux.Vars(r)
	providerName := r.URL.Query().Get("provider")

	rate, err := h.conversions.ExchangeRate(r.Context(), vars["base"], vars["term"], providerName)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	reversed, err := h.conversions.Reverse(r.Context(), rate, providerName)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toExchangeRateResponse(reversed))
}

// GetAvailability handles checking whether a provider can convert between two currencies
func (h *ConversionHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	vars := mux.Vars(r)
	query := r.URL.Query()

	rateTypes, err := parseRateTypes(query.Get("rate_type"))
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	availability, err := h.conversions.IsConversionAvailable(r.Context(), vars["base"], vars["term"], query.Get("provider"), rateTypes...)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, AvailabilityResponse{
		Base:      availability.Base.Code,
		Term:      availability.Term.Code,
		Provider:  availability.Provider,
		Available: availability.Available,
	})
}

// Convert handles converting an amount into another currency
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	if req.Term == "" {
		sendErrorResponse(w, h.logger, "Missing term currency",
			"The 'term' field is required (e.g., USD, BRL)", http.StatusBadRequest, requestID)
		return
	}

	rateTypes, err := parseRateTypes(req.RateType)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	amount, err := h.currencies.Amount(r.Context(), req.Amount, req.Currency)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	result, err := h.conversions.Convert(r.Context(), amount, req.Term, req.Provider, rateTypes...)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		OriginalAmount:  result.Original.Amount.String(),
		Currency:        result.Original.Currency.Code,
		Term:            result.Converted.Currency.Code,
		ExchangeRate:    result.Rate.Factor.String(),
		ConvertedAmount: result.Converted.Amount.String(),
		Provider:        result.Rate.Context.ProviderName,
	})
}

// parseRateTypes reads an optional rate type; an empty value requests none
func parseRateTypes(value string) ([]entity.RateType, error) {
	if value == "" {
		return nil, nil
	}

	rt, err := entity.ParseRateType(value)
	if err != nil {
		return nil, err
	}
	return []entity.RateType{rt}, nil
}

// RegisterRoutes registers the conversion handler routes
func (h *ConversionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/providers", h.ListProviders).Methods(http.MethodGet)
	router.HandleFunc("/rates/{base}/{term}", h.GetExchangeRate).Methods(http.MethodGet)
	router.HandleFunc("/rates/{base}/{term}/availability", h.GetAvailability).Methods(http.MethodGet)
	router.HandleFunc("/rates/{base}/{term}/reversed", h.GetReversedExchangeRate).Methods(http.MethodGet)
	router.HandleFunc("/conversions", h.Convert).Methods(http.MethodPost)

	h.logger.Info("Conversion routes registered", map[string]interface{}{
		"routes": []string{
			"GET /providers",
			"GET /rates/{base}/{term}",
			"GET /rates/{base}/{term}/availability",
			"GET /rates/{base}/{term}/reversed",
			"POST /conversions",
		},
	})
}
