// Package handler internal/infrastructure/handler/currency_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fincatto/money/internal/application/service"
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/fincatto/money/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// CurrencyHandler handles HTTP requests for currency lookup and formatting
type CurrencyHandler struct {
	service *service.CurrencyService
	logger  logger.Logger
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(service *service.CurrencyService, log logger.Logger) *CurrencyHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &CurrencyHandler{
		service: service,
		logger:  log,
	}
}

// GetCurrency handles looking a currency up by its ISO code
func (h *CurrencyHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	code := mux.Vars(r)["code"]

	unit, err := h.service.Currency(r.Context(), code)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toCurrencyResponse(unit))
}

// GetCurrencyForLocale handles looking a currency up by locale
func (h *CurrencyHandler) GetCurrencyForLocale(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	locale := r.URL.Query().Get("locale")
	if locale == "" {
		h.logger.Warn("Missing locale parameter", map[string]interface{}{
			"request_id": requestID,
		})
		sendErrorResponse(w, h.logger, "Missing locale parameter",
			"The 'locale' query parameter is required (e.g., pt-BR, en-US)", http.StatusBadRequest, requestID)
		return
	}

	unit, err := h.service.CurrencyForLocale(r.Context(), locale)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, toCurrencyResponse(unit))
}

// FormatAmount handles rendering an amount for a locale
func (h *CurrencyHandler) FormatAmount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req FormatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	amount, err := h.service.Amount(r.Context(), req.Amount, req.Currency)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	if req.Round {
		if amount, err = h.service.Round(r.Context(), amount); err != nil {
			sendDomainError(w, h.logger, err, requestID)
			return
		}
	}

	formatted, err := h.service.Format(r.Context(), amount, req.Locale)
	if err != nil {
		sendDomainError(w, h.logger, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, FormatResponse{
		Formatted: formatted,
		Amount:    amount.Amount.String(),
		Currency:  amount.Currency.Code,
	})
}

// RegisterRoutes registers the currency handler routes
func (h *CurrencyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/currencies/{code}", h.GetCurrency).Methods(http.MethodGet)
	router.HandleFunc("/currencies", h.GetCurrencyForLocale).Methods(http.MethodGet)
	router.HandleFunc("/format", h.FormatAmount).Methods(http.MethodPost)

	h.logger.Info("Currency routes registered", map[string]interface{}{
		"routes": []string{
			"GET /currencies/{code}",
			"GET /currencies?locale=",
			"POST /format",
		},
	})
}
