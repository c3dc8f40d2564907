package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fincatto/money/internal/domain/entity"
	"github.com/fincatto/money/internal/infrastructure/logger"
)

// writeJSON sends a JSON body with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	writeJSON(w, statusCode, ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	})
}

// sendDomainError maps a domain error onto an HTTP status and sends it
func sendDomainError(w http.ResponseWriter, log logger.Logger, err error, requestID string) {
	fields := map[string]interface{}{
		"request_id": requestID,
		"error":      err.Error(),
	}

	switch {
	case errors.Is(err, entity.ErrUnknownCurrency):
		log.Warn("Unknown currency", fields)
		sendErrorResponse(w, log, "Unknown currency", err.Error(), http.StatusBadRequest, requestID)
	case errors.Is(err, entity.ErrInvalidLocale):
		log.Warn("Invalid locale", fields)
		sendErrorResponse(w, log, "Invalid locale", err.Error(), http.StatusBadRequest, requestID)
	case errors.Is(err, entity.ErrInvalidAmount):
		log.Warn("Invalid amount", fields)
		sendErrorResponse(w, log, "Invalid amount", err.Error(), http.StatusBadRequest, requestID)
	case errors.Is(err, entity.ErrCurrencyMismatch):
		log.Warn("Currency mismatch", fields)
		sendErrorResponse(w, log, "Currency mismatch", err.Error(), http.StatusBadRequest, requestID)
	case errors.Is(err, entity.ErrUnknownRateType):
		log.Warn("Unknown rate type", fields)
		sendErrorResponse(w, log, "Unknown rate type", err.Error(), http.StatusBadRequest, requestID)
	case errors.Is(err, entity.ErrUnknownProvider):
		log.Warn("Unknown exchange rate provider", fields)
		sendErrorResponse(w, log, "Exchange rate provider not found", err.Error(), http.StatusNotFound, requestID)
	case errors.Is(err, entity.ErrRateNotAvailable):
		log.Warn("Exchange rate not available", fields)
		sendErrorResponse(w, log, "Exchange rate not available",
			"The provider cannot supply a rate for this currency pair", http.StatusUnprocessableEntity, requestID)
	default:
		log.Error("Unexpected error", fields)
		sendErrorResponse(w, log, "Internal server error",
			"An unexpected error occurred. Please try again later.", http.StatusInternalServerError, requestID)
	}
}

func toCurrencyResponse(unit entity.CurrencyUnit) CurrencyResponse {
	return CurrencyResponse{
		Code:                  unit.Code,
		DefaultFractionDigits: unit.DefaultFractionDigits,
	}
}

func toExchangeRateResponse(rate *entity.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Base:     rate.Base.Code,
		Term:     rate.Term.Code,
		Factor:   rate.Factor.String(),
		Provider: rate.Context.ProviderName,
		RateType: string(rate.Context.RateType),
	}
}
