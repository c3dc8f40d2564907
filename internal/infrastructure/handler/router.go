package handler

import (
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/fincatto/money/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

// NewRouter wires both handlers behind the request id, logging and recovery middleware
func NewRouter(currencies *CurrencyHandler, conversions *ConversionHandler, log logger.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddleware(log),
		middleware.RecoveryMiddleware(log),
	)

	currencies.RegisterRoutes(router)
	conversions.RegisterRoutes(router)

	return router
}
