package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fincatto/money/internal/application/service"
	"github.com/fincatto/money/internal/infrastructure/config"
	"github.com/fincatto/money/internal/infrastructure/currency"
	"github.com/fincatto/money/internal/infrastructure/format"
	"github.com/fincatto/money/internal/infrastructure/handler"
	"github.com/fincatto/money/internal/infrastructure/logger"
	"github.com/fincatto/money/internal/infrastructure/provider"
	"golang.org/x/text/language"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logger.Level),
		Pretty: cfg.Logger.Pretty,
		File:   cfg.Logger.File,
	})
	logger.SetDefaultLogger(log)

	log.Info("Starting money service", map[string]interface{}{
		"address":          cfg.Server.Address,
		"default_provider": cfg.Rates.DefaultProvider,
		"default_locale":   cfg.Rates.DefaultLocale,
	})

	defaultLocale, err := language.Parse(cfg.Rates.DefaultLocale)
	if err != nil {
		log.Fatal("Invalid default locale", map[string]interface{}{
			"locale": cfg.Rates.DefaultLocale,
			"error":  err.Error(),
		})
	}

	// Initialize repositories and providers
	currencies := currency.NewTextCurrencyRepository()

	registry, err := provider.NewDefaultRegistry(currencies, cfg.Rates.DefaultProvider, log)
	if err != nil {
		log.Fatal("Failed to create provider registry", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize services
	currencyService := service.NewCurrencyService(currencies, format.NewAmountFormatter(), defaultLocale, log)
	conversionService := service.NewConversionService(currencies, registry, log)

	// Initialize handlers
	router := handler.NewRouter(
		handler.NewCurrencyHandler(currencyService, log),
		handler.NewConversionHandler(conversionService, currencyService, log),
		log,
	)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{
			"address": cfg.Server.Address,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
