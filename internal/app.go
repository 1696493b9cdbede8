package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	logger_adapter "marketplace-proxy/internal/adapters/logger"
	"marketplace-proxy/internal/adapters/melifetcher"
	"marketplace-proxy/internal/adapters/rest"
	"marketplace-proxy/internal/configs"
	"marketplace-proxy/internal/core/domain"
	"marketplace-proxy/internal/core/port"
	"marketplace-proxy/internal/core/usecase"
	fluentlogger "marketplace-proxy/pkg/fluent_logger"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. АДАПТЕР МАРКЕТПЛЕЙСА ---
	fetcher, err := melifetcher.NewMeliFetcherAdapter(melifetcher.Config{
		BaseURL: appConfig.Marketplace.BaseURL,
		SiteID:  appConfig.Marketplace.SiteID,
		Timeout: appConfig.Marketplace.Timeout,
	})
	if err != nil {
		appLogger.Error("Failed to create marketplace fetcher", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("failed to create marketplace fetcher: %w", err)
	}
	appLogger.Info("Marketplace fetcher initialized", port.Fields{
		"base_url": appConfig.Marketplace.BaseURL,
		"site_id":  appConfig.Marketplace.SiteID,
	})

	// --- 3. USE CASES ---
	searchItemsUseCase := usecase.NewSearchItemsUseCase(fetcher)
	getItemDetailsUseCase := usecase.NewGetItemDetailsUseCase(fetcher)

	// --- 4. REST API ---
	author := domain.Author{Name: appConfig.Author.Name, Lastname: appConfig.Author.Lastname}
	apiHandlers := rest.NewItemsHandlers(searchItemsUseCase, getItemDetailsUseCase, author)
	router := rest.NewRouter(apiHandlers, rest.CORSOptions{AllowedOrigin: appConfig.Rest.CORSAllowedOrigin}, baseLogger)
	apiServer := rest.NewServer(appConfig.Rest.Port, router, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run запускает сервер и блокируется до сигнала ОС или ошибки сервера.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)
		closeFluent(a.fluentClient)
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"port": a.config.Rest.Port})
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-serverErrors:
		a.logger.Error("Server failed, shutting down", err, nil)
		return err
	}
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		// fluent уже может быть недоступен, поэтому в stdout
		log.Printf("ERROR: Error closing fluent client: %v", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
