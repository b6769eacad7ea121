package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"listing-service/internal/adapters/listingapi"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memstore"
	postgres_adapter "listing-service/internal/adapters/postgres"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/fluentlogger"
	"listing-service/pkg/postgres"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	// Сессия поиска поверх remote API. Nil, если LISTINGS_API_URL не задан.
	remoteSearch *listingapi.SearchSession

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
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

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ХРАНИЛИЩЕ ОБЪЯВЛЕНИЙ ---
	var listingStore port.ListingStorePort
	var dbPool *pgxpool.Pool

	switch appConfig.Store.Backend {
	case configs.StoreBackendPostgres:
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		listingStore, err = postgres_adapter.NewPostgresListingRepository(dbPool)
		if err != nil {
			appLogger.Error("Failed to create postgres listing repository", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres listing repository: %w", err)
		}
	default:
		memStore, err := memstore.NewSeedStore()
		if err != nil {
			appLogger.Error("Failed to load embedded seed store", err, nil)
			return nil, fmt.Errorf("failed to load embedded seed store: %w", err)
		}
		appLogger.Info("In-memory seed store loaded", port.Fields{"listings": memStore.Len()})
		listingStore = memStore
	}

	// Клиент remote API опционален: сервис полноценно работает
	// и на одном локальном хранилище. Поверх клиента сразу строим
	// сессию поиска, чтобы конкурентные запросы отбрасывали устаревшие ответы.
	var remoteSearch *listingapi.SearchSession
	if appConfig.ApiClient.ListingsAPIURL != "" {
		apiClient, err := listingapi.NewClient(appConfig.ApiClient.ListingsAPIURL)
		if err != nil {
			appLogger.Error("Failed to create listings api client", err, nil)
			if dbPool != nil {
				dbPool.Close()
			}
			return nil, fmt.Errorf("failed to create listings api client: %w", err)
		}
		remoteSearch = listingapi.NewSearchSession(apiClient)
		appLogger.Info("Listings API client configured", port.Fields{"base_url": apiClient.BaseURL()})
	}
	appLogger.Info("All persistence and service adapters initialized.", nil)

	// --- 4. USE CASES (ядро бизнес-логики) ---
	searchListingsUseCase := usecase.NewSearchListingsUseCase(listingStore)
	getListingByIDUseCase := usecase.NewGetListingByIDUseCase(listingStore)
	getSimilarListingsUseCase := usecase.NewGetSimilarListingsUseCase(listingStore)

	// --- 5. REST API Server ---
	apiHandlers := rest.NewListingsHandler(searchListingsUseCase, getListingByIDUseCase, getSimilarListingsUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, apiHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		remoteSearch: remoteSearch,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// RemoteSearch возвращает сессию поиска по remote API.
// Nil, когда клиент не сконфигурирован.
func (a *App) RemoteSearch() *listingapi.SearchSession {
	return a.remoteSearch
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout: fluent к этому моменту может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
