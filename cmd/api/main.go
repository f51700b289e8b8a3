package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	transactionUseCase "github.com/Akilan7123/DreamPixel/internal/domain/usecase/transaction"
	userUseCase "github.com/Akilan7123/DreamPixel/internal/domain/usecase/user"

	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/handler"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/routes"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/database"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/memory"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/razorpay"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/security"
	timeProvider "github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/time"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/config"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/scheduler"

	"github.com/gin-gonic/gin"
)

// store is what main needs from either backend
type store interface {
	persistence.UnitOfWork
	handler.Pinger
	Close() error
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Minute)
	st, err := openStore(startCtx, cfg, appLogger, tp)
	cancelStart()
	if err != nil {
		appLogger.Error("Failed to open store", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}

	// Auth
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	issuer, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to create token issuer", map[string]any{"error": err.Error()})
		_ = st.Close()
		_ = appLogger.Flush()
		os.Exit(1)
	}

	// Use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(
		st.GetUserRepository(context.Background()),
		hasher,
		issuer,
		tp,
		appLogger,
		cfg.Auth.SignupCredits,
	)

	gatewayClient := razorpay.NewClient(razorpay.Config{
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
		BaseURL:   cfg.Payment.BaseURL,
		Timeout:   cfg.Payment.Timeout,
	}, nil, appLogger)

	transactionUseCaseImpl := transactionUseCase.NewTransactionService(
		st,
		gatewayClient,
		tp,
		appLogger,
		transactionUseCase.Config{
			KeySecret:      cfg.Payment.KeySecret,
			Currency:       cfg.Payment.Currency,
			GatewayTimeout: cfg.Payment.Timeout,
			Reconcile: transactionUseCase.ReconcileConfig{
				MinAge:    cfg.Reconciler.MinAge,
				MaxAge:    cfg.Reconciler.MaxAge,
				BatchSize: cfg.Reconciler.BatchSize,
				Workers:   cfg.Reconciler.Workers,
			},
		},
	)

	// Background settlement sweep
	var reconciler *scheduler.Reconciler
	if cfg.Reconciler.Enabled {
		reconciler, err = scheduler.NewReconciler(transactionUseCaseImpl, appLogger, scheduler.Config{
			Schedule: cfg.Reconciler.Schedule,
		})
		if err != nil {
			appLogger.Error("Failed to create reconciler", map[string]any{"error": err.Error()})
			_ = st.Close()
			_ = appLogger.Flush()
			os.Exit(1)
		}
		reconciler.Start()
	}

	// HTTP
	router := routes.NewRouter(routes.Handlers{
		User:    handler.NewUserHandler(userUseCaseImpl, appLogger),
		Payment: handler.NewPaymentHandler(transactionUseCaseImpl, appLogger),
		Health:  handler.NewHealthHandler(st, appLogger),
	}, userUseCaseImpl, appLogger, cfg.Server.AllowedOrigins)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":   cfg.Server.Port,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Server failed", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop the sweep before the store it writes to goes away
	if reconciler != nil {
		if err := reconciler.Stop(ctx); err != nil {
			appLogger.Warn("Reconciler did not stop in time", map[string]any{"error": err.Error()})
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	if err := st.Close(); err != nil {
		appLogger.Error("Failed to close store", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStore builds the configured backend; postgres is migrated when autoMigrate is set
func openStore(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (store, error) {
	if cfg.Database.Driver == database.DriverMemory {
		appLogger.Warn("Using in-memory store; data is lost on restart", nil)
		return memory.NewStore(appLogger, tp), nil
	}

	dbConfig := &database.Config{
		Driver:          database.DriverPostgres,
		URL:             cfg.Database.URL,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
	if err := dbConfig.Validate(); err != nil {
		return nil, err
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
			_ = dbManager.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	return postgresStore{UnitOfWork: dbManager.CreateUnitOfWork(), Manager: dbManager}, nil
}

// postgresStore pairs the unit of work with the manager that owns the pool
type postgresStore struct {
	persistence.UnitOfWork
	*database.Manager
}

// validateConfig runs the structural checks and warns about risky production settings
func validateConfig(cfg *config.Config) error {
	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	var missingConfigs []string
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Payment.Timeout == 0 {
		missingConfigs = append(missingConfigs, "payment.timeout")
	}
	if cfg.Database.Driver == database.DriverPostgres && cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Reconciler.Enabled && cfg.Reconciler.Schedule == "" {
		missingConfigs = append(missingConfigs, "reconciler.schedule")
	}
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverMemory {
			warnings = append(warnings, "database.driver is memory; balances will not survive a restart")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.URL == "" && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret is shorter than 32 bytes")
		}
		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins allows any origin")
				break
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
