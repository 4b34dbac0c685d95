package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	auditUseCase "github.com/votequest/coin-service/internal/domain/usecase/audit"
	ledgerUseCase "github.com/votequest/coin-service/internal/domain/usecase/ledger"
	storeUseCase "github.com/votequest/coin-service/internal/domain/usecase/store"
	userUseCase "github.com/votequest/coin-service/internal/domain/usecase/user"

	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/handler"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/api/routes"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/database"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/logger"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/notify"
	"github.com/votequest/coin-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/votequest/coin-service/internal/infrastructure/adapter/time"
	"github.com/votequest/coin-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = conn.Close()
	}()

	// Run migrations
	if err := database.Migrate(conn.DB, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	medalRepo := repository.NewMedalRepository(conn.DB, tp, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Initialize use cases
	notifier := notify.NewLogNotifier(appLogger)
	ledger := ledgerUseCase.NewEngine(uow, notifier, tp, appLogger)
	users := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	audit := auditUseCase.NewService(userRepo, transactionRepo, ledger, tp, appLogger)
	medals := storeUseCase.NewMedalService(nil, medalRepo, ledger, appLogger)

	// Initialize API handlers
	transactionHandler := handler.NewTransactionHandler(ledger, appLogger)
	userHandler := handler.NewUserHandler(users, cfg.Ledger.InitialUserCoins, appLogger)
	auditHandler := handler.NewAuditHandler(audit, cfg.Scan.Secret, cfg.Scan.PageSize, appLogger)
	medalHandler := handler.NewMedalHandler(medals, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, transactionHandler, userHandler, auditHandler, medalHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parsePort converts the configured database port to an int, defaulting to 5432
func parsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 {
		return 5432
	}
	return p
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or VQ_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or VQ_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or VQ_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or VQ_DB_NAME environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Scan.Secret == "" {
		missingConfigs = append(missingConfigs, "scan.secret (or VQ_SCAN_SECRET environment variable)")
	}
	if cfg.Scan.PageSize <= 0 {
		missingConfigs = append(missingConfigs, "scan.pageSize")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		if cfg.Server.ReadTimeout < 5*time.Second || cfg.Server.WriteTimeout < 5*time.Second {
			log.Println("Warning: server timeouts are low for production")
		}
	}

	return nil
}
