package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	generationUseCase "github.com/sketchmotion/credit-engine/internal/domain/usecase/generation"
	ledgerUseCase "github.com/sketchmotion/credit-engine/internal/domain/usecase/ledger"
	paymentUseCase "github.com/sketchmotion/credit-engine/internal/domain/usecase/payment"
	referralUseCase "github.com/sketchmotion/credit-engine/internal/domain/usecase/referral"
	userUseCase "github.com/sketchmotion/credit-engine/internal/domain/usecase/user"

	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/handler"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/api/routes"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/billing"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/database"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/database/migration"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/logger"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/provider"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/sketchmotion/credit-engine/internal/infrastructure/adapter/time"
	"github.com/sketchmotion/credit-engine/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := database.CreateConfigFromViperConfig(cfg)
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManagerWithTimeProvider(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed the credit package catalogue if it is empty
	if err := migration.SeedDefaultPackages(context.Background(), dbManager.DB()); err != nil {
		appLogger.Error("Failed to seed credit packages", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	jobRepo := repository.NewGenerationJobRepository(dbManager.DB(), appLogger)
	paymentRepo := repository.NewPaymentRepository(dbManager.DB(), appLogger)
	packageRepo := repository.NewCreditPackageRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Initialize use cases
	ledgerService := ledgerUseCase.NewService(uow, tp, appLogger, ledgerUseCase.Config{
		CheckInBonus:   cfg.Credits.CheckInBonus,
		MaxRetries:     cfg.Credits.MaxRetries,
		RetryBaseDelay: time.Duration(cfg.Credits.RetryBaseDelayMs) * time.Millisecond,
	})

	referralService := referralUseCase.NewService(uow, tp, appLogger, referralUseCase.Config{
		SignupReferrerBonus: cfg.Credits.ReferralSignupBonus,
		SignupRefereeBonus:  cfg.Credits.RefereeSignupBonus,
		FirstVideoBonus:     cfg.Credits.FirstVideoBonus,
	})

	userService := userUseCase.NewService(userRepo, ledgerService, referralService, tp, appLogger, cfg.Credits.SignupBonus)

	generationClient := provider.NewGenerationClient(provider.Config{
		BaseURL:        cfg.Provider.BaseURL,
		APIToken:       cfg.Provider.APIToken,
		RequestTimeout: cfg.Provider.RequestTimeout,
		MaxRetries:     cfg.Provider.MaxRetries,
		RetryBaseDelay: time.Duration(cfg.Provider.RetryBaseDelayMs) * time.Millisecond,
	}, tp, appLogger)

	coordinator := generationUseCase.NewCoordinator(
		jobRepo,
		userRepo,
		ledgerService,
		referralService,
		generationClient,
		tp,
		appLogger,
		cfg.Credits.VideoCreationCost,
	)
	poller := generationUseCase.NewPoller(
		coordinator,
		tp,
		appLogger,
		cfg.Provider.PollMaxAttempts,
		time.Duration(cfg.Provider.PollIntervalMs)*time.Millisecond,
	)

	stripeProvider := billing.NewStripeProvider(billing.Config{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
	}, appLogger)

	paymentService := paymentUseCase.NewService(ledgerService, paymentRepo, packageRepo, stripeProvider, tp, appLogger)

	// Initialize API handlers
	generationHandler := handler.NewGenerationHandler(coordinator, poller, appLogger)
	creditHandler := handler.NewCreditHandler(ledgerService, appLogger)
	paymentHandler := handler.NewPaymentHandler(paymentService, stripeProvider, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	adminHandler := handler.NewAdminHandler(ledgerService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, generationHandler, creditHandler, paymentHandler, userHandler, adminHandler, cfg.Admin.Token)

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

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
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

	// Validate database configuration
	if cfg.Database.Host == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("CE_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or CE_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("CE_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or CE_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("CE_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or CE_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("CE_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or CE_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("CE_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or CE_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate credit economy configuration
	if cfg.Credits.VideoCreationCost <= 0 {
		missingConfigs = append(missingConfigs, "credits.videoCreationCost")
	}

	if cfg.Credits.MaxRetries == 0 {
		missingConfigs = append(missingConfigs, "credits.maxRetries")
	}

	// Validate generation provider configuration
	if cfg.Provider.BaseURL == "" {
		// In production, check if environment variable exists
		if cfg.Environment == config.Production && os.Getenv("CE_PROVIDER_BASE_URL") == "" {
			missingConfigs = append(missingConfigs, "provider.baseUrl (or CE_PROVIDER_BASE_URL environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "provider.baseUrl")
		}
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		if strings.ToLower(cfg.Database.SSLMode) != "require" && strings.ToLower(cfg.Database.SSLMode) != "verify-ca" && strings.ToLower(cfg.Database.SSLMode) != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check payment settings
		if cfg.Stripe.SecretKey == "" {
			warnings = append(warnings, "stripe.secretKey is empty, checkout will be unavailable")
		}
		if cfg.Stripe.WebhookSecret == "" {
			warnings = append(warnings, "stripe.webhookSecret is empty, webhook signatures cannot be verified")
		}
		if cfg.Admin.Token == "" {
			warnings = append(warnings, "admin.token is empty, admin credit endpoints are disabled")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
