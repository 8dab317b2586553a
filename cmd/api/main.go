package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lmf-services/backoffice-api/internal/application/service"
	"github.com/lmf-services/backoffice-api/internal/config"
	"github.com/lmf-services/backoffice-api/internal/infrastructure/database"
	"github.com/lmf-services/backoffice-api/internal/infrastructure/repository"
	"github.com/lmf-services/backoffice-api/internal/invoice"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/handler"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/routes"
	"github.com/lmf-services/backoffice-api/pkg/qrbill"
	"github.com/lmf-services/backoffice-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	siteRepo := repository.NewSiteRepository(db)
	bankAccountRepo := repository.NewBankAccountRepository(db)

	// Initialize the invoice composer with its payment slip renderer
	composer := invoice.NewComposer(qrbill.NewRenderer())

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	clientService := service.NewClientService(clientRepo)
	siteService := service.NewSiteService(siteRepo, clientRepo)
	bankAccountService := service.NewBankAccountService(bankAccountRepo)
	invoiceService := service.NewInvoiceService(composer, bankAccountRepo, clientRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Client:      handler.NewClientHandler(clientService),
		Site:        handler.NewSiteHandler(siteService),
		BankAccount: handler.NewBankAccountHandler(bankAccountService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
