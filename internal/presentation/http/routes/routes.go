package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmf-services/backoffice-api/internal/config"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/handler"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/middleware"
	"github.com/lmf-services/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Client      *handler.ClientHandler
	Site        *handler.SiteHandler
	BankAccount *handler.BankAccountHandler
	Invoice     *handler.InvoiceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Clients
	registerClientRoutes(protected, h)

	// Sites
	registerSiteRoutes(protected, h)

	// Bank accounts
	registerBankAccountRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h)
}

func registerClientRoutes(protected *gin.RouterGroup, h *Handlers) {
	clients := protected.Group("/clients")
	{
		clients.GET("", h.Client.ListClients)
		clients.POST("", h.Client.CreateClient)
		clients.GET("/:id", h.Client.GetClient)
		clients.PUT("/:id", h.Client.UpdateClient)
		clients.DELETE("/:id", h.Client.DeleteClient)
	}
}

func registerSiteRoutes(protected *gin.RouterGroup, h *Handlers) {
	sites := protected.Group("/sites")
	{
		sites.GET("", h.Site.ListSites)
		sites.POST("", h.Site.CreateSite)
		sites.GET("/:id", h.Site.GetSite)
		sites.PUT("/:id", h.Site.UpdateSite)
		sites.DELETE("/:id", h.Site.DeleteSite)
	}
}

func registerBankAccountRoutes(protected *gin.RouterGroup, h *Handlers) {
	accounts := protected.Group("/comptes-bancaires")
	{
		accounts.GET("", h.BankAccount.ListBankAccounts)
		accounts.POST("", h.BankAccount.CreateBankAccount)
		accounts.GET("/:id", h.BankAccount.GetBankAccount)
		accounts.PUT("/:id", h.BankAccount.UpdateBankAccount)
		accounts.POST("/:id/activate", h.BankAccount.ActivateBankAccount)
		accounts.DELETE("/:id", h.BankAccount.DeleteBankAccount)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/factures")
	{
		invoices.POST("/generate", h.Invoice.GenerateInvoice)
	}
}
