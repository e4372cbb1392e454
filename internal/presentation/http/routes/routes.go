package routes

import (
	"time"

	"github.com/chingz/pos-api/internal/config"
	"github.com/chingz/pos-api/internal/domain/entity"
	domainRepo "github.com/chingz/pos-api/internal/domain/repository"
	"github.com/chingz/pos-api/internal/presentation/http/handler"
	"github.com/chingz/pos-api/internal/presentation/http/middleware"
	"github.com/chingz/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Invoice   *handler.InvoiceHandler
	Receipt   *handler.ReceiptHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RestaurantRepo  domainRepo.RestaurantRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
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
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.RestaurantMiddleware(deps.RestaurantRepo))
		protected.Use(middleware.RequireRestaurant())

		// Per-restaurant rate limiter
		rateLimiter := middleware.NewRestaurantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/register", middleware.RequireRole(entity.RoleAdmin), h.Auth.Register)
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Menu and recipes
	registerMenuRoutes(protected, h)

	// Invoices and receipts
	registerInvoiceRoutes(protected, h, deps)

	// Printer
	protected.GET("/printer/status", h.Receipt.PrinterStatus)
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menuItems := protected.Group("/menu-items")
	{
		menuItems.GET("", h.Menu.List)
		menuItems.POST("", middleware.RequireRole(entity.RoleAdmin), h.Menu.Create)
		menuItems.GET("/:id", h.Menu.Get)
		menuItems.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.Menu.Update)
		menuItems.PUT("/:id/recipe", middleware.RequireRole(entity.RoleAdmin), h.Menu.UpdateRecipe)
		menuItems.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Menu.Delete)
	}

	protected.GET("/recipes", h.Menu.SearchRecipes)
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		// Invoice creation uses idempotency middleware to prevent duplicates
		invoices.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.GET("/:id/receipt", h.Receipt.Download)
		invoices.POST("/:id/print", h.Receipt.Print)
		invoices.GET("/:id/whatsapp", h.Receipt.WhatsApp)
	}
}
