package main

import (
	"log"

	"github.com/chingz/pos-api/internal/application/service"
	"github.com/chingz/pos-api/internal/config"
	"github.com/chingz/pos-api/internal/infrastructure/database"
	infraRepo "github.com/chingz/pos-api/internal/infrastructure/repository"
	"github.com/chingz/pos-api/internal/presentation/http/handler"
	"github.com/chingz/pos-api/internal/presentation/http/routes"
	"github.com/chingz/pos-api/pkg/printer"
	"github.com/chingz/pos-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the default restaurant and admin user on first boot
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	// Initialize repositories
	userRepo := infraRepo.NewUserRepository(db)
	restaurantRepo := infraRepo.NewRestaurantRepository(db)
	menuItemRepo := infraRepo.NewMenuItemRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	invoiceItemRepo := infraRepo.NewInvoiceItemRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	// Initialize thermal printer. A misconfigured printer must not keep the
	// counter from billing, so fall back to the null printer.
	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: printer not available (%v), receipts will not print", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()

	// Initialize services
	authService := service.NewAuthService(userRepo, restaurantRepo, jwtManager)
	menuService := service.NewMenuService(menuItemRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, invoiceItemRepo, menuItemRepo, restaurantRepo)
	dashboardService := service.NewDashboardService(invoiceRepo, menuItemRepo)
	receiptService := service.NewReceiptService(invoiceRepo, restaurantRepo, thermalPrinter, cfg.Printer.Type, cfg.Printer.PaperWidth)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Menu:      handler.NewMenuHandler(menuService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Receipt:   handler.NewReceiptHandler(receiptService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RestaurantRepo:  restaurantRepo,
	})

	// Start server
	log.Printf("Starting %s on port %s (env: %s)", cfg.App.Name, cfg.App.Port, cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
