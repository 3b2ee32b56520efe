package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/config"
	"github.com/alkbooks/invoicing-api/internal/infrastructure/database"
	"github.com/alkbooks/invoicing-api/internal/infrastructure/repository"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/handler"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/routes"
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

	// Initialize repositories
	salesRepo := repository.NewSalesRepository(db)
	trackerRepo := repository.NewPaymentTrackerRepository(db)
	gstRepo := repository.NewGSTRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	itemRepo := repository.NewInvoiceItemRepository(db)
	clientRepo := repository.NewClientRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	gstStatusRepo := repository.NewGSTMonthlyStatusRepository(db)

	// Initialize services
	deriver := service.NewDeriver(cfg.Invoicing.GSTRate)
	clientService := service.NewClientService(clientRepo, companyRepo)
	companyService := service.NewCompanyService(companyRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, itemRepo, clientService, companyRepo, cfg.Invoicing)
	salesImportService := service.NewSalesImportService(salesRepo, trackerRepo, gstRepo, invoiceService, deriver, cfg.Invoicing)
	historicalImportService := service.NewHistoricalImportService(salesRepo, trackerRepo, gstRepo, invoiceRepo, itemRepo, clientService, deriver, cfg.Invoicing)
	bulkInvoiceService := service.NewBulkInvoiceService(invoiceRepo, itemRepo, clientService, cfg.Invoicing)
	paymentImportService := service.NewPaymentImportService(trackerRepo)
	gstService := service.NewGSTService(gstRepo, salesRepo, trackerRepo, gstStatusRepo, deriver)
	trackerService := service.NewPaymentTrackerService(trackerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Import:  handler.NewImportHandler(salesImportService, historicalImportService, bulkInvoiceService, paymentImportService),
		Invoice: handler.NewInvoiceHandler(invoiceService),
		Client:  handler.NewClientHandler(clientService),
		Sales:   handler.NewSalesHandler(salesImportService),
		GST:     handler.NewGSTHandler(gstService),
		Payment: handler.NewPaymentHandler(trackerService),
		Company: handler.NewCompanyHandler(companyService),
	}

	// Setup routes and start the server
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
