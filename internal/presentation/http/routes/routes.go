package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/config"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/handler"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Import  *handler.ImportHandler
	Invoice *handler.InvoiceHandler
	Client  *handler.ClientHandler
	Sales   *handler.SalesHandler
	GST     *handler.GSTHandler
	Payment *handler.PaymentHandler
	Company *handler.CompanyHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerImportRoutes(v1, h)
		registerInvoiceRoutes(v1, h)
		registerClientRoutes(v1, h)
		registerSalesRoutes(v1, h)
		registerGSTRoutes(v1, h)
		registerPaymentRoutes(v1, h)
		registerCompanyRoutes(v1, h)
	}

	return router
}

func registerImportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	imports := v1.Group("/imports")
	{
		imports.POST("/sales/preview", h.Import.PreviewSales)
		imports.POST("/sales", h.Import.ImportSales)
		imports.POST("/sales/:batchID/invoices", h.Import.GenerateInvoices)
		imports.DELETE("/sales/:batchID", h.Import.DeleteBatch)
		imports.POST("/historical/preview", h.Import.PreviewHistorical)
		imports.POST("/historical", h.Import.ImportHistorical)
		imports.POST("/invoices/preview", h.Import.PreviewBulkInvoices)
		imports.POST("/invoices", h.Import.ImportBulkInvoices)
		imports.POST("/payments", h.Import.ImportPayments)
	}
}

func registerInvoiceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PATCH("/:id/status", h.Invoice.UpdateStatus)
		invoices.PATCH("/:id/number", h.Invoice.UpdateNumber)
		invoices.DELETE("/:id", h.Invoice.Delete)
		invoices.DELETE("/items/:itemID", h.Invoice.DeleteItem)
	}
}

func registerClientRoutes(v1 *gin.RouterGroup, h *Handlers) {
	clients := v1.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}
}

func registerSalesRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.DELETE("/:id", h.Sales.Delete)
	}
}

func registerGSTRoutes(v1 *gin.RouterGroup, h *Handlers) {
	gst := v1.Group("/gst")
	{
		gst.GET("", h.GST.List)
		gst.PATCH("/:id/margin", h.GST.UpdateMargin)
		gst.DELETE("/:id", h.GST.Delete)
		gst.GET("/summary/:year", h.GST.MonthlySummary)
		gst.GET("/status/:year/:month", h.GST.GetFilingStatus)
		gst.PUT("/status/:year/:month", h.GST.UpdateFilingStatus)
	}
}

func registerPaymentRoutes(v1 *gin.RouterGroup, h *Handlers) {
	payments := v1.Group("/payments")
	{
		payments.GET("", h.Payment.List)
		payments.GET("/:barcode", h.Payment.Get)
		payments.POST("/:barcode", h.Payment.RecordPayment)
	}
}

func registerCompanyRoutes(v1 *gin.RouterGroup, h *Handlers) {
	company := v1.Group("/company")
	{
		company.GET("", h.Company.Get)
		company.PUT("", h.Company.Update)
	}
}
