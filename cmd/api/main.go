package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-billing/internal/forecast"
	"go-inventory-billing/internal/handler"
	"go-inventory-billing/internal/middleware"
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/service"
	"go-inventory-billing/internal/storage"
	"go-inventory-billing/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.Company{}, &model.User{}, &model.Product{}, &model.Customer{}, &model.Order{}, &model.OrderItem{})

	// 3. Collaborators for file storage and document rendering
	store := storage.NewLocalStore(os.Getenv("UPLOAD_DIR"))
	renderer := render.NewTextRenderer()

	// 4. Dependency Injection (Wiring Layers)
	companyRepo := repository.NewCompanyRepo(db)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	txManager := repository.NewTransactionManager(db)

	authService := service.NewAuthService(userRepo, companyRepo)
	companyService := service.NewCompanyService(companyRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(productRepo, store)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(txManager, orderRepo)
	billingService := service.NewBillingService(orderService, orderRepo, renderer, store)
	reportService := service.NewReportService(orderRepo, productRepo)
	forecastService := service.NewForecastService(orderRepo, forecast.NewLinearRegression())

	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(catalogService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(billingService, orderService)
	reportHandler := handler.NewReportHandler(reportService, renderer)
	forecastHandler := handler.NewForecastHandler(forecastService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Billing API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/token", authHandler.Login)

	// Company provisioning happens before any user of the company can log in,
	// so these stay outside the authenticated group.
	api.Post("/companies", companyHandler.CreateCompany)
	api.Get("/companies", companyHandler.GetCompanies)
	api.Get("/companies/:id", companyHandler.GetCompany)

	// ============ PROTECTED ROUTES ============
	// All routes below require a valid bearer token
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// User Management Routes
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Patch("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	// Product Routes
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Patch("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)
	protected.Post("/products/:id/image", productHandler.UploadProductImage)

	// Customer Routes
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Patch("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// Order Routes
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Delete("/orders/:id", orderHandler.DeleteOrder)

	// Report Routes
	protected.Get("/reports/sales", reportHandler.GetSalesReport)
	protected.Get("/reports/low-stock", reportHandler.GetLowStockReport)
	protected.Get("/reports/top-selling", reportHandler.GetTopSellingReport)
	protected.Get("/reports/total-revenue", reportHandler.GetTotalRevenueReport)

	// Forecast Route
	protected.Get("/ai/predict-stock/:product_id", forecastHandler.PredictStock)

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
