package main

import (
	"log"
	"os"

	"go-inventory-billing/internal/forecast"
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/service"
	"go-inventory-billing/internal/storage"
	"go-inventory-billing/internal/tools"
	"go-inventory-billing/pkg/database"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Company{}, &model.User{}, &model.Product{}, &model.Customer{}, &model.Order{}, &model.OrderItem{})

	// 3. Collaborators
	store := storage.NewLocalStore(os.Getenv("UPLOAD_DIR"))
	renderer := render.NewTextRenderer()

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	txManager := repository.NewTransactionManager(db)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(productRepo, store)
	customerService := service.NewCustomerService(customerRepo)
	orderService := service.NewOrderService(txManager, orderRepo)
	billingService := service.NewBillingService(orderService, orderRepo, renderer, store)
	reportService := service.NewReportService(orderRepo, productRepo)
	forecastService := service.NewForecastService(orderRepo, forecast.NewLinearRegression())

	toolHandler := tools.NewHandler(
		catalogService,
		customerService,
		userService,
		orderService,
		billingService,
		reportService,
		forecastService,
		renderer,
		store,
	)

	// 5. Serve the tool surface over streamable HTTP
	mcpServer := tools.NewServer(toolHandler)

	port := os.Getenv("TOOLS_PORT")
	if port == "" {
		port = "8002"
	}

	log.Printf("Tool server listening on :%s", port)
	httpServer := server.NewStreamableHTTPServer(mcpServer)
	if err := httpServer.Start(":" + port); err != nil {
		log.Fatal("Tool server stopped:", err)
	}
}
