package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"go-inventory-billing/internal/forecast"
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/service"
	"go-inventory-billing/internal/storage"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

type toolFixture struct {
	handler *Handler
	db      *gorm.DB
	company *model.Company
	user    *model.User
}

func newToolFixture(t *testing.T) *toolFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:tools_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&model.Company{}, &model.User{}, &model.Product{},
		&model.Customer{}, &model.Order{}, &model.OrderItem{},
	))

	company := &model.Company{Name: "Acme"}
	require.NoError(t, db.Create(company).Error)
	user := &model.User{Username: "alice", Email: "alice@example.com", CompanyID: company.ID, IsActive: true}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)

	store := storage.NewLocalStore(t.TempDir())
	renderer := render.NewTextRenderer()

	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	txManager := repository.NewTransactionManager(db)

	orderService := service.NewOrderService(txManager, orderRepo)
	handler := NewHandler(
		service.NewCatalogService(productRepo, store),
		service.NewCustomerService(customerRepo),
		service.NewUserService(userRepo),
		orderService,
		service.NewBillingService(orderService, orderRepo, renderer, store),
		service.NewReportService(orderRepo, productRepo),
		service.NewForecastService(orderRepo, forecast.NewLinearRegression()),
		renderer,
		store,
	)

	return &toolFixture{handler: handler, db: db, company: company, user: user}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestCreateAndReadProductTools(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	res, err := f.handler.createProduct(ctx, callRequest(map[string]any{
		"company_id": f.company.ID.String(),
		"name":       "Widget",
		"price":      9.5,
		"stock":      3,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var created model.Product
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &created))
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, f.company.ID, created.CompanyID)

	res, err = f.handler.readProduct(ctx, callRequest(map[string]any{
		"company_id": f.company.ID.String(),
		"product_id": created.ID.String(),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var fetched model.Product
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
}

func TestReadProductToolForeignTenant(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	rival := &model.Company{Name: "Rival"}
	require.NoError(t, f.db.Create(rival).Error)
	product := &model.Product{Name: "Widget", Price: 10, Stock: 5, CompanyID: f.company.ID}
	require.NoError(t, f.db.Create(product).Error)

	res, err := f.handler.readProduct(ctx, callRequest(map[string]any{
		"company_id": rival.ID.String(),
		"product_id": product.ID.String(),
	}))
	require.NoError(t, err)
	// Failures are tool error payloads, never transport errors.
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not found")
}

func TestToolRejectsMalformedCompanyID(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	res, err := f.handler.readProducts(ctx, callRequest(map[string]any{
		"company_id": "not-a-uuid",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "company_id")
}

func TestCreateOrderAndInvoiceTool(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	customer := &model.Customer{Name: "Cust", Contact: "c@example.com", CompanyID: f.company.ID}
	require.NoError(t, f.db.Create(customer).Error)
	product := &model.Product{Name: "Widget", Price: 10, Stock: 5, CompanyID: f.company.ID}
	require.NoError(t, f.db.Create(product).Error)

	res, err := f.handler.createOrderAndInvoice(ctx, callRequest(map[string]any{
		"company_id":  f.company.ID.String(),
		"user_id":     f.user.ID.String(),
		"customer_id": customer.ID.String(),
		"items": []any{
			map[string]any{"product_id": product.ID.String(), "quantity": 3},
		},
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var order model.Order
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &order))
	assert.Equal(t, 30.0, order.TotalPrice)
	require.NotNil(t, order.InvoicePath)

	var stored model.Product
	require.NoError(t, f.db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 2, stored.Stock)
}

func TestCreateOrderToolInsufficientStock(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	customer := &model.Customer{Name: "Cust", Contact: "c@example.com", CompanyID: f.company.ID}
	require.NoError(t, f.db.Create(customer).Error)
	product := &model.Product{Name: "Widget", Price: 10, Stock: 2, CompanyID: f.company.ID}
	require.NoError(t, f.db.Create(product).Error)

	res, err := f.handler.createOrderAndInvoice(ctx, callRequest(map[string]any{
		"company_id":  f.company.ID.String(),
		"user_id":     f.user.ID.String(),
		"customer_id": customer.ID.String(),
		"items": []any{
			map[string]any{"product_id": product.ID.String(), "quantity": 3},
		},
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "stock")
}

func TestPredictStockToolNoHistory(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	product := &model.Product{Name: "Widget", Price: 10, Stock: 5, CompanyID: f.company.ID}
	require.NoError(t, f.db.Create(product).Error)

	res, err := f.handler.predictStock(ctx, callRequest(map[string]any{
		"company_id": f.company.ID.String(),
		"product_id": product.ID.String(),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "history")
}

func TestTotalRevenueToolPDFStoresArtifact(t *testing.T) {
	f := newToolFixture(t)
	ctx := context.Background()

	res, err := f.handler.totalRevenueReport(ctx, callRequest(map[string]any{
		"company_id": f.company.ID.String(),
		"format":     "pdf",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Contains(t, payload["report_path"], "total_revenue_report")
	// the artifact is named after what the renderer produces, not after
	// the requested format label
	assert.True(t, strings.HasSuffix(payload["report_path"], ".txt"))
}

func TestNewServerRegistersTools(t *testing.T) {
	f := newToolFixture(t)
	s := NewServer(f.handler)
	assert.NotNil(t, s)
}
