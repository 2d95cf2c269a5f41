package service

import (
	"testing"
	"time"

	"go-inventory-billing/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) ReportService {
	return NewReportService(repository.NewOrderRepo(db), repository.NewProductRepo(db))
}

func TestReportsOnEmptyTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)

	acme := seedCompany(t, db, "Acme")

	orders, err := svc.SalesByRange(acme.ID, time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	products, err := svc.LowStock(acme.ID, 10)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	entries, err := svc.TopSelling(acme.ID, 10)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	total, err := svc.TotalRevenue(acme.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestReportsAggregateScopedData(t *testing.T) {
	db := newTestDB(t)
	orderSvc := newOrderService(db)
	svc := newReportService(db)

	acme := seedCompany(t, db, "Acme")
	user := seedUser(t, db, acme.ID, "alice")
	customer := seedCustomer(t, db, acme.ID, "Cust")
	widget := seedProduct(t, db, acme.ID, "Widget", 10.0, 100)
	gadget := seedProduct(t, db, acme.ID, "Gadget", 4.0, 3)

	_, err := orderSvc.CreateOrder(acme.ID, user.ID, &CreateOrderRequest{
		CustomerID: customer.ID,
		Items: []OrderLineRequest{
			{ProductID: widget.ID, Quantity: 2},
			{ProductID: gadget.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	orders, err := svc.SalesByRange(acme.ID, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 24.0, orders[0].TotalPrice)

	low, err := svc.LowStock(acme.ID, 10)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Gadget", low[0].Name)

	top, err := svc.TopSelling(acme.ID, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Widget", top[0].Name)

	total, err := svc.TotalRevenue(acme.ID)
	require.NoError(t, err)
	assert.Equal(t, 24.0, total)
}
