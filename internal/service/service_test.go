package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"go-inventory-billing/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
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
	return db
}

func seedCompany(t *testing.T, db *gorm.DB, name string) *model.Company {
	t.Helper()
	company := &model.Company{Name: name}
	require.NoError(t, db.Create(company).Error)
	return company
}

func seedUser(t *testing.T, db *gorm.DB, companyID uuid.UUID, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		CompanyID: companyID,
		IsActive:  true,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string, price float64, stock int) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:      name,
		Price:     price,
		Stock:     stock,
		CompanyID: companyID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCustomer(t *testing.T, db *gorm.DB, companyID uuid.UUID, name string) *model.Customer {
	t.Helper()
	customer := &model.Customer{
		Name:      name,
		Contact:   "contact@example.com",
		CompanyID: companyID,
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}
