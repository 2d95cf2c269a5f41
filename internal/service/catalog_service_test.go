package service

import (
	"os"
	"testing"

	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T, db *gorm.DB) CatalogService {
	return NewCatalogService(repository.NewProductRepo(db), storage.NewLocalStore(t.TempDir()))
}

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	acme := seedCompany(t, db, "Acme")

	_, err := svc.CreateProduct(acme.ID, &CreateProductRequest{Name: "", Price: 1})
	assert.Error(t, err)

	_, err = svc.CreateProduct(acme.ID, &CreateProductRequest{Name: "Widget", Price: -1})
	assert.Error(t, err)

	product, err := svc.CreateProduct(acme.ID, &CreateProductRequest{Name: "Widget", Price: 9.5, Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, acme.ID, product.CompanyID)
}

func TestUpdateProductZeroValuesAreExplicit(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	acme := seedCompany(t, db, "Acme")
	product := seedProduct(t, db, acme.ID, "Widget", 10.0, 5)

	// A present zero is applied; an absent field is not.
	zero := 0
	updated, err := svc.UpdateProduct(acme.ID, product.ID, &UpdateProductRequest{Stock: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, 10.0, updated.Price)
	assert.Equal(t, "Widget", updated.Name)
}

func TestAttachImage(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	acme := seedCompany(t, db, "Acme")
	product := seedProduct(t, db, acme.ID, "Widget", 10.0, 5)

	updated, err := svc.AttachImage(acme.ID, product.ID, "photo.png", []byte("binary"))
	require.NoError(t, err)
	require.NotNil(t, updated.Image)

	content, err := os.ReadFile(*updated.Image)
	require.NoError(t, err)
	assert.Equal(t, []byte("binary"), content)
}

func TestAttachImageForeignTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(t, db)

	acme := seedCompany(t, db, "Acme")
	rival := seedCompany(t, db, "Rival")
	product := seedProduct(t, db, acme.ID, "Widget", 10.0, 5)

	_, err := svc.AttachImage(rival.ID, product.ID, "photo.png", []byte("binary"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
