package service

import (
	"fmt"
	"path/filepath"

	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/storage"
	"go-inventory-billing/pkg/validator"

	"github.com/google/uuid"
)

// CatalogService manages a company's products. Stock changes here are plain
// administrative edits; order fulfillment decrements go through OrderService.
type CatalogService interface {
	CreateProduct(companyID uuid.UUID, req *CreateProductRequest) (*model.Product, error)
	GetProducts(companyID uuid.UUID, offset, limit int) ([]model.Product, error)
	GetProduct(companyID, id uuid.UUID) (*model.Product, error)
	UpdateProduct(companyID, id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(companyID, id uuid.UUID) error
	AttachImage(companyID, id uuid.UUID, filename string, data []byte) (*model.Product, error)
}

type CreateProductRequest struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	Stock int     `json:"stock" validate:"gte=0"`
	Image *string `json:"image,omitempty"`
}

// UpdateProductRequest uses pointer fields for partial updates: nil means
// "leave as is", never "reset to zero".
type UpdateProductRequest struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Image *string  `json:"image,omitempty"`
}

type catalogService struct {
	productRepo repository.ProductRepository
	store       storage.FileStore
}

func NewCatalogService(productRepo repository.ProductRepository, store storage.FileStore) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		store:       store,
	}
}

func (s *catalogService) CreateProduct(companyID uuid.UUID, req *CreateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	product := &model.Product{
		Name:      req.Name,
		Price:     req.Price,
		Stock:     req.Stock,
		Image:     req.Image,
		CompanyID: companyID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetProducts(companyID uuid.UUID, offset, limit int) ([]model.Product, error) {
	return s.productRepo.FindAll(companyID, offset, limit)
}

func (s *catalogService) GetProduct(companyID, id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(companyID, id)
}

func (s *catalogService) UpdateProduct(companyID, id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Price != nil {
		patch["price"] = *req.Price
	}
	if req.Stock != nil {
		patch["stock"] = *req.Stock
	}
	if req.Image != nil {
		patch["image"] = *req.Image
	}

	return s.productRepo.Updates(companyID, id, patch)
}

func (s *catalogService) DeleteProduct(companyID, id uuid.UUID) error {
	return s.productRepo.Delete(companyID, id)
}

// AttachImage stores the uploaded image and records its path on the product.
func (s *catalogService) AttachImage(companyID, id uuid.UUID, filename string, data []byte) (*model.Product, error) {
	if _, err := s.productRepo.FindByID(companyID, id); err != nil {
		return nil, err
	}

	name := filepath.Join("products", companyID.String(), fmt.Sprintf("%s_%s", id, filepath.Base(filename)))
	path, err := s.store.Save(name, data)
	if err != nil {
		return nil, err
	}

	return s.productRepo.Updates(companyID, id, map[string]interface{}{"image": path})
}
