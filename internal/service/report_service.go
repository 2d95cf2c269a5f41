package service

import (
	"time"

	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"

	"github.com/google/uuid"
)

// ReportService derives read-only views from committed data. Every query is
// tenant-scoped and tolerates empty result sets.
type ReportService interface {
	SalesByRange(companyID uuid.UUID, start, end time.Time) ([]model.Order, error)
	LowStock(companyID uuid.UUID, threshold int) ([]model.Product, error)
	TopSelling(companyID uuid.UUID, limit int) ([]repository.ProductSales, error)
	TotalRevenue(companyID uuid.UUID) (float64, error)
}

type reportService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewReportService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) ReportService {
	return &reportService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *reportService) SalesByRange(companyID uuid.UUID, start, end time.Time) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByDateRange(companyID, start, end)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *reportService) LowStock(companyID uuid.UUID, threshold int) ([]model.Product, error) {
	products, err := s.productRepo.FindLowStock(companyID, threshold)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *reportService) TopSelling(companyID uuid.UUID, limit int) ([]repository.ProductSales, error) {
	entries, err := s.orderRepo.TopSelling(companyID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []repository.ProductSales{}
	}
	return entries, nil
}

func (s *reportService) TotalRevenue(companyID uuid.UUID) (float64, error) {
	return s.orderRepo.TotalRevenue(companyID)
}
