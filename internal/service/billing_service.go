package service

import (
	"fmt"
	"path/filepath"

	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/render"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/internal/storage"

	"github.com/google/uuid"
)

// BillingService commits an order through OrderService and then attaches the
// rendered invoice artifact. The order itself is already durable when
// rendering runs; a renderer failure surfaces to the caller but does not
// undo the sale.
type BillingService interface {
	CreateOrderWithInvoice(companyID, userID uuid.UUID, req *CreateOrderRequest) (*model.Order, error)
}

type billingService struct {
	orders    OrderService
	orderRepo repository.OrderRepository
	renderer  render.InvoiceRenderer
	store     storage.FileStore
}

func NewBillingService(orders OrderService, orderRepo repository.OrderRepository, renderer render.InvoiceRenderer, store storage.FileStore) BillingService {
	return &billingService{
		orders:    orders,
		orderRepo: orderRepo,
		renderer:  renderer,
		store:     store,
	}
}

func (s *billingService) CreateOrderWithInvoice(companyID, userID uuid.UUID, req *CreateOrderRequest) (*model.Order, error) {
	order, err := s.orders.CreateOrder(companyID, userID, req)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.RenderInvoice(order)
	if err != nil {
		return nil, render.ErrRenderFailed
	}

	name := filepath.Join("invoices", companyID.String(), fmt.Sprintf("invoice_%s.%s", order.ID, s.renderer.Extension()))
	path, err := s.store.Save(name, data)
	if err != nil {
		return nil, render.ErrRenderFailed
	}

	if err := s.orderRepo.SetInvoicePath(companyID, order.ID, path); err != nil {
		return nil, err
	}
	order.InvoicePath = &path

	return order, nil
}
