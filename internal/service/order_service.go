package service

import (
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/validator"

	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(companyID, userID uuid.UUID, req *CreateOrderRequest) (*model.Order, error)
	GetOrders(companyID uuid.UUID, offset, limit int) ([]model.Order, error)
	GetOrder(companyID, id uuid.UUID) (*model.Order, error)
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id" validate:"uuid_required"`
	Items      []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

type orderService struct {
	tx        repository.TransactionManager
	orderRepo repository.OrderRepository
}

func NewOrderService(tx repository.TransactionManager, orderRepo repository.OrderRepository) OrderService {
	return &orderService{
		tx:        tx,
		orderRepo: orderRepo,
	}
}

// CreateOrder validates stock, snapshots prices, decrements inventory and
// persists the order with its items in one transaction. Any failure rolls
// everything back; no partial order or stray decrement is ever visible.
func (s *orderService) CreateOrder(companyID, userID uuid.UUID, req *CreateOrderRequest) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	var created *model.Order

	err := s.tx.WithinTx(func(r repository.TxRepos) error {
		customer, err := r.Customers().FindByID(companyID, req.CustomerID)
		if err != nil {
			return err
		}

		// Snapshot prices and pre-check stock. The pre-check gives a clean
		// rejection before any write; the conditional decrement below is
		// what actually guarantees stock never goes negative under
		// concurrent orders.
		prices := make(map[uuid.UUID]float64, len(req.Items))
		total := 0.0
		for _, line := range req.Items {
			product, err := r.Products().FindByID(companyID, line.ProductID)
			if err == repository.ErrNotFound {
				return ErrInsufficientStock
			}
			if err != nil {
				return err
			}
			if product.Stock < line.Quantity {
				return ErrInsufficientStock
			}
			prices[line.ProductID] = product.Price
			total += product.Price * float64(line.Quantity)
		}

		order := &model.Order{
			CustomerID: req.CustomerID,
			UserID:     userID,
			TotalPrice: total,
			CompanyID:  companyID,
		}
		if err := r.Orders().Create(order); err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			ok, err := r.Products().DecrementStock(companyID, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// lost a race since the pre-check; abort the whole order
				return ErrInsufficientStock
			}
			items = append(items, model.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     prices[line.ProductID],
			})
		}
		if err := r.Orders().CreateItems(items); err != nil {
			return err
		}

		order.Items = items
		order.Customer = customer
		created = order
		return nil
	})

	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *orderService) GetOrders(companyID uuid.UUID, offset, limit int) ([]model.Order, error) {
	return s.orderRepo.FindAll(companyID, offset, limit)
}

func (s *orderService) GetOrder(companyID, id uuid.UUID) (*model.Order, error) {
	return s.orderRepo.FindByID(companyID, id)
}
