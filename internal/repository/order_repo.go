package repository

import (
	"errors"
	"time"

	"go-inventory-billing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductSales is an aggregation row for the top-selling report.
type ProductSales struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	TotalQuantity int       `json:"total_quantity"`
}

// SalesPoint is one historical (date, quantity) observation for a product.
type SalesPoint struct {
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
}

type OrderRepository interface {
	Create(order *model.Order) error
	CreateItems(items []model.OrderItem) error
	FindByID(companyID, id uuid.UUID) (*model.Order, error)
	FindAll(companyID uuid.UUID, offset, limit int) ([]model.Order, error)
	SetInvoicePath(companyID, id uuid.UUID, path string) error

	FindByDateRange(companyID uuid.UUID, start, end time.Time) ([]model.Order, error)
	TopSelling(companyID uuid.UUID, limit int) ([]ProductSales, error)
	TotalRevenue(companyID uuid.UUID) (float64, error)
	SalesHistory(companyID, productID uuid.UUID) ([]SalesPoint, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	// Items are inserted separately inside the same transaction
	return r.db.Omit("Items").Create(order).Error
}

func (r *orderRepo) CreateItems(items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *orderRepo) FindByID(companyID, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("Customer").
		Where("company_id = ?", companyID).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindAll(companyID uuid.UUID, offset, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").
		Where("company_id = ?", companyID).
		Order("created_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	return orders, err
}

// SetInvoicePath is the single mutation an order admits after creation.
func (r *orderRepo) SetInvoicePath(companyID, id uuid.UUID, path string) error {
	res := r.db.Model(&model.Order{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("invoice_path", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepo) FindByDateRange(companyID uuid.UUID, start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Where("company_id = ? AND created_at BETWEEN ? AND ?", companyID, start, end).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) TopSelling(companyID uuid.UUID, limit int) ([]ProductSales, error) {
	var rows []ProductSales
	err := r.db.Model(&model.OrderItem{}).
		Select("order_items.product_id AS product_id, products.name AS name, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.company_id = ?", companyID).
		Group("order_items.product_id, products.name").
		Order("total_quantity DESC, name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) TotalRevenue(companyID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.Model(&model.Order{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepo) SalesHistory(companyID, productID uuid.UUID) ([]SalesPoint, error) {
	var points []SalesPoint
	err := r.db.Model(&model.OrderItem{}).
		Select("orders.created_at AS date, order_items.quantity AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_id = ? AND orders.company_id = ?", productID, companyID).
		Order("orders.created_at ASC").
		Scan(&points).Error
	return points, err
}
