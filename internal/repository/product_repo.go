package repository

import (
	"errors"

	"go-inventory-billing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(companyID uuid.UUID, offset, limit int) ([]model.Product, error)
	FindByID(companyID, id uuid.UUID) (*model.Product, error)
	Updates(companyID, id uuid.UUID, patch map[string]interface{}) (*model.Product, error)
	Delete(companyID, id uuid.UUID) error

	// DecrementStock subtracts qty only when enough stock remains, in a
	// single conditional UPDATE. Returns false when no row matched, which
	// covers missing products, foreign tenants and insufficient stock alike.
	DecrementStock(companyID, id uuid.UUID, qty int) (bool, error)

	FindLowStock(companyID uuid.UUID, threshold int) ([]model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(companyID uuid.UUID, offset, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(companyID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("company_id = ?", companyID).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Updates(companyID, id uuid.UUID, patch map[string]interface{}) (*model.Product, error) {
	delete(patch, "company_id")
	if len(patch) > 0 {
		res := r.db.Model(&model.Product{}).
			Where("id = ? AND company_id = ?", id, companyID).
			Updates(patch)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(companyID, id)
}

func (r *productRepo) Delete(companyID, id uuid.UUID) error {
	res := r.db.Where("company_id = ?", companyID).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) DecrementStock(companyID, id uuid.UUID, qty int) (bool, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND company_id = ? AND stock >= ?", id, companyID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) FindLowStock(companyID uuid.UUID, threshold int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("company_id = ? AND stock < ?", companyID, threshold).
		Order("stock ASC, created_at ASC").
		Find(&products).Error
	return products, err
}
