package repository

import (
	"errors"

	"go-inventory-billing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(companyID uuid.UUID, offset, limit int) ([]model.Customer, error)
	FindByID(companyID, id uuid.UUID) (*model.Customer, error)
	Updates(companyID, id uuid.UUID, patch map[string]interface{}) (*model.Customer, error)
	Delete(companyID, id uuid.UUID) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(companyID uuid.UUID, offset, limit int) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(companyID, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.Where("company_id = ?", companyID).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Updates(companyID, id uuid.UUID, patch map[string]interface{}) (*model.Customer, error) {
	delete(patch, "company_id")
	if len(patch) > 0 {
		res := r.db.Model(&model.Customer{}).
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

func (r *customerRepo) Delete(companyID, id uuid.UUID) error {
	res := r.db.Where("company_id = ?", companyID).Delete(&model.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
