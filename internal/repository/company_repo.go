package repository

import (
	"errors"

	"go-inventory-billing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository is the only repository without tenant scoping: companies
// are the tenants themselves and are managed administratively.
type CompanyRepository interface {
	Create(company *model.Company) error
	FindAll(offset, limit int) ([]model.Company, error)
	FindByID(id uuid.UUID) (*model.Company, error)
	FindByName(name string) (*model.Company, error)
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db}
}

func (r *companyRepo) Create(company *model.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepo) FindAll(offset, limit int) ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&companies).Error
	return companies, err
}

func (r *companyRepo) FindByID(id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) FindByName(name string) (*model.Company, error) {
	var company model.Company
	if err := r.db.First(&company, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}
