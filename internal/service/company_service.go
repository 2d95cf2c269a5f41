package service

import (
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/validator"

	"github.com/google/uuid"
)

// CompanyService manages tenants themselves. It is administrative and
// unscoped; everything else in the system runs inside one of these.
type CompanyService interface {
	CreateCompany(req *CreateCompanyRequest) (*model.Company, error)
	GetCompanies(offset, limit int) ([]model.Company, error)
	GetCompany(id uuid.UUID) (*model.Company, error)
}

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(req *CreateCompanyRequest) (*model.Company, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if existing, _ := s.companyRepo.FindByName(req.Name); existing != nil {
		return nil, ErrCompanyExists
	}

	company := &model.Company{Name: req.Name}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetCompanies(offset, limit int) ([]model.Company, error) {
	return s.companyRepo.FindAll(offset, limit)
}

func (s *companyService) GetCompany(id uuid.UUID) (*model.Company, error) {
	return s.companyRepo.FindByID(id)
}
