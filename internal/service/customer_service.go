package service

import (
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/validator"

	"github.com/google/uuid"
)

type CustomerService interface {
	CreateCustomer(companyID uuid.UUID, req *CreateCustomerRequest) (*model.Customer, error)
	GetCustomers(companyID uuid.UUID, offset, limit int) ([]model.Customer, error)
	GetCustomer(companyID, id uuid.UUID) (*model.Customer, error)
	UpdateCustomer(companyID, id uuid.UUID, req *UpdateCustomerRequest) (*model.Customer, error)
	DeleteCustomer(companyID, id uuid.UUID) error
}

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(companyID uuid.UUID, req *CreateCustomerRequest) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	customer := &model.Customer{
		Name:      req.Name,
		Contact:   req.Contact,
		CompanyID: companyID,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomers(companyID uuid.UUID, offset, limit int) ([]model.Customer, error) {
	return s.customerRepo.FindAll(companyID, offset, limit)
}

func (s *customerService) GetCustomer(companyID, id uuid.UUID) (*model.Customer, error) {
	return s.customerRepo.FindByID(companyID, id)
}

func (s *customerService) UpdateCustomer(companyID, id uuid.UUID, req *UpdateCustomerRequest) (*model.Customer, error) {
	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Contact != nil {
		patch["contact"] = *req.Contact
	}

	return s.customerRepo.Updates(companyID, id, patch)
}

func (s *customerService) DeleteCustomer(companyID, id uuid.UUID) error {
	return s.customerRepo.Delete(companyID, id)
}
