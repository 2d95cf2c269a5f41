package service

import (
	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/validator"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// UserService manages the users of one company. The acting identity's
// company id scopes every call; users of other companies are invisible.
type UserService interface {
	GetUsers(companyID uuid.UUID, offset, limit int) ([]model.UserResponse, error)
	GetUser(companyID, id uuid.UUID) (*model.UserResponse, error)
	UpdateUser(companyID, id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error)
	DeleteUser(companyID, id uuid.UUID) error
}

// UpdateUserRequest carries partial semantics: nil fields are left untouched.
// There is no company field; the tenant binding cannot be patched.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers(companyID uuid.UUID, offset, limit int) ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll(companyID, offset, limit)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u model.User, _ int) model.UserResponse {
		return u.ToResponse()
	}), nil
}

func (s *userService) GetUser(companyID, id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(companyID, id)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateUser(companyID, id uuid.UUID, req *UpdateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	patch := map[string]interface{}{}
	if req.Username != nil {
		if existing, _ := s.userRepo.FindByUsername(*req.Username); existing != nil && existing.ID != id {
			return nil, ErrUsernameExists
		}
		patch["username"] = *req.Username
	}
	if req.Email != nil {
		if existing, _ := s.userRepo.FindByEmail(*req.Email); existing != nil && existing.ID != id {
			return nil, ErrEmailExists
		}
		patch["email"] = *req.Email
	}
	if req.Password != nil {
		tmp := model.User{}
		if err := tmp.SetPassword(*req.Password); err != nil {
			return nil, err
		}
		patch["password"] = tmp.Password
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	user, err := s.userRepo.Updates(companyID, id, patch)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) DeleteUser(companyID, id uuid.UUID) error {
	return s.userRepo.Delete(companyID, id)
}
