package service

import (
	"os"
	"strconv"
	"time"

	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/jwt"
	"go-inventory-billing/pkg/validator"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *RegisterRequest) (*model.UserResponse, error)
	Login(username, password string) (*LoginResponse, error)
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type authService struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

func NewAuthService(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) AuthService {
	return &authService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

func (s *authService) Register(req *RegisterRequest) (*model.UserResponse, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	// 2. The target company must exist
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	if _, err := s.companyRepo.FindByID(companyID); err != nil {
		return nil, err
	}

	// 3. Reject duplicate identities
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailExists
	}
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameExists
	}

	// 4. Create the user bound to its company
	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		IsActive:  true,
		CompanyID: companyID,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.CompanyID, accessTokenTTL())
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func accessTokenTTL() time.Duration {
	if v := os.Getenv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return jwt.DefaultTTL
}
