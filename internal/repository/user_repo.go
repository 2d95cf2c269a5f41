package repository

import (
	"errors"

	"go-inventory-billing/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository carries two unscoped lookups (FindByUsername, FindByIDAny)
// that exist solely for login and token resolution, before a tenant is known.
// Everything else is scoped to a company id.
type UserRepository interface {
	Create(user *model.User) error
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByIDAny(id uuid.UUID) (*model.User, error)

	FindByID(companyID, id uuid.UUID) (*model.User, error)
	FindAll(companyID uuid.UUID, offset, limit int) ([]model.User, error)
	Updates(companyID, id uuid.UUID, patch map[string]interface{}) (*model.User, error)
	Delete(companyID, id uuid.UUID) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByIDAny(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(companyID, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.Where("company_id = ?", companyID).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindAll(companyID uuid.UUID, offset, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at ASC, id ASC").
		Offset(offset).Limit(limit).
		Find(&users).Error
	return users, err
}

// Updates applies only the keys present in the patch. CompanyID is never a
// legal patch key; the tenant binding is immutable.
func (r *userRepo) Updates(companyID, id uuid.UUID, patch map[string]interface{}) (*model.User, error) {
	delete(patch, "company_id")
	if len(patch) > 0 {
		res := r.db.Model(&model.User{}).
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

func (r *userRepo) Delete(companyID, id uuid.UUID) error {
	res := r.db.Where("company_id = ?", companyID).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
