package model

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name  string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price float64 `gorm:"not null" json:"price" validate:"gte=0"`
	Stock int     `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	Image *string `gorm:"type:varchar(512)" json:"image,omitempty"`

	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"-"`
}
