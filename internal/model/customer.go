package model

import "github.com/google/uuid"

type Customer struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Contact string `gorm:"type:varchar(255)" json:"contact"`

	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"-"`
}
