package model

// Company is the tenant. Every other entity (except Company itself) belongs
// to exactly one Company and is only visible inside it.
type Company struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
}
