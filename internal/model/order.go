package model

import "github.com/google/uuid"

// Order is created atomically together with its items and is immutable
// afterwards, except for attaching the invoice artifact path.
type Order struct {
	BaseModel
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer    *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"`
	InvoicePath *string   `gorm:"type:varchar(512)" json:"invoice_path,omitempty"`

	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"company_id"`
	Company   *Company  `gorm:"foreignKey:CompanyID" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem belongs exclusively to its Order. Price is a point-in-time copy
// of the product price at order time; later price changes never touch it.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
}
