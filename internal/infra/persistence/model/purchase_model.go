package model

import (
	"time"
)

// PurchaseModel mirrors the 'purchases' table.
type PurchaseModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	UserID      int64   `gorm:"not null;index"`
	TotalAmount float64 `gorm:"type:numeric(10,2);not null"`
	Status      string  `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User  *UserModel          `gorm:"foreignKey:UserID"`
	Items []PurchaseItemModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// PurchaseItemModel mirrors the 'purchase_items' table. Price is the unit
// price snapshot captured when the purchase was placed.
type PurchaseItemModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	PurchaseID int64   `gorm:"not null;index"`
	ProductID  int64   `gorm:"not null;index"`
	Quantity   int     `gorm:"not null;check:quantity > 0"`
	Price      float64 `gorm:"type:numeric(10,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseItemModel) TableName() string {
	return "purchase_items"
}
