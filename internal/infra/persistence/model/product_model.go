package model

import (
	"time"
)

// ProductModel mirrors the 'products' table. The non-negative stock
// constraint is enforced both by the guarded decrement in the repository and
// by the database check constraint.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:numeric(10,2);not null;check:price >= 0"`
	Stock       int     `gorm:"not null;default:0;check:stock >= 0"`
	Category    string  `gorm:"type:varchar(100);index"`
	ImageURL    string  `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
