// Package model contains the GORM persistence models mirroring the
// relational schema. Models are mapped to and from pure domain entities at
// the repository boundary.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);unique;not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	FullName     string `gorm:"type:varchar(255)"`
	Address      string `gorm:"type:text"`
	Role         string `gorm:"type:varchar(20);not null;default:customer"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Purchases []PurchaseModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
