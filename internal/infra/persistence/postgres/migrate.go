package postgres

import (
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// autoMigrate keeps the schema in sync with the persistence models. GORM's
// AutoMigrate only adds missing tables, columns and indexes; it never drops
// existing data.
func autoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.PurchaseModel{},
		&model.PurchaseItemModel{},
	), "failed to migrate schema")
}
