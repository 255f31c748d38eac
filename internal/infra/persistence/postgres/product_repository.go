package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindAll lists every product, newest first.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByCategory lists products with an exact category match, newest first.
func (repo *productRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return toProductDomainSlice(productModels), nil
}

// Search lists products whose name, description or category contains the
// term, case-insensitively.
func (repo *productRepository) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	pattern := "%" + term + "%"

	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return toProductDomainSlice(productModels), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price and stock must be non-negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"category":    product.Category,
			"image_url":   product.ImageURL,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("price and stock must be non-negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically subtracts quantity from the product's stock.
// The guard in the WHERE clause keeps the committed stock value from ever
// going negative: when remaining stock does not cover the quantity the
// update matches no rows and the caller's transaction aborts.
func (repo *productRepository) DecrementStock(ctx context.Context, id int64, quantity int) (int, error) {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing product from a guarded decrement refusal.
		var productM model.ProductModel
		if err := repo.db.WithContext(ctx).Select("id").First(&productM, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, repository.ErrProductNotFound
			}

			return 0, errors.Wrap(err, "failed to check product existence")
		}

		return 0, repository.ErrInsufficientStock
	}

	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Select("stock").First(&productM, id).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read stock after decrement")
	}

	return productM.Stock, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainSlice(models []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, toProductDomain(&models[i]))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
	}
}
