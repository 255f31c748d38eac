package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns every catalog item, newest first.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns a single catalog item by ID.
func (srv *catalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// SearchProducts returns items matching the term in name, description or category.
func (srv *catalogService) SearchProducts(ctx context.Context, term string) ([]*entity.Product, error) {
	products, err := srv.productRepo.Search(ctx, term)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

// ListByCategory returns items with an exact category match.
func (srv *catalogService) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// CreateProduct adds a new catalog item.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct replaces a catalog item's fields.
func (srv *catalogService) UpdateProduct(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for update")
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Stock = input.Stock
		product.Category = input.Category
		product.ImageURL = input.ImageURL

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Int64("productID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product updated", slog.Int64("productID", id))

	return updated, nil
}

// DeleteProduct removes a catalog item.
func (srv *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Int64("productID", id))

	return nil
}

// AdjustStock subtracts delta units from the item's stock and returns the new
// value. A negative delta restocks. The guarded decrement keeps the committed
// value non-negative.
func (srv *catalogService) AdjustStock(ctx context.Context, id int64, delta int) (int, error) {
	remaining, err := srv.productRepo.DecrementStock(ctx, id, delta)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return 0, domainerrors.ErrProductNotFound
		case errors.Is(err, repository.ErrInsufficientStock):
			return 0, domainerrors.ErrInsufficientStock
		default:
			return 0, errors.Wrap(err, "failed to adjust stock")
		}
	}

	srv.log(ctx).Info("Stock adjusted",
		slog.Int64("productID", id),
		slog.Int("delta", delta),
		slog.Int("remaining", remaining),
	)

	return remaining, nil
}
