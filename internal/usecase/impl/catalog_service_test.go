package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, 404)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:        "Espresso Beans",
		Description: "Dark roast, 1kg",
		Price:       12.90,
		Stock:       40,
		Category:    "coffee",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return product.Name == input.Name && product.Stock == 40
		})).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = 11
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, 12.90, product.Price)
}

func TestCatalogService_UpdateProduct_ReplacesFields(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.ProductInput{
		Name:        "Espresso Beans",
		Description: "Medium roast, 1kg",
		Price:       11.50,
		Stock:       35,
		Category:    "coffee",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockProductRepo.EXPECT().
				FindByID(ctx, int64(11)).
				Return(&entity.Product{ID: 11, Name: "Old", Price: 12.90}, nil)

			mockProductRepo.EXPECT().
				Update(ctx, mock.MatchedBy(func(product *entity.Product) bool {
					return product.ID == 11 && product.Price == 11.50 && product.Stock == 35
				})).
				Return(nil)

			return fn(mockFactory)
		})

	product, err := fx.service.UpdateProduct(ctx, 11, input)

	require.NoError(t, err)
	assert.Equal(t, "Medium roast, 1kg", product.Description)
}

func TestCatalogService_SearchProducts_PassesTermThrough(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	matches := []*entity.Product{{ID: 1, Name: "Espresso Beans"}}

	fx.productRepo.EXPECT().Search(ctx, "espresso").Return(matches, nil)

	products, err := fx.service.SearchProducts(ctx, "espresso")

	require.NoError(t, err)
	assert.Equal(t, matches, products)
}

func TestCatalogService_AdjustStock_Decrement(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().DecrementStock(ctx, int64(11), 5).Return(35, nil)

	remaining, err := fx.service.AdjustStock(ctx, 11, 5)

	require.NoError(t, err)
	assert.Equal(t, 35, remaining)
}

func TestCatalogService_AdjustStock_Restock(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	// A negative delta adds stock back.
	fx.productRepo.EXPECT().DecrementStock(ctx, int64(11), -10).Return(50, nil)

	remaining, err := fx.service.AdjustStock(ctx, 11, -10)

	require.NoError(t, err)
	assert.Equal(t, 50, remaining)
}

func TestCatalogService_AdjustStock_Insufficient(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		DecrementStock(ctx, int64(11), 100).
		Return(0, repository.ErrInsufficientStock)

	remaining, err := fx.service.AdjustStock(ctx, 11, 100)

	require.Error(t, err)
	assert.Zero(t, remaining)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}
