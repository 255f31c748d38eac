package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{
			{ProductID: 1, Quantity: 2, Price: 0.01}, // client price must be ignored
			{ProductID: 2, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByID(ctx, int64(1)).
				Return(&entity.Product{ID: 1, Price: 10.50, Stock: 5}, nil)
			mockProductRepo.EXPECT().
				FindByID(ctx, int64(2)).
				Return(&entity.Product{ID: 2, Price: 3.00, Stock: 5}, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
					// 2 * 10.50 + 1 * 3.00, from catalog prices only.
					return order.TotalAmount == 24.00 && order.Status == entity.OrderStatusCompleted
				})).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 77
				}).
				Return(nil)

			mockOrderRepo.EXPECT().
				CreateLine(ctx, mock.MatchedBy(func(line *entity.OrderLine) bool {
					return line.OrderID == 77 && line.ProductID == 1 && line.UnitPrice == 10.50
				})).
				Return(nil)
			mockOrderRepo.EXPECT().
				CreateLine(ctx, mock.MatchedBy(func(line *entity.OrderLine) bool {
					return line.OrderID == 77 && line.ProductID == 2 && line.UnitPrice == 3.00
				})).
				Return(nil)

			mockProductRepo.EXPECT().DecrementStock(ctx, int64(1), 2).Return(3, nil)
			mockProductRepo.EXPECT().DecrementStock(ctx, int64(2), 1).Return(4, nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.OrderID == 77 && event.EventType == constants.OrderEventCreated && event.LineCount == 2
		})).
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, 5, input)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(77), order.ID)
	assert.Equal(t, int64(5), order.UserID)
	assert.Equal(t, 24.00, order.TotalAmount)
}

func TestOrderService_PlaceOrder_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), 5, &usecase.PlaceOrderInput{})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_PlaceOrder_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.PlaceOrder(context.Background(), 5, &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{{ProductID: 1, Quantity: 0}},
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{{ProductID: 1, Quantity: 10}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByID(ctx, int64(1)).
				Return(&entity.Product{ID: 1, Price: 10.50, Stock: 3}, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			mockOrderRepo.EXPECT().
				CreateLine(ctx, mock.AnythingOfType("*entity.OrderLine")).
				Return(nil)

			mockProductRepo.EXPECT().
				DecrementStock(ctx, int64(1), 10).
				Return(0, repository.ErrInsufficientStock)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, 5, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.PlaceOrderInput{
		Lines: []usecase.OrderLineInput{{ProductID: 404, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByID(ctx, int64(404)).
				Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	order, err := fx.service.PlaceOrder(ctx, 5, input)

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_GetOrder_OwnerCanRead(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	stored := &entity.Order{ID: 1, UserID: 5, TotalAmount: 24.00}

	fx.orderRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.orderRepo.EXPECT().
		FindLines(ctx, int64(1)).
		Return([]*entity.OrderLine{{ID: 10, OrderID: 1, ProductID: 2, Quantity: 1}}, nil)

	details, err := fx.service.GetOrder(ctx, usecase.Actor{UserID: 5, Role: entity.RoleCustomer}, 1)

	require.NoError(t, err)
	assert.Equal(t, stored, details.Order)
	assert.Len(t, details.Lines, 1)
}

func TestOrderService_GetOrder_OtherCustomerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Order{ID: 1, UserID: 5}, nil)

	details, err := fx.service.GetOrder(ctx, usecase.Actor{UserID: 6, Role: entity.RoleCustomer}, 1)

	require.Error(t, err)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_AdminCanReadAny(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Order{ID: 1, UserID: 5}, nil)
	fx.orderRepo.EXPECT().
		FindLines(ctx, int64(1)).
		Return(nil, nil)

	details, err := fx.service.GetOrder(ctx, usecase.Actor{UserID: 99, Role: entity.RoleAdmin}, 1)

	require.NoError(t, err)
	require.NotNil(t, details)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	fx := createTestOrderService(t)

	order, err := fx.service.UpdateOrderStatus(context.Background(), 1, "shipped-to-mars")

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	updated := &entity.Order{ID: 1, Status: entity.OrderStatusCancelled}

	fx.orderRepo.EXPECT().
		UpdateStatus(ctx, int64(1), entity.OrderStatusCancelled).
		Return(updated, nil)

	order, err := fx.service.UpdateOrderStatus(ctx, 1, "cancelled")

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_DeleteOrder_RemovesLinesFirst(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, int64(1)).
				Return(&entity.Order{ID: 1}, nil)
			mockOrderRepo.EXPECT().DeleteLines(ctx, int64(1)).Return(nil)
			mockOrderRepo.EXPECT().Delete(ctx, int64(1)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteOrder(ctx, 1)

	require.NoError(t, err)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				FindByID(ctx, int64(404)).
				Return(nil, repository.ErrOrderNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteOrder(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
