package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder creates the order, its lines, and the stock decrements as one
// atomic unit. Unit prices are re-read from the catalog inside the
// transaction; any price carried in the input is ignored.
func (srv *orderService) PlaceOrder(ctx context.Context, userID int64, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	for _, line := range input.Lines {
		if line.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}
	}

	var placed *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		// Resolve unit prices first so the total is known before the order
		// row is written.
		type resolvedLine struct {
			productID int64
			quantity  int
			unitPrice float64
		}

		resolved := make([]resolvedLine, 0, len(input.Lines))
		total := 0.0

		for _, line := range input.Lines {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to resolve product for order line")
			}

			resolved = append(resolved, resolvedLine{
				productID: product.ID,
				quantity:  line.Quantity,
				unitPrice: product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		order := &entity.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      entity.OrderStatusCompleted,
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		for _, line := range resolved {
			if err := orderRepo.CreateLine(ctx, &entity.OrderLine{
				OrderID:   order.ID,
				ProductID: line.productID,
				Quantity:  line.quantity,
				UnitPrice: line.unitPrice,
			}); err != nil {
				return err
			}

			if _, err := productRepo.DecrementStock(ctx, line.productID, line.quantity); err != nil {
				switch {
				case errors.Is(err, repository.ErrInsufficientStock):
					return domainerrors.ErrInsufficientStock
				case errors.Is(err, repository.ErrProductNotFound):
					return domainerrors.ErrProductNotFound
				default:
					return errors.Wrap(err, "failed to decrement stock")
				}
			}
		}

		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order placement rolled back", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", placed.ID),
		slog.Int64("userID", userID),
		slog.Float64("total", placed.TotalAmount),
	)

	srv.publishCreated(ctx, placed, len(input.Lines))

	return placed, nil
}

// publishCreated emits an order.created event after commit. Publishing is
// best-effort; failures are logged and never surface to the caller.
func (srv *orderService) publishCreated(ctx context.Context, order *entity.Order, lineCount int) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestID(ctx),
		EventType:   constants.OrderEventCreated,
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		LineCount:   lineCount,
		OccurredAt:  time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.Int64("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

// GetOrder returns an order with its lines. Only the owner or an admin may read it.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, id int64) (*usecase.OrderDetails, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WithDetails("order belongs to another user")
	}

	lines, err := srv.orderRepo.FindLines(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order lines")
	}

	return &usecase.OrderDetails{Order: order, Lines: lines}, nil
}

// ListMyOrders returns the acting principal's orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID int64) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAllOrders returns every order.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateOrderStatus changes an order's status.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	parsed := entity.OrderStatus(status)
	if !parsed.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails("unknown status: " + status)
	}

	order, err := srv.orderRepo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", id), slog.String("status", status))

	return order, nil
}

// DeleteOrder removes an order and its lines in one transaction.
func (srv *orderService) DeleteOrder(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if _, err := orderRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to load order for deletion")
		}

		if err := orderRepo.DeleteLines(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete order lines")
		}

		return orderRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Int64("orderID", id))

	return nil
}
