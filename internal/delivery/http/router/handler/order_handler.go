package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the order placement request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid order input", "")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), actor.UserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, order, "Order placed successfully")
}

// GetOrder returns an order with its lines. Owner or admin only.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	details, err := h.uc.GetOrder(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, details, "Order retrieved successfully")
}

// ListMyOrders returns the acting principal's orders.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid principal in token")
	}

	orders, err := h.uc.ListMyOrders(c.Request().Context(), actor.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders, "Orders retrieved successfully")
}

// ListAllOrders returns every order. Admin only.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, orders, "Orders retrieved successfully")
}

// statusUpdate is the request body for order status changes.
type statusUpdate struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus changes an order's status. Admin only.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var input statusUpdate
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid status input", "")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order, "Order status updated successfully")
}

// DeleteOrder removes an order and its lines. Admin only.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Order deleted successfully")
}
