package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts returns the whole catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products, "Products retrieved successfully")
}

// GetProduct returns a single catalog item.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product, "Product retrieved successfully")
}

// SearchProducts returns items matching the search term.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	term := c.Param("term")

	products, err := h.uc.SearchProducts(c.Request().Context(), term)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products, "Products retrieved successfully")
}

// ListByCategory returns items with an exact category match.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	category := c.Param("category")

	products, err := h.uc.ListByCategory(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, products, "Products retrieved successfully")
}

// CreateProduct adds a new catalog item. Admin only.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product input", "")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, product, "Product created successfully")
}

// UpdateProduct replaces a catalog item's fields. Admin only.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid product input", "")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product, "Product updated successfully")
}

// DeleteProduct removes a catalog item. Admin only.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Product deleted successfully")
}

// stockAdjustment is the request body for manual stock changes.
type stockAdjustment struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustStock subtracts delta units from the item's stock; a negative delta
// restocks. Admin only.
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	id, err := PathID(c, "id")
	if err != nil {
		return err
	}

	var input stockAdjustment
	if err := c.Bind(&input); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid stock input", "")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	remaining, err := h.uc.AdjustStock(c.Request().Context(), id, input.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{"product_id": id, "stock": remaining}, "Stock adjusted successfully")
}
