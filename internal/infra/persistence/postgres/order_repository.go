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

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row and fills in its generated ID and timestamps.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.PurchaseModel{
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("owning user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateLine persists a single order line for an already created order.
func (repo *orderRepository) CreateLine(ctx context.Context, line *entity.OrderLine) error {
	lineM := &model.PurchaseItemModel{
		PurchaseID: line.OrderID,
		ProductID:  line.ProductID,
		Quantity:   line.Quantity,
		Price:      line.UnitPrice,
	}

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("referenced product does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("line quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase item")
	}

	line.ID = lineM.ID

	return nil
}

// FindByID retrieves a single order joined with its owning user.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.PurchaseModel
	if err := repo.db.WithContext(ctx).Preload("User").First(&orderM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindLines lists the order's lines enriched with product name and image.
func (repo *orderRepository) FindLines(ctx context.Context, orderID int64) ([]*entity.OrderLine, error) {
	var lineModels []model.PurchaseItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("purchase_id = ?", orderID).
		Order("id").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchase items")
	}

	lines := make([]*entity.OrderLine, 0, len(lineModels))
	for i := range lineModels {
		lines = append(lines, toOrderLineDomain(&lineModels[i]))
	}

	return lines, nil
}

// FindByUserID lists a user's orders, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Order, error) {
	var orderModels []model.PurchaseModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases for user")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindAll lists every order, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []model.PurchaseModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return toOrderDomainSlice(orderModels), nil
}

// UpdateStatus changes the order's status and returns the updated order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindByID(ctx, id)
}

// DeleteLines removes every line belonging to the order.
func (repo *orderRepository) DeleteLines(ctx context.Context, orderID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("purchase_id = ?", orderID).
		Delete(&model.PurchaseItemModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete purchase items")
	}

	return nil
}

// Delete removes the order row itself.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PurchaseModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete purchase")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM PurchaseModel to a domain Order entity.
func toOrderDomain(data *model.PurchaseModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		TotalAmount: data.TotalAmount,
		Status:      entity.OrderStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.User != nil {
		order.Username = data.User.Username
		order.FullName = data.User.FullName
	}

	return order
}

func toOrderDomainSlice(models []model.PurchaseModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toOrderDomain(&models[i]))
	}

	return orders
}

// toOrderLineDomain converts a GORM PurchaseItemModel to a domain OrderLine entity.
func toOrderLineDomain(data *model.PurchaseItemModel) *entity.OrderLine {
	if data == nil {
		return nil
	}

	line := &entity.OrderLine{
		ID:        data.ID,
		OrderID:   data.PurchaseID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		UnitPrice: data.Price,
	}

	if data.Product != nil {
		line.ProductName = data.Product.Name
		line.ImageURL = data.Product.ImageURL
	}

	return line
}
