package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order with its item snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindAll retrieves all orders, newest first.
func (repo *orderRepository) FindAll(ctx context.Context) ([]entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.CartItem
	if err := json.Unmarshal(data.Items, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode order items")
	}

	return &entity.Order{
		ID:           data.ID,
		CustomerName: data.CustomerName,
		Items:        items,
		Total:        data.Total,
		Status:       entity.OrderStatus(data.Status),
		CreatedAt:    data.CreatedAt,
	}, nil
}

func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order items")
	}

	return &model.OrderModel{
		ID:           data.ID,
		CustomerName: data.CustomerName,
		Items:        items,
		Total:        data.Total,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
	}, nil
}
