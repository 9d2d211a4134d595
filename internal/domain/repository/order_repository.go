package repository

import (
	"context"

	"organic/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order together with its line items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its line items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber retrieves an order by its human-readable number.
	FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListOrders returns one page of orders matching the query conditions,
	// line items included, newest first.
	ListOrders(ctx context.Context, query ListQuery) (PageResult[*entity.Order], error)

	// FindOrdersByUser retrieves all orders placed by a user, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus updates the payment and shipping status of an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, paymentStatus entity.PaymentStatus, shippingStatus entity.ShippingStatus) error

	// DeleteOrder removes an order and its line items.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
