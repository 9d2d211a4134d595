package usecase

import (
	"context"

	"organic/internal/domain/entity"
	"organic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput carries what the client supplies when placing an order.
// The line items always come from the server-side cart, never the request.
type PlaceOrderInput struct {
	ShippingAddress *entity.Address `json:"shippingAddress" validate:"required"`
	BillingAddress  *entity.Address `json:"billingAddress"`
	ShippingCost    decimal.Decimal `json:"shippingCost"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	DiscountApplied decimal.Decimal `json:"discountApplied"`
}

// OrderStatusInput carries an admin status transition.
type OrderStatusInput struct {
	PaymentStatus  entity.PaymentStatus  `json:"paymentStatus" validate:"required"`
	ShippingStatus entity.ShippingStatus `json:"shippingStatus" validate:"required"`
}

// OrderUsecase defines the order use cases.
type OrderUsecase interface {
	// PlaceOrder turns the user's cart into an order. The order row, its
	// line items and the cart clear commit in one transaction; an
	// order.created event publishes after the commit.
	PlaceOrder(ctx context.Context, clerkID string, input PlaceOrderInput) (*entity.Order, error)

	// GetOrder retrieves one order. Non-admin callers only see their own.
	GetOrder(ctx context.Context, clerkID string, orderID uuid.UUID) (*entity.Order, error)

	// GetUserOrders retrieves the authenticated user's orders, newest first.
	GetUserOrders(ctx context.Context, clerkID string) ([]*entity.Order, error)

	// ListOrders returns one page of all orders. Admin only.
	ListOrders(ctx context.Context, page, perPage int) (repository.PageResult[*entity.Order], error)

	// UpdateOrderStatus transitions an order's payment and shipping status. Admin only.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input OrderStatusInput) error
}
