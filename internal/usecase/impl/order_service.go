package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"organic/config"
	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	cache     service.QueryCache
	registry  *querykey.Registry
	config    *config.Config
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Cache     service.QueryCache
	Registry  *querykey.Registry
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		cache:     params.Cache,
		registry:  params.Registry,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// PlaceOrder turns the user's cart into an order. The order row, its line
// items and the cart clear commit in one transaction: either the whole order
// exists and the cart is empty, or nothing changed.
func (s *orderService) PlaceOrder(ctx context.Context, clerkID string, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if input.ShippingAddress == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shipping address is required")
	}

	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}
	if len(user.Cart) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	order := buildOrder(user, input)

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		txOrderRepo := txRepoFactory.NewOrderRepository()
		txUserRepo := txRepoFactory.NewUserRepository()
		txProductRepo := txRepoFactory.NewProductRepository()

		for _, item := range order.Items {
			product, err := txProductRepo.FindProductByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Inventory < item.Quantity {
				return domainerrors.ErrInsufficientInventory.WrapMessage(product.Name)
			}
			product.Inventory -= item.Quantity
			product.PeopleBought += item.Quantity
			if err := txProductRepo.UpdateProduct(ctx, product); err != nil {
				return err
			}
		}

		if err := txOrderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}

		return txUserRepo.UpdateUserCart(ctx, user.ID, []entity.CartItem{})
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAfterOrder(ctx, user)
	s.publishOrderCreated(ctx, user, order)

	return order, nil
}

// GetOrder retrieves one order, restricted to its owner.
func (s *orderService) GetOrder(ctx context.Context, clerkID string, orderID uuid.UUID) (*entity.Order, error) {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	// The cached value is the bare order; the ownership check runs on every
	// call so a cache hit can never widen access.
	order, err := fetchCached(ctx, s.cache, s.logger, querykey.OrderDetails(orderID.String()), func(ctx context.Context) (*entity.Order, error) {
		return s.orderRepo.FindOrderByID(ctx, orderID)
	})
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID && user.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// GetUserOrders retrieves the authenticated user's orders, newest first.
func (s *orderService) GetUserOrders(ctx context.Context, clerkID string) ([]*entity.Order, error) {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	return fetchCached(ctx, s.cache, s.logger, querykey.OrdersByUser(user.ID.String()), func(ctx context.Context) ([]*entity.Order, error) {
		return s.orderRepo.FindOrdersByUser(ctx, user.ID)
	})
}

// ListOrders returns one page of all orders. Admin only.
func (s *orderService) ListOrders(ctx context.Context, page, perPage int) (repository.PageResult[*entity.Order], error) {
	query := repository.ListQuery{
		Page:    clampPage(page),
		PerPage: clampPerPage(perPage, s.config),
	}

	key := querykey.OrdersList(query.Page, query.PerPage, query.Fingerprint())

	return fetchCached(ctx, s.cache, s.logger, key, func(ctx context.Context) (repository.PageResult[*entity.Order], error) {
		return s.orderRepo.ListOrders(ctx, query)
	})
}

// UpdateOrderStatus transitions an order's payment and shipping status. Admin only.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input usecase.OrderStatusInput) error {
	if !input.PaymentStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown payment status")
	}
	if !input.ShippingStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown shipping status")
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, input.PaymentStatus, input.ShippingStatus); err != nil {
		return err
	}

	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceOrders)

	return nil
}

func (s *orderService) invalidateAfterOrder(ctx context.Context, user *entity.User) {
	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceOrders)
	// The order also touched product inventory and the user's cart.
	invalidateResource(ctx, s.cache, s.logger, s.registry, querykey.ResourceProducts)
	if err := s.cache.Invalidate(ctx, querykey.UserDetails(user.ClerkID), querykey.UserCart(user.ID.String())); err != nil {
		s.logger.Warn("query cache invalidation failed",
			slog.String("clerk_id", user.ClerkID),
			slog.String("error", err.Error()),
		)
	}
}

// publishOrderCreated emits the order.created event. Publishing is
// fire-and-forget: the order is already committed, so failures only log.
func (s *orderService) publishOrderCreated(ctx context.Context, user *entity.User, order *entity.Order) {
	event := &service.OrderEvent{
		EventType:   service.OrderEventCreated,
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		UserID:      user.ID.String(),
		Email:       user.Email,
		TotalAmount: order.TotalAmount.StringFixed(2),
		ItemCount:   len(order.Items),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("order_number", order.OrderNumber),
			slog.String("error", err.Error()),
		)
	}
}

// buildOrder assembles the order aggregate from the user's cart. Line item
// prices are the cart snapshots, so later catalog edits cannot rewrite them.
func buildOrder(user *entity.User, input usecase.PlaceOrderInput) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(user.Cart))
	itemsTotal := decimal.Zero
	for _, cartItem := range user.Cart {
		lineTotal := cartItem.PriceSnapshot.Mul(decimal.NewFromInt(int64(cartItem.Quantity)))
		items = append(items, &entity.OrderItem{
			ProductID:   cartItem.ProductID,
			ProductName: cartItem.Name,
			Quantity:    cartItem.Quantity,
			UnitPrice:   cartItem.PriceSnapshot,
			TotalPrice:  lineTotal,
		})
		itemsTotal = itemsTotal.Add(lineTotal)
	}

	total := itemsTotal.
		Add(input.ShippingCost).
		Add(input.TaxAmount).
		Sub(input.DiscountApplied)

	return &entity.Order{
		UserID:          user.ID,
		OrderNumber:     newOrderNumber(),
		OrderDate:       time.Now().UTC(),
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		TotalAmount:     total,
		ShippingCost:    input.ShippingCost,
		TaxAmount:       input.TaxAmount,
		DiscountApplied: input.DiscountApplied,
		PaymentStatus:   entity.PaymentStatusPending,
		ShippingStatus:  entity.ShippingStatusPending,
		Items:           items,
	}
}

// newOrderNumber builds a time-ordered human-readable order number. The
// random suffix disambiguates orders placed in the same millisecond.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:4])
}
