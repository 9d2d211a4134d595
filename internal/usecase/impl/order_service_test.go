package impl

import (
	"context"
	"strings"
	"testing"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	mockRepo "organic/internal/mocks/repository"
	mockSvc "organic/internal/mocks/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	orderRepo  *mockRepo.MockOrderRepository
	txProducts *mockRepo.MockProductRepository
	txUsers    *mockRepo.MockUserRepository
	txOrders   *mockRepo.MockOrderRepository
	publisher  *mockSvc.MockEventPublisher
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	mocks := &orderServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		orderRepo:  mockRepo.NewMockOrderRepository(t),
		txProducts: mockRepo.NewMockProductRepository(t),
		txUsers:    mockRepo.NewMockUserRepository(t),
		txOrders:   mockRepo.NewMockOrderRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}
	svc := NewOrderService(OrderServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		OrderRepo: mocks.orderRepo,
		Publisher: mocks.publisher,
		Cache:     passthroughCache(t),
		Registry:  querykey.NewRegistry(),
		Config:    testConfig(),
		Logger:    testLogger(),
	})

	return svc, mocks
}

// expectTransaction wires the transaction manager to run the business
// callback against the tx-scoped repository mocks, mirroring how the real
// manager hands out tx-bound repositories.
func (m *orderServiceMocks) expectTransaction(ctx context.Context, t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(m.txProducts).Maybe()
	factory.EXPECT().NewUserRepository().Return(m.txUsers).Maybe()
	factory.EXPECT().NewOrderRepository().Return(m.txOrders).Maybe()

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func cartUser(userID uuid.UUID, productID uuid.UUID) *entity.User {
	return &entity.User{
		ID:      userID,
		ClerkID: "user_abc",
		Email:   "shopper@example.com",
		Cart: []entity.CartItem{{
			ProductID:     productID,
			Name:          "Tomato Seeds",
			Quantity:      2,
			PriceSnapshot: decimal.NewFromInt(8),
		}},
	}
}

func shippingAddress() *entity.Address {
	return &entity.Address{
		Street:     "1 Garden Way",
		City:       "Portland",
		Country:    "US",
		PostalCode: "97201",
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(cartUser(userID, productID), nil)
	mocks.expectTransaction(ctx, t)

	mocks.txProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Tomato Seeds", Inventory: 5, PeopleBought: 1}, nil)

	var updatedProduct *entity.Product
	mocks.txProducts.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			updatedProduct = product
		}).
		Return(nil)

	var createdOrder *entity.Order
	mocks.txOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)
	mocks.txUsers.EXPECT().
		UpdateUserCart(ctx, userID, []entity.CartItem{}).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := svc.PlaceOrder(ctx, "user_abc", usecase.PlaceOrderInput{
		ShippingAddress: shippingAddress(),
		ShippingCost:    decimal.NewFromInt(4),
		TaxAmount:       decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	// 2 x 8.00 + 4.00 shipping + 2.00 tax.
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(22)), "total was %s", order.TotalAmount)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.ShippingStatusPending, order.ShippingStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.NewFromInt(8)))

	require.NotNil(t, createdOrder)
	assert.Equal(t, order, createdOrder)

	require.NotNil(t, updatedProduct)
	assert.Equal(t, 3, updatedProduct.Inventory)
	assert.Equal(t, 3, updatedProduct.PeopleBought)
}

func TestOrderService_PlaceOrder_PublishesOrderCreated(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(cartUser(userID, productID), nil)
	mocks.expectTransaction(ctx, t)
	mocks.txProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Inventory: 5}, nil)
	mocks.txProducts.EXPECT().
		UpdateProduct(ctx, mock.Anything).
		Return(nil)
	mocks.txOrders.EXPECT().
		CreateOrder(ctx, mock.Anything).
		Return(nil)
	mocks.txUsers.EXPECT().
		UpdateUserCart(ctx, userID, []entity.CartItem{}).
		Return(nil)

	var event *service.OrderEvent
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, e *service.OrderEvent) {
			event = e
		}).
		Return(nil)

	order, err := svc.PlaceOrder(ctx, "user_abc", usecase.PlaceOrderInput{ShippingAddress: shippingAddress()})
	require.NoError(t, err)

	require.NotNil(t, event)
	assert.Equal(t, service.OrderEventCreated, event.EventType)
	assert.Equal(t, order.OrderNumber, event.OrderNumber)
	assert.Equal(t, userID.String(), event.UserID)
	assert.Equal(t, "shopper@example.com", event.Email)
	assert.Equal(t, 1, event.ItemCount)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc"}, nil)

	_, err := svc.PlaceOrder(ctx, "user_abc", usecase.PlaceOrderInput{ShippingAddress: shippingAddress()})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyOrder)
}

func TestOrderService_PlaceOrder_MissingShippingAddress(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.PlaceOrder(context.Background(), "user_abc", usecase.PlaceOrderInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_InsufficientInventoryRollsBack(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(cartUser(userID, productID), nil)
	mocks.expectTransaction(ctx, t)

	// Inventory dropped below the cart quantity between add-to-cart and
	// checkout. The transaction callback fails before the order or the
	// cart clear happen; no event is published.
	mocks.txProducts.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Tomato Seeds", Inventory: 1}, nil)

	_, err := svc.PlaceOrder(ctx, "user_abc", usecase.PlaceOrderInput{ShippingAddress: shippingAddress()})
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)
	mocks.txOrders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	mocks.txUsers.AssertNotCalled(t, "UpdateUserCart", mock.Anything, mock.Anything, mock.Anything)
	mocks.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrder_Owner(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: userID, ClerkID: "user_abc"}, nil)
	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID}, nil)

	order, err := svc.GetOrder(ctx, "user_abc", orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_GetOrder_ForbiddenForOtherUser(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc", Role: entity.RoleUser}, nil)
	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	_, err := svc.GetOrder(ctx, "user_abc", orderID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_GetOrder_AdminSeesAnyOrder(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "admin_1").
		Return(&entity.User{ID: uuid.New(), ClerkID: "admin_1", Role: entity.RoleAdmin}, nil)
	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	_, err := svc.GetOrder(ctx, "admin_1", orderID)
	require.NoError(t, err)
}

func TestOrderService_ListOrders_ClampsPaging(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()

	var captured repository.ListQuery
	mocks.orderRepo.EXPECT().
		ListOrders(ctx, mock.AnythingOfType("repository.ListQuery")).
		Run(func(_ context.Context, query repository.ListQuery) {
			captured = query
		}).
		Return(repository.NewPageResult([]*entity.Order{}, 0, repository.ListQuery{Page: 1, PerPage: 10}), nil)

	_, err := svc.ListOrders(ctx, -3, 9999)
	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 100, captured.PerPage)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.UpdateOrderStatus(context.Background(), uuid.New(), usecase.OrderStatusInput{
		PaymentStatus:  "settled",
		ShippingStatus: entity.ShippingStatusPending,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	svc, mocks := newOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.PaymentStatusPaid, entity.ShippingStatusShipped).
		Return(nil)

	err := svc.UpdateOrderStatus(ctx, orderID, usecase.OrderStatusInput{
		PaymentStatus:  entity.PaymentStatusPaid,
		ShippingStatus: entity.ShippingStatusShipped,
	})
	require.NoError(t, err)
}

// newCachedOrderService swaps the passthrough cache for a real in-memory
// one, for tests that observe the cached order read paths.
func newCachedOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	mocks := &orderServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	svc := NewOrderService(OrderServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		OrderRepo: mocks.orderRepo,
		Publisher: mocks.publisher,
		Cache:     newMemoryCache(),
		Registry:  querykey.NewRegistry(),
		Config:    testConfig(),
		Logger:    testLogger(),
	})

	return svc, mocks
}

func TestOrderService_GetUserOrders_CachesHistory(t *testing.T) {
	svc, mocks := newCachedOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: userID, ClerkID: "user_abc"}, nil).
		Twice()
	mocks.orderRepo.EXPECT().
		FindOrdersByUser(ctx, userID).
		Return([]*entity.Order{{ID: uuid.New(), UserID: userID, OrderNumber: "ORD-1"}}, nil).
		Once()

	first, err := svc.GetUserOrders(ctx, "user_abc")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.GetUserOrders(ctx, "user_abc")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "ORD-1", second[0].OrderNumber)
}

func TestOrderService_ListOrders_CachesPages(t *testing.T) {
	svc, mocks := newCachedOrderService(t)
	ctx := context.Background()

	mocks.orderRepo.EXPECT().
		ListOrders(ctx, mock.AnythingOfType("repository.ListQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListQuery) (repository.PageResult[*entity.Order], error) {
			return repository.NewPageResult([]*entity.Order{{OrderNumber: "ORD-1"}}, 1, query), nil
		}).
		Once()

	first, err := svc.ListOrders(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	second, err := svc.ListOrders(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", second.Items[0].OrderNumber)
}

func TestOrderService_GetOrder_CacheHitStillEnforcesOwnership(t *testing.T) {
	svc, mocks := newCachedOrderService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "owner").
		Return(&entity.User{ID: ownerID, ClerkID: "owner", Role: entity.RoleUser}, nil)
	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "intruder").
		Return(&entity.User{ID: uuid.New(), ClerkID: "intruder", Role: entity.RoleUser}, nil)
	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: ownerID}, nil).
		Once()

	// The owner's read warms the cache.
	order, err := svc.GetOrder(ctx, "owner", orderID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, order.UserID)

	// A different user hitting the cached entry is still rejected.
	_, err = svc.GetOrder(ctx, "intruder", orderID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateOrderStatus_DropsCachedOrderReads(t *testing.T) {
	svc, mocks := newCachedOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: orderID, PaymentStatus: entity.PaymentStatusPending}, nil
		}).
		Once()
	adminID := uuid.New()
	mocks.userRepo.EXPECT().
		FindUserByClerkID(ctx, "admin").
		Return(&entity.User{ID: adminID, ClerkID: "admin", Role: entity.RoleAdmin}, nil).
		Twice()

	_, err := svc.GetOrder(ctx, "admin", orderID)
	require.NoError(t, err)

	mocks.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.PaymentStatusPaid, entity.ShippingStatusShipped).
		Return(nil)
	err = svc.UpdateOrderStatus(ctx, orderID, usecase.OrderStatusInput{
		PaymentStatus:  entity.PaymentStatusPaid,
		ShippingStatus: entity.ShippingStatusShipped,
	})
	require.NoError(t, err)

	// The status change invalidated the cached order, so the next read
	// consults the repository again.
	mocks.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, PaymentStatus: entity.PaymentStatusPaid}, nil).
		Once()
	refreshed, err := svc.GetOrder(ctx, "admin", orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, refreshed.PaymentStatus)
}
