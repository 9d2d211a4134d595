package impl

import (
	"context"
	"testing"
	"time"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	mockRepo "organic/internal/mocks/repository"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockUserRepository, *mockRepo.MockProductRepository) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(CartServiceParams{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Cache:       passthroughCache(t),
		Logger:      testLogger(),
	})

	return svc, userRepo, productRepo
}

func TestCartService_AddToCart_NewLine(t *testing.T) {
	svc, userRepo, productRepo := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: userID, ClerkID: "user_abc"}, nil)
	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{
			ID:          productID,
			Name:        "Tomato Seeds",
			Price:       decimal.NewFromInt(10),
			Discount:    decimal.NewFromInt(20),
			Inventory:   5,
			IsPublished: true,
			Images:      []string{"https://cdn.example.com/images/a.webp"},
		}, nil)

	var savedCart []entity.CartItem
	userRepo.EXPECT().
		UpdateUserCart(ctx, userID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(_ context.Context, _ uuid.UUID, cart []entity.CartItem) {
			savedCart = cart
		}).
		Return(nil)

	summary, err := svc.AddToCart(ctx, "user_abc", productID, 2)
	require.NoError(t, err)

	require.Len(t, savedCart, 1)
	assert.Equal(t, productID, savedCart[0].ProductID)
	assert.Equal(t, 2, savedCart[0].Quantity)
	// Snapshot carries the discounted price.
	assert.True(t, savedCart[0].PriceSnapshot.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, "https://cdn.example.com/images/a.webp", savedCart[0].Image)
	assert.Equal(t, "16.00", summary.Subtotal)
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	svc, userRepo, productRepo := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{
			ID:      userID,
			ClerkID: "user_abc",
			Cart: []entity.CartItem{{
				ProductID:     productID,
				Name:          "Tomato Seeds",
				Quantity:      1,
				PriceSnapshot: decimal.NewFromInt(8),
				AddedAt:       time.Now().UTC(),
			}},
		}, nil)
	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{
			ID:          productID,
			Name:        "Tomato Seeds",
			Price:       decimal.NewFromInt(8),
			Inventory:   5,
			IsPublished: true,
		}, nil)

	var savedCart []entity.CartItem
	userRepo.EXPECT().
		UpdateUserCart(ctx, userID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(_ context.Context, _ uuid.UUID, cart []entity.CartItem) {
			savedCart = cart
		}).
		Return(nil)

	_, err := svc.AddToCart(ctx, "user_abc", productID, 2)
	require.NoError(t, err)

	require.Len(t, savedCart, 1, "adding the same product twice must not duplicate the line")
	assert.Equal(t, 3, savedCart[0].Quantity)
}

func TestCartService_AddToCart_ZeroQuantity(t *testing.T) {
	svc, _, _ := newCartService(t)

	_, err := svc.AddToCart(context.Background(), "user_abc", uuid.New(), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddToCart_UnpublishedProduct(t *testing.T) {
	svc, userRepo, productRepo := newCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc"}, nil)
	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Inventory: 5, IsPublished: false}, nil)

	_, err := svc.AddToCart(ctx, "user_abc", productID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddToCart_InsufficientInventory(t *testing.T) {
	svc, userRepo, productRepo := newCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc"}, nil)
	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, Inventory: 1, IsPublished: true}, nil)

	_, err := svc.AddToCart(ctx, "user_abc", productID, 3)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientInventory)
}

func TestCartService_UpdateCartItem_ZeroRemovesLine(t *testing.T) {
	svc, userRepo, _ := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{
			ID:      userID,
			ClerkID: "user_abc",
			Cart: []entity.CartItem{{
				ProductID:     productID,
				Quantity:      2,
				PriceSnapshot: decimal.NewFromInt(8),
			}},
		}, nil)

	var savedCart []entity.CartItem
	userRepo.EXPECT().
		UpdateUserCart(ctx, userID, mock.AnythingOfType("[]entity.CartItem")).
		Run(func(_ context.Context, _ uuid.UUID, cart []entity.CartItem) {
			savedCart = cart
		}).
		Return(nil)

	summary, err := svc.UpdateCartItem(ctx, "user_abc", productID, 0)
	require.NoError(t, err)
	assert.Empty(t, savedCart)
	assert.Equal(t, "0.00", summary.Subtotal)
}

func TestCartService_UpdateCartItem_MissingLine(t *testing.T) {
	svc, userRepo, _ := newCartService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc"}, nil)

	_, err := svc.UpdateCartItem(ctx, "user_abc", uuid.New(), 4)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_GetCart_EmptySummary(t *testing.T) {
	svc, userRepo, _ := newCartService(t)
	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc"}, nil)

	summary, err := svc.GetCart(ctx, "user_abc")
	require.NoError(t, err)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
	assert.Equal(t, "0.00", summary.Subtotal)
}

func TestCartService_AddToWishlist_IgnoresDuplicate(t *testing.T) {
	svc, userRepo, _ := newCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{
			ID:       uuid.New(),
			ClerkID:  "user_abc",
			Wishlist: []uuid.UUID{productID},
		}, nil)

	err := svc.AddToWishlist(ctx, "user_abc", productID)
	require.NoError(t, err)
}

func TestCartService_AddToWishlist_UnknownProduct(t *testing.T) {
	svc, userRepo, productRepo := newCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{ID: uuid.New(), ClerkID: "user_abc"}, nil)
	productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, domainerrors.ErrProductNotFound)

	err := svc.AddToWishlist(ctx, "user_abc", productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_GetWishlist_ResolvesProducts(t *testing.T) {
	svc, userRepo, productRepo := newCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{
			ID:       uuid.New(),
			ClerkID:  "user_abc",
			Wishlist: []uuid.UUID{productID},
		}, nil)
	productRepo.EXPECT().
		FindProductsByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{{ID: productID, Name: "Tomato Seeds"}}, nil)

	products, err := svc.GetWishlist(ctx, "user_abc")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, productID, products[0].ID)
}

func TestCartService_RemoveFromWishlist(t *testing.T) {
	svc, userRepo, _ := newCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	keepID := uuid.New()

	userRepo.EXPECT().
		FindUserByClerkID(ctx, "user_abc").
		Return(&entity.User{
			ID:       userID,
			ClerkID:  "user_abc",
			Wishlist: []uuid.UUID{productID, keepID},
		}, nil)
	userRepo.EXPECT().
		UpdateUserWishlist(ctx, userID, []uuid.UUID{keepID}).
		Return(nil)

	err := svc.RemoveFromWishlist(ctx, "user_abc", productID)
	require.NoError(t, err)
}
