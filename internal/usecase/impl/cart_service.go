package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"organic/internal/domain/entity"
	domainerrors "organic/internal/domain/errors"
	"organic/internal/domain/querykey"
	"organic/internal/domain/repository"
	"organic/internal/domain/service"
	"organic/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cache       service.QueryCache
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Cache       service.QueryCache
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

// GetCart returns the user's cart with the subtotal.
func (s *cartService) GetCart(ctx context.Context, clerkID string) (*usecase.CartSummary, error) {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	return cartSummary(user.Cart), nil
}

// AddToCart adds a product to the cart. Adding a product already in the cart
// merges quantities into the existing line.
func (s *cartService) AddToCart(ctx context.Context, clerkID string, productID uuid.UUID, quantity int) (*usecase.CartSummary, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsPublished {
		return nil, domainerrors.ErrProductNotFound
	}
	if product.Inventory < quantity {
		return nil, domainerrors.ErrInsufficientInventory
	}

	cart := entity.AddToCart(user.Cart, entity.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Quantity:      quantity,
		PriceSnapshot: product.FinalPrice(),
		Image:         product.PrimaryImage(),
		AddedAt:       time.Now().UTC(),
	})

	return s.saveCart(ctx, user, cart)
}

// UpdateCartItem sets the quantity of a cart line. Zero removes the line.
func (s *cartService) UpdateCartItem(ctx context.Context, clerkID string, productID uuid.UUID, quantity int) (*usecase.CartSummary, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}
	if quantity == 0 {
		return s.RemoveFromCart(ctx, clerkID, productID)
	}

	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	found := false
	cart := slices.Clone(user.Cart)
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity = quantity
			found = true

			break
		}
	}
	if !found {
		return nil, domainerrors.ErrNotFound.WrapMessage("product is not in the cart")
	}

	return s.saveCart(ctx, user, cart)
}

// RemoveFromCart removes a cart line.
func (s *cartService) RemoveFromCart(ctx context.Context, clerkID string, productID uuid.UUID) (*usecase.CartSummary, error) {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	cart := slices.DeleteFunc(slices.Clone(user.Cart), func(item entity.CartItem) bool {
		return item.ProductID == productID
	})

	return s.saveCart(ctx, user, cart)
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context, clerkID string) error {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	_, err = s.saveCart(ctx, user, []entity.CartItem{})

	return err
}

// GetWishlist returns the products on the user's wishlist.
func (s *cartService) GetWishlist(ctx context.Context, clerkID string) ([]*entity.Product, error) {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	if len(user.Wishlist) == 0 {
		return []*entity.Product{}, nil
	}

	return s.productRepo.FindProductsByIDs(ctx, user.Wishlist)
}

// AddToWishlist adds a product id to the wishlist, ignoring duplicates.
func (s *cartService) AddToWishlist(ctx context.Context, clerkID string, productID uuid.UUID) error {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	if slices.Contains(user.Wishlist, productID) {
		return nil
	}

	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return err
	}

	wishlist := append(slices.Clone(user.Wishlist), productID)
	if err := s.userRepo.UpdateUserWishlist(ctx, user.ID, wishlist); err != nil {
		return err
	}

	s.invalidateUser(ctx, user)

	return nil
}

// RemoveFromWishlist removes a product id from the wishlist.
func (s *cartService) RemoveFromWishlist(ctx context.Context, clerkID string, productID uuid.UUID) error {
	user, err := s.userRepo.FindUserByClerkID(ctx, clerkID)
	if err != nil {
		return err
	}

	wishlist := slices.DeleteFunc(slices.Clone(user.Wishlist), func(id uuid.UUID) bool {
		return id == productID
	})
	if err := s.userRepo.UpdateUserWishlist(ctx, user.ID, wishlist); err != nil {
		return err
	}

	s.invalidateUser(ctx, user)

	return nil
}

func (s *cartService) saveCart(ctx context.Context, user *entity.User, cart []entity.CartItem) (*usecase.CartSummary, error) {
	if err := s.userRepo.UpdateUserCart(ctx, user.ID, cart); err != nil {
		return nil, err
	}

	s.invalidateUser(ctx, user)

	return cartSummary(cart), nil
}

// invalidateUser drops the cached reads scoped to one user.
func (s *cartService) invalidateUser(ctx context.Context, user *entity.User) {
	prefixes := []querykey.Key{
		querykey.UserDetails(user.ClerkID),
		querykey.UserCart(user.ID.String()),
		querykey.UserWishlist(user.ID.String()),
	}
	if err := s.cache.Invalidate(ctx, prefixes...); err != nil {
		s.logger.Warn("query cache invalidation failed",
			slog.String("clerk_id", user.ClerkID),
			slog.String("error", err.Error()),
		)
	}
}

func cartSummary(cart []entity.CartItem) *usecase.CartSummary {
	if cart == nil {
		cart = []entity.CartItem{}
	}

	return &usecase.CartSummary{
		Items:    cart,
		Subtotal: entity.CartSubtotal(cart).StringFixed(2),
	}
}
