// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"organic/internal/delivery/http/middleware"
	"organic/internal/delivery/http/router/handler"
	"organic/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	UserHandler     *handler.UserHandler
	StoreHandler    *handler.StoreHandler
	WebhookHandler  *handler.WebhookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	userHandler     *handler.UserHandler
	storeHandler    *handler.StoreHandler
	webhookHandler  *handler.WebhookHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		userHandler:     params.UserHandler,
		storeHandler:    params.StoreHandler,
		webhookHandler:  params.WebhookHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/trending", r.productHandler.GetTrendingProducts)
	e.GET("/products/search", r.productHandler.SearchProducts)
	e.GET("/products/:slug", r.productHandler.GetProduct)
	e.GET("/categories", r.categoryHandler.GetCategoryTree)
	e.GET("/categories/:slug", r.categoryHandler.GetCategory)
	e.GET("/store", r.storeHandler.GetStore)
	e.GET("/shipping-rates", r.storeHandler.ListShippingRates)

	// Identity provider webhooks, signature-verified rather than session-authenticated
	e.POST("/api/webhooks/clerk", r.webhookHandler.HandleClerkWebhook)

	// Routes that require an authenticated session
	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)
	{
		authGroup.GET("/me", r.userHandler.GetMe)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddToCart)
		cartGroup.PUT("/items", r.cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveFromCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.cartHandler.GetWishlist)
		wishlistGroup.POST("", r.cartHandler.AddToWishlist)
		wishlistGroup.DELETE("/:productId", r.cartHandler.RemoveFromWishlist)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.GetMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Admin console routes, gated on the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/products", r.productHandler.AdminListProducts)
		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
		adminGroup.POST("/products/images", r.productHandler.UploadImage)
		adminGroup.DELETE("/products/images", r.productHandler.DeleteImage)

		adminGroup.GET("/categories", r.categoryHandler.ListCategories)
		adminGroup.POST("/categories", r.categoryHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.categoryHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.DeleteCategory)

		adminGroup.GET("/users", r.userHandler.ListUsers)
		adminGroup.POST("/set-role", r.userHandler.SetRole)

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)

		adminGroup.PUT("/store", r.storeHandler.SaveStore)
		adminGroup.POST("/shipping-rates", r.storeHandler.CreateShippingRate)
		adminGroup.PUT("/shipping-rates/:id", r.storeHandler.UpdateShippingRate)
		adminGroup.DELETE("/shipping-rates/:id", r.storeHandler.DeleteShippingRate)
	}
}
