// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		authGroup.PUT("/profile", r.userHandler.UpdateProfile, authenticate)
	}

	// Catalog routes; reads are public, writes are admin only
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/search/:term", r.productHandler.SearchProducts)
		productGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productGroup.POST("", r.productHandler.CreateProduct, authenticate, adminOnly)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, authenticate, adminOnly)
		productGroup.PUT("/:id/stock", r.productHandler.AdjustStock, authenticate, adminOnly)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticate, adminOnly)
	}

	// Purchase routes all require authentication
	purchaseGroup := e.Group("/purchases")
	purchaseGroup.Use(authenticate)
	{
		purchaseGroup.POST("", r.orderHandler.PlaceOrder)
		purchaseGroup.GET("/user/me", r.orderHandler.ListMyOrders)
		purchaseGroup.GET("/:id", r.orderHandler.GetOrder)
		purchaseGroup.GET("", r.orderHandler.ListAllOrders, adminOnly)
		purchaseGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus, adminOnly)
		purchaseGroup.DELETE("/:id", r.orderHandler.DeleteOrder, adminOnly)
	}

	// Account management routes require the admin role
	userGroup := e.Group("/users")
	userGroup.Use(authenticate, adminOnly)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
