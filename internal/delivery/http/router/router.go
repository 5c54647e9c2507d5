// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler

	SessionMiddleware *middleware.SessionMiddleware
	AdminMiddleware   *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler

	sessionMiddleware *middleware.SessionMiddleware
	adminMiddleware   *middleware.AdminMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
		adminMiddleware:   params.AdminMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every other route is session-scoped.
	e.Use(r.sessionMiddleware.Resolve)

	// Shopper-facing catalog surface
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/catalog", r.catalogHandler.GetCatalog)
	e.GET("/store_settings", r.catalogHandler.GetSettings)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
	}

	// Admin login is open; everything it unlocks is gated below.
	e.POST("/admin/login", r.adminHandler.Login)
	e.POST("/admin/logout", r.adminHandler.Logout)

	// Checkout
	e.POST("/orders", r.orderHandler.SubmitOrder)

	// Catalog mutations require the session admin flag.
	adminGroup := e.Group("", r.adminMiddleware.RequireAdmin)
	{
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.POST("/products/bulk", r.adminHandler.CreateProductsBulk)
		adminGroup.POST("/products/import", r.adminHandler.ImportProducts)
		adminGroup.PATCH("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
		adminGroup.PUT("/store_settings/:id", r.adminHandler.UpdateSettings)
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
	}
}
