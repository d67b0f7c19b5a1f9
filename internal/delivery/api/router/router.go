// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	PaymentHandler  *handler.PaymentHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	paymentHandler  *handler.PaymentHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		paymentHandler:  params.PaymentHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Refund requests are identified by reference code and email, not by session.
	e.POST("/refunds", r.orderHandler.RequestRefund)

	apiV1 := e.Group("/api/v1")

	// Public catalog
	apiV1.GET("/items", r.catalogHandler.ListItems)
	apiV1.GET("/items/:slug", r.catalogHandler.GetItem)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	cartGroup := authed.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/count", r.cartHandler.CountLines)
		cartGroup.POST("/items/:slug", r.cartHandler.AddItem)
		cartGroup.DELETE("/items/:slug", r.cartHandler.RemoveItem)
		cartGroup.POST("/items/:slug/decrement", r.cartHandler.DecrementItem)
		cartGroup.POST("/coupon", r.cartHandler.ApplyCoupon)
	}

	authed.GET("/checkout", r.checkoutHandler.GetCheckout)
	authed.POST("/checkout", r.checkoutHandler.SubmitCheckout)

	authed.GET("/payment", r.paymentHandler.GetPayment)
	authed.POST("/payment", r.paymentHandler.SubmitPayment)

	authed.GET("/orders/:ref/qr", r.orderHandler.GetOrderQR)
}
