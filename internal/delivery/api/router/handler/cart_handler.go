package handler

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the authenticated user's open order.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// ApplyCouponRequest represents the request body for applying a coupon
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,max=15"`
}

// GetCart returns the open order summary.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summary, err := h.cartUC.GetOpenOrder(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// CountLines returns the number of lines in the open order.
func (h *CartHandler) CountLines(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	count, err := h.cartUC.CartLineCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"line_count": count})
}

// AddItem adds one unit of the item to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	return h.mutate(c, h.cartUC.AddItem)
}

// RemoveItem drops the item's line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.mutate(c, h.cartUC.RemoveItem)
}

// DecrementItem removes one unit of the item from the cart.
func (h *CartHandler) DecrementItem(c echo.Context) error {
	return h.mutate(c, h.cartUC.DecrementItem)
}

// ApplyCoupon attaches a coupon to the open order.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ApplyCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.cartUC.ApplyCoupon(c.Request().Context(), userID, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

type cartMutation func(ctx context.Context, userID uint, slug string) (*usecase.OrderSummary, error)

func (h *CartHandler) mutate(c echo.Context, op cartMutation) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_SLUG", "Item slug is required")
	}

	summary, err := op(c.Request().Context(), userID, slug)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
