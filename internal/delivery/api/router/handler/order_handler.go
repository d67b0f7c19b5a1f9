package handler

import (
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves completed orders: refund requests and QR codes.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// RefundRequest represents the public refund form
type RefundRequest struct {
	RefCode string `json:"ref_code" validate:"required,max=20"`
	Reason  string `json:"reason" validate:"required,max=2000"`
	Email   string `json:"email" validate:"required,email"`
}

// RequestRefund stores a refund request for the order with the given reference code.
func (h *OrderHandler) RequestRefund(c echo.Context) error {
	var req RefundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	refund, err := h.orderUC.RequestRefund(c.Request().Context(), &usecase.RefundInput{
		RefCode: req.RefCode,
		Reason:  req.Reason,
		Email:   req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, refund)
}

// GetOrderQR renders the caller's order reference code as PNG.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.orderUC.GetOrderQR(c.Request().Context(), userID, c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
