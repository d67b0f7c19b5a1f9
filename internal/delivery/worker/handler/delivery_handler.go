package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeliveryHandler records delivery milestones reported by fulfilment.
type DeliveryHandler struct {
	orderUC usecase.OrderUsecase
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(orderUC usecase.OrderUsecase) *DeliveryHandler {
	return &DeliveryHandler{orderUC: orderUC}
}

// UpdateDelivery handles POST /orders/:ref/delivery
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	var input usecase.DeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	order, err := h.orderUC.UpdateDelivery(c.Request().Context(), c.Param("ref"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
