package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey deduplicates retried payment submissions.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 255

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the payment step.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// PaymentRequest represents the request body for paying the open order
type PaymentRequest struct {
	Token      string `json:"token" validate:"max=255"`
	Save       bool   `json:"save"`
	UseDefault bool   `json:"use_default"`
}

// GetPayment returns the payment page model.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	view, err := h.paymentUC.GetPayment(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SubmitPayment charges the open order.
func (h *PaymentHandler) SubmitPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLength {
		return response.BadRequest(c, "INVALID_IDEMPOTENCY_KEY", "Idempotency-Key is too long")
	}

	result, err := h.paymentUC.SubmitPayment(c.Request().Context(), userID, &usecase.PaymentInput{
		Token:          req.Token,
		Save:           req.Save,
		UseDefault:     req.UseDefault,
		IdempotencyKey: key,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	return response.Success(c, status, result)
}
