// Package stripe adapts the Stripe API client to the payment gateway port.
package stripe

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client implements service.PaymentGateway on top of stripe-go.
type Client struct {
	api    *client.API
	logger *slog.Logger
}

// NewClient creates a gateway client from the payment section.
func NewClient(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Payment.SecretKey == "" {
		logger.Warn("Payment secret key is empty; every charge will be rejected by the gateway")
	}

	return newClient(cfg.Payment.BaseURL, cfg.Payment.SecretKey, cfg.Payment.Timeout, logger)
}

func newClient(baseURL, secretKey string, timeout time.Duration, logger *slog.Logger) *Client {
	backends := stripego.NewBackendsWithConfig(&stripego.BackendConfig{
		URL:        stripego.String(baseURL),
		HTTPClient: &http.Client{Timeout: timeout},
		// Retries are decided by the checkout flow, which owns the idempotency key.
		MaxNetworkRetries: stripego.Int64(0),
		LeveledLogger:     &slogLeveledLogger{logger: logger},
	})

	api := &client.API{}
	api.Init(secretKey, backends)

	return &Client{
		api:    api,
		logger: logger,
	}
}

// Charge creates a charge against a saved customer or a one-time token.
func (c *Client) Charge(ctx context.Context, req service.ChargeRequest) (*service.Charge, error) {
	params := &stripego.ChargeParams{
		Amount:   stripego.Int64(req.AmountCents),
		Currency: stripego.String(req.Currency),
	}
	params.Context = ctx
	if req.CustomerRef != "" {
		params.Customer = stripego.String(req.CustomerRef)
	} else {
		params.AddExtra("source", req.Token)
	}
	if req.Description != "" {
		params.Description = stripego.String(req.Description)
	}
	if req.IdempotencyKey != "" {
		params.IdempotencyKey = stripego.String(req.IdempotencyKey)
	}

	ch, err := c.api.Charges.New(params)
	if err != nil {
		return nil, classify(err)
	}

	c.logger.Info("Charge created",
		slog.String("charge_id", ch.ID),
		slog.Int64("amount_cents", ch.Amount),
	)

	return &service.Charge{ID: ch.ID, AmountCents: ch.Amount}, nil
}

// CreateCustomer stores a card on file for email.
func (c *Client) CreateCustomer(ctx context.Context, email, token string) (string, error) {
	params := &stripego.CustomerParams{
		Email: stripego.String(email),
	}
	params.Context = ctx
	params.AddExtra("source", token)

	cus, err := c.api.Customers.New(params)
	if err != nil {
		return "", classify(err)
	}

	return cus.ID, nil
}

// AttachSource adds a card to an existing customer.
func (c *Client) AttachSource(ctx context.Context, customerRef, token string) error {
	params := &stripego.PaymentSourceParams{
		Customer: stripego.String(customerRef),
	}
	params.Context = ctx
	params.AddExtra("source", token)

	if _, err := c.api.PaymentSources.New(params); err != nil {
		return classify(err)
	}

	return nil
}

// RefundCharge refunds the full amount of a charge.
func (c *Client) RefundCharge(ctx context.Context, chargeID string) error {
	params := &stripego.RefundParams{
		Charge: stripego.String(chargeID),
	}
	params.Context = ctx
	// One refund per charge, so the charge id doubles as the idempotency key.
	params.IdempotencyKey = stripego.String("refund-" + chargeID)

	if _, err := c.api.Refunds.New(params); err != nil {
		return classify(err)
	}

	return nil
}

// classify maps a stripe-go failure to a PaymentError. Anything that is not an
// API error response (network, timeout, undecodable body) is transient.
func classify(err error) error {
	var stripeErr *stripego.Error
	if !errors.As(err, &stripeErr) {
		return &service.PaymentError{
			Kind:    service.PaymentErrorTransient,
			Message: "gateway unavailable",
			Err:     errors.WithStack(err),
		}
	}

	perr := &service.PaymentError{
		Code:    string(stripeErr.Code),
		Message: stripeErr.Msg,
		Err:     stripeErr,
	}
	if perr.Message == "" {
		perr.Message = http.StatusText(stripeErr.HTTPStatusCode)
	}

	switch {
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests || stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
		perr.Kind = service.PaymentErrorTransient
	case stripeErr.Type == stripego.ErrorTypeCard:
		perr.Kind = service.PaymentErrorDeclined
	case stripeErr.Type == stripego.ErrorTypeAPI:
		perr.Kind = service.PaymentErrorTransient
	default:
		// invalid_request_error, idempotency_error and authentication failures
		perr.Kind = service.PaymentErrorRejected
	}

	return perr
}

// slogLeveledLogger routes stripe-go's own logging into slog.
type slogLeveledLogger struct {
	logger *slog.Logger
}

func (l *slogLeveledLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *slogLeveledLogger) Infof(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *slogLeveledLogger) Warnf(format string, v ...any) {
	l.logger.Warn(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}

func (l *slogLeveledLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "stripe"))
}
