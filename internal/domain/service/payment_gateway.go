package service

import (
	"context"
	"fmt"

	"storefront/internal/errors"
)

// PaymentErrorKind classifies gateway failures so callers can decide whether to retry.
type PaymentErrorKind int

const (
	// PaymentErrorTransient covers rate limits, connection failures and timeouts.
	PaymentErrorTransient PaymentErrorKind = iota
	// PaymentErrorDeclined means the card was declined.
	PaymentErrorDeclined
	// PaymentErrorRejected means the gateway refused the request as invalid or unauthenticated.
	PaymentErrorRejected
)

func (k PaymentErrorKind) String() string {
	switch k {
	case PaymentErrorDeclined:
		return "declined"
	case PaymentErrorRejected:
		return "rejected"
	default:
		return "transient"
	}
}

// PaymentError is returned by a PaymentGateway for every failed call.
type PaymentError struct {
	Kind    PaymentErrorKind
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment %s (%s): %s", e.Kind, e.Code, e.Message)
	}

	return fmt.Sprintf("payment %s: %s", e.Kind, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// PaymentErrorKindOf returns the kind of a gateway error. Errors that are not
// a PaymentError are treated as transient.
func PaymentErrorKindOf(err error) PaymentErrorKind {
	var pe *PaymentError
	if errors.As(err, &pe) {
		return pe.Kind
	}

	return PaymentErrorTransient
}

// ChargeRequest describes a single charge. Exactly one of CustomerRef or Token is used;
// CustomerRef wins when both are set.
type ChargeRequest struct {
	AmountCents    int64
	Currency       string
	CustomerRef    string
	Token          string
	IdempotencyKey string
	Description    string
}

// Charge is the gateway's record of a successful charge.
type Charge struct {
	ID          string
	AmountCents int64
}

// PaymentGateway abstracts the external card processor.
type PaymentGateway interface {
	// Charge debits the card or saved customer.
	Charge(ctx context.Context, req ChargeRequest) (*Charge, error)

	// CreateCustomer registers a card on file and returns the customer reference.
	CreateCustomer(ctx context.Context, email, token string) (string, error)

	// AttachSource adds a card to an existing customer.
	AttachSource(ctx context.Context, customerRef, token string) error

	// RefundCharge reverses a charge in full.
	RefundCharge(ctx context.Context, chargeID string) error
}
