package errors

import (
	"net/http"
	"sort"
	"strings"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"This item does not exist",
		"",
	)

	// Cart errors
	ErrNoActiveOrder = NewBaseError(
		http.StatusNotFound,
		"NO_ACTIVE_ORDER",
		"You do not have an active order",
		"",
	)

	ErrItemNotInCart = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_IN_CART",
		"This item was not in your cart",
		"",
	)

	ErrCartBusy = NewBaseError(
		http.StatusConflict,
		"CART_BUSY",
		"Your cart is being updated, please try again",
		"",
	)

	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"This coupon does not exist",
		"",
	)

	// Checkout errors
	ErrAddressesRequired = NewBaseError(
		http.StatusConflict,
		"ADDRESSES_REQUIRED",
		"Add a shipping and billing address before paying",
		"",
	)

	ErrBillingAddressRequired = NewBaseError(
		http.StatusConflict,
		"BILLING_ADDRESS_REQUIRED",
		"You have not added a billing address",
		"",
	)

	ErrDefaultAddressNotFound = NewBaseError(
		http.StatusBadRequest,
		"DEFAULT_ADDRESS_NOT_FOUND",
		"No default address available",
		"",
	)

	ErrUnsupportedPaymentOption = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PAYMENT_OPTION",
		"Invalid payment option selected",
		"",
	)

	ErrOrderNotChargeable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_CHARGEABLE",
		"The order total must be greater than zero",
		"",
	)

	// Payment errors
	ErrPaymentRetryable = NewBaseError(
		http.StatusServiceUnavailable,
		"PAYMENT_RETRYABLE",
		"Something went wrong. You were not charged. Please try again",
		"",
	)

	ErrCardDeclined = NewBaseError(
		http.StatusPaymentRequired,
		"CARD_DECLINED",
		"Your card was declined",
		"",
	)

	ErrPaymentRejected = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_REJECTED",
		"The payment could not be processed",
		"",
	)

	ErrPaymentInProgress = NewBaseError(
		http.StatusConflict,
		"PAYMENT_IN_PROGRESS",
		"A payment for this request is already being processed",
		"",
	)

	ErrCartChanged = NewBaseError(
		http.StatusConflict,
		"CART_CHANGED",
		"Your cart changed while the payment was processed; the charge was refunded, please review your order and pay again",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"This order does not exist",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Consistency errors
	ErrConsistencyFault = NewBaseError(
		http.StatusInternalServerError,
		"CONSISTENCY_FAULT",
		"Your order could not be completed, please contact support",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// FieldErrors maps a request field to the reason it was rejected.
type FieldErrors map[string]string

// ValidationError is a 400 carrying per-field reasons.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for key := range e.fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return "validation failed: " + strings.Join(keys, ", ")
}

// Is makes errors.Is(err, ErrValidationFailed) hold for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return e.Error() }

// Fields returns the per-field reasons.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
