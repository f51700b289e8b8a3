package error

import (
	"context"
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidPlan         = 4001
	CodeMissingFields       = 4002
	CodeInvalidEmail        = 4003
	CodeInvalidAmount       = 4004
	CodeAmountOverflow      = 4005
	CodeUnauthorized        = 4010
	CodeInvalidSignature    = 4011
	CodeInvalidToken        = 4012
	CodeInvalidCredentials  = 4013
	CodePaymentNotCompleted = 4020
	CodeAmountMismatch      = 4021
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeNotFound            = 4042
	CodeDuplicateUser       = 4090
	CodeDuplicateOrder      = 4091

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeConstraintViolation = 5001
	CodeGatewayRejected     = 5020
	CodeGatewayUnavailable  = 5030
	CodeDatabaseUnavailable = 5031
	CodeTimeout             = 5040
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindInvalidArgument    Kind = "INVALID_ARGUMENT"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindNotFound           Kind = "NOT_FOUND"
	KindConflict           Kind = "CONFLICT"
	KindFailedPrecondition Kind = "FAILED_PRECONDITION"
	KindUnavailable        Kind = "UNAVAILABLE"
	KindInternal           Kind = "INTERNAL"
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingFields is returned when a required input field is empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidPlan is returned when the plan identifier is not one of the known plans
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrInvalidEmail is returned when the email address is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidAmount is returned when an amount is zero or negative
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrUnauthorized is returned when no credentials accompany a protected request
	ErrUnauthorized = errors.New("not authorized, login again")

	// ErrInvalidSignature is returned when a payment callback signature does not verify
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrInvalidToken is returned when a session token cannot be parsed or verified
	ErrInvalidToken = errors.New("invalid session token")

	// ErrInvalidCredentials is returned when the password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPaymentNotCompleted is returned when the gateway does not report the order as paid
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrAmountMismatch is returned when the paid order amount differs from the local transaction
	ErrAmountMismatch = errors.New("paid amount does not match transaction amount")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateOrder is returned when a gateway order is already bound to another transaction
	ErrDuplicateOrder = errors.New("gateway order already attached to a transaction")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrGatewayRejected is returned when the payment gateway refuses a request
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrGatewayUnavailable is returned when the payment gateway cannot be reached
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTimeout is returned when an operation exceeds its deadline
	ErrTimeout = errors.New("operation timed out")
)

type classification struct {
	err    error
	code   int
	kind   Kind
	reason string
}

// classifications is ordered: the first sentinel found in the chain wins.
var classifications = []classification{
	{ErrMissingFields, CodeMissingFields, KindInvalidArgument, "MISSING_FIELDS"},
	{ErrInvalidPlan, CodeInvalidPlan, KindInvalidArgument, "INVALID_PLAN"},
	{ErrInvalidEmail, CodeInvalidEmail, KindInvalidArgument, "INVALID_EMAIL"},
	{ErrInvalidAmount, CodeInvalidAmount, KindInvalidArgument, "INVALID_AMOUNT"},
	{ErrAmountOverflow, CodeAmountOverflow, KindInvalidArgument, "AMOUNT_OVERFLOW"},
	{ErrInvalidRequest, CodeInvalidRequest, KindInvalidArgument, "INVALID_REQUEST"},
	{ErrInvalidSignature, CodeInvalidSignature, KindUnauthorized, "INVALID_SIGNATURE"},
	{ErrInvalidToken, CodeInvalidToken, KindUnauthorized, "INVALID_TOKEN"},
	{ErrInvalidCredentials, CodeInvalidCredentials, KindUnauthorized, "INVALID_CREDENTIALS"},
	{ErrUnauthorized, CodeUnauthorized, KindUnauthorized, "MISSING_TOKEN"},
	{ErrPaymentNotCompleted, CodePaymentNotCompleted, KindFailedPrecondition, "PAYMENT_NOT_COMPLETED"},
	{ErrAmountMismatch, CodeAmountMismatch, KindFailedPrecondition, "AMOUNT_MISMATCH"},
	{ErrUserNotFound, CodeUserNotFound, KindNotFound, "USER_NOT_FOUND"},
	{ErrTransactionNotFound, CodeTransactionNotFound, KindNotFound, "TRANSACTION_NOT_FOUND"},
	{ErrNotFound, CodeNotFound, KindNotFound, "NOT_FOUND"},
	{ErrDuplicateUser, CodeDuplicateUser, KindConflict, "DUPLICATE_USER"},
	{ErrDuplicateOrder, CodeDuplicateOrder, KindConflict, "DUPLICATE_ORDER"},
	{ErrGatewayUnavailable, CodeGatewayUnavailable, KindUnavailable, "GATEWAY_UNAVAILABLE"},
	{ErrDatabaseConnection, CodeDatabaseUnavailable, KindUnavailable, "DATABASE_UNAVAILABLE"},
	{ErrTimeout, CodeTimeout, KindUnavailable, "TIMEOUT"},
	{context.DeadlineExceeded, CodeTimeout, KindUnavailable, "TIMEOUT"},
	{ErrGatewayRejected, CodeGatewayRejected, KindInternal, "GATEWAY_REJECTED"},
	{ErrConstraintViolation, CodeConstraintViolation, KindInternal, "CONSTRAINT_VIOLATION"},
}

var internalClassification = classification{ErrInternalServer, CodeInternalServer, KindInternal, "INTERNAL"}

func classify(err error) classification {
	if err == nil {
		return internalClassification
	}
	for _, c := range classifications {
		if errors.Is(err, c.err) {
			return c
		}
	}
	return internalClassification
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	return classify(err).code
}

// KindOf returns the transport-level kind of err; unknown errors are internal.
func KindOf(err error) Kind {
	return classify(err).kind
}

// Reason returns a stable machine-readable reason string for err.
func Reason(err error) string {
	return classify(err).reason
}

// Message returns the client-safe message of the sentinel err resolves to.
// Driver and gateway details further down the chain are not included.
func Message(err error) string {
	return classify(err).err.Error()
}

// IsRetryable reports whether the caller may retry the same request later.
func IsRetryable(err error) bool {
	return err != nil && KindOf(err) == KindUnavailable
}

// PaymentError carries the identifiers of a payment flow step that failed
type PaymentError struct {
	TransactionID string
	UserID        string
	OrderID       string
	PaymentID     string
	Plan          string
	Step          string
	Err           error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment %s failed (transaction: %s, order: %s): %v",
		e.Step, e.TransactionID, e.OrderID, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "payment_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"order_id":       e.OrderID,
		"payment_id":     e.PaymentID,
		"plan":           e.Plan,
		"step":           e.Step,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(step, transactionID, orderID string, err error) *PaymentError {
	return &PaymentError{
		Step:          step,
		TransactionID: transactionID,
		OrderID:       orderID,
		Err:           err,
	}
}

// GatewayError describes a failed call to the payment gateway
type GatewayError struct {
	Operation   string
	StatusCode  int
	GatewayCode string
	Description string
	Err         error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gateway %s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("gateway %s failed with status %d (%s: %s): %v",
		e.Operation, e.StatusCode, e.GatewayCode, e.Description, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "gateway_error",
		"operation":    e.Operation,
		"status_code":  e.StatusCode,
		"gateway_code": e.GatewayCode,
		"description":  e.Description,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// AuthError wraps a failed authentication step
type AuthError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *AuthError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *AuthError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "auth_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// LogFieldser is implemented by errors that expose structured context.
type LogFieldser interface {
	LogFields() map[string]any
}

// Fields returns structured logging fields for err, using LogFields when available.
func Fields(err error) map[string]any {
	var lf LogFieldser
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}
