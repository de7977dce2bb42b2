package errors

import (
	"net/http"

	"pantry/internal/domain/entity"
	"pantry/internal/errors"
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

// Is matches any BaseError carrying the same business error code,
// so errors produced by WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

	ErrCannotModifySelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_MODIFY_SELF",
		"Admins cannot deactivate or remove their own account",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"This account has been deactivated",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet length requirements",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_ALLOWED",
		"Your role does not allow this action",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Offer-related errors
	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
		"",
	)

	ErrOfferUnavailable = NewBaseError(
		http.StatusBadRequest,
		"OFFER_UNAVAILABLE",
		"This offer is no longer available",
		"",
	)

	ErrSelfReservationForbidden = NewBaseError(
		http.StatusBadRequest,
		"SELF_RESERVATION_FORBIDDEN",
		"You cannot reserve your own offer",
		"",
	)

	ErrOfferAlreadyClaimed = NewBaseError(
		http.StatusBadRequest,
		"OFFER_ALREADY_CLAIMED",
		"This offer has already been reserved by another user",
		"",
	)

	// Transaction-related errors
	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"Transaction not found",
		"",
	)

	ErrTransactionOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"TRANSACTION_OWNERSHIP_VIOLATION",
		"Only the beneficiary who reserved this offer can do this",
		"",
	)

	ErrDuplicateClaim = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_CLAIM",
		"You already have a transaction for this offer",
		"",
	)

	ErrAlreadyCollected = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_COLLECTED",
		"This offer has already been collected",
		"",
	)

	ErrAlreadyCancelled = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_CANCELLED",
		"This transaction has already been cancelled",
		"",
	)

	ErrReservationConflict = NewBaseError(
		http.StatusConflict,
		"RESERVATION_CONFLICT",
		"The offer is being updated concurrently, please retry",
		"",
	)

	ErrOfferHasTransactions = NewBaseError(
		http.StatusConflict,
		"OFFER_HAS_TRANSACTIONS",
		"This offer has transactions and cannot be deleted",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Invalid pickup QR code",
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

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

var duplicateClaimMessages = map[entity.TransactionStatus]string{
	entity.TransactionStatusReserved:  "You have already reserved this offer",
	entity.TransactionStatusCollected: "You have already collected this offer",
	entity.TransactionStatusCancelled: "You already have a cancelled transaction for this offer",
}

// NewDuplicateClaimError returns ErrDuplicateClaim with a message describing the prior claim.
// Callers can still match it with errors.Is(err, ErrDuplicateClaim).
func NewDuplicateClaimError(prior entity.TransactionStatus) error {
	msg, ok := duplicateClaimMessages[prior]
	if !ok {
		return ErrDuplicateClaim
	}

	return &duplicateClaimError{BaseError: ErrDuplicateClaim, message: msg}
}

type duplicateClaimError struct {
	*BaseError
	message string
}

func (e *duplicateClaimError) Error() string   { return e.message }
func (e *duplicateClaimError) Message() string { return e.message }
func (e *duplicateClaimError) Unwrap() error   { return e.BaseError }

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
