package errors

import (
	"net/http"

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

// Is matches by business error code, so a WithDetails copy still matches its
// predefined sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
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
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrUnknownCategory = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CATEGORY",
		"Category is not part of the store's category set",
		"",
	)

	ErrInvalidSortKey = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SORT_KEY",
		"Unknown sort key",
		"",
	)

	ErrInvalidGridSize = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GRID_SIZE",
		"Unknown grid size",
		"",
	)

	// Cart and order errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cannot submit an order with an empty cart",
		"",
	)

	ErrEmptyCustomerName = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CUSTOMER_NAME",
		"Customer name is required",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"There was an error submitting your order. Please try again.",
		"",
	)

	// Admin errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"Admin session required",
		"",
	)

	ErrBulkImportInvalid = NewBaseError(
		http.StatusBadRequest,
		"BULK_IMPORT_INVALID",
		"Bulk import rejected",
		"",
	)

	ErrBulkBodyNotArray = NewBaseError(
		http.StatusBadRequest,
		"BULK_BODY_NOT_ARRAY",
		"Expected an array of products",
		"",
	)

	// Persistence errors
	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"Catalog is temporarily unavailable",
		"",
	)

	ErrSettingsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"SETTINGS_UPDATE_FAILED",
		"Failed to update store settings",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error into a generic
// internal AppError, keeping the original message as details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}
