// Package errors defines the domain errors and the HTTP status and code each one maps to.
package errors

import (
	"net/http"

	"interest/internal/errors"
)

// AppError is an error that carries its HTTP mapping and a user-facing message.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
}

// BaseError is a sentinel domain error. Wrap it to add context; errors.Is still matches it.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

var (
	// Product-related errors
	ErrProductNotFound = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "找不到該商品")

	// Customer-related errors
	ErrCustomerNotFound = newError(http.StatusNotFound, "CUSTOMER_NOT_FOUND", "找不到該顧客")

	// Subscription-related errors
	ErrRelationshipExists = newError(http.StatusConflict, "RELATIONSHIP_EXISTS", "顧客已訂閱此商品")

	// Authentication-related errors
	ErrUnauthorized = newError(http.StatusUnauthorized, "UNAUTHORIZED", "未授權的請求")

	ErrTokenInvalid = newError(http.StatusUnauthorized, "TOKEN_INVALID", "無效或已過期的存取權杖")

	// Validation-related errors
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "輸入資料驗證失敗")

	ErrInvalidID = newError(http.StatusBadRequest, "INVALID_ID", "無效的識別碼")

	// Transaction-related errors
	ErrTransactionFailed = newError(http.StatusInternalServerError, "TRANSACTION_FAILED", "資料庫交易失敗")

	// General errors
	ErrInternalError = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "系統內部錯誤")

	ErrForbidden = newError(http.StatusForbidden, "FORBIDDEN", "存取被拒絕")

	ErrNotFound = newError(http.StatusNotFound, "NOT_FOUND", "找不到該資源")
)

// DatabaseExecuteError reports a failed statement without exposing it to the client.
type DatabaseExecuteError struct {
	err       error
	operation string
}

func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{
		err:       err,
		operation: operation,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return e.operation + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}
