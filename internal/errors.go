package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized  ErrorType = "UNAUTHORIZED"
	ErrorTypeConfiguration ErrorType = "CONFIGURATION_ERROR"
	ErrorTypeInternal      ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeRequiredField  ErrorCode = "REQUIRED_FIELD_MISSING"
	ErrCodePositiveNumber ErrorCode = "INVALID_POSITIVE_NUMBER"
	ErrCodeInvalidDate    ErrorCode = "INVALID_DATE"
	ErrCodeEmptyField     ErrorCode = "EMPTY_FIELD"

	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"

	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeInvalidSession  ErrorCode = "INVALID_SESSION"

	ErrCodeMissingConfig ErrorCode = "MISSING_CONFIGURATION"
	ErrCodeStorage       ErrorCode = "STORAGE_ERROR"
)

// AppError is the error shape every service raises. The route layer maps
// StatusCode onto the wire; message substrings such as "must be a positive
// number" or "Resource not found" are part of the contract with callers and
// must not be reworded.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func NewRequiredFieldError(field string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeRequiredField,
		Message:    fmt.Sprintf("Required field missing: %s", field),
		StatusCode: http.StatusBadRequest,
	}
}

func NewPositiveNumberError(field string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodePositiveNumber,
		Message:    fmt.Sprintf("%s must be a positive number", field),
		StatusCode: http.StatusBadRequest,
	}
}

func NewInvalidDateError(value string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeInvalidDate,
		Message:    fmt.Sprintf("Invalid date format: %s", value),
		StatusCode: http.StatusBadRequest,
	}
}

func NewEmptyFieldError(field string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeEmptyField,
		Message:    fmt.Sprintf("%s cannot be empty", field),
		StatusCode: http.StatusBadRequest,
	}
}

func NewResourceNotFoundError() *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       ErrCodeResourceNotFound,
		Message:    "Resource not found",
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewConfigurationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConfiguration,
		Code:       ErrCodeMissingConfig,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeStorage,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrResourceNotFound = NewResourceNotFoundError()
	ErrInvalidPassword  = NewUnauthorizedError("invalid password", ErrCodeInvalidPassword)
	ErrInvalidSession   = NewUnauthorizedError("invalid or expired session", ErrCodeInvalidSession)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
