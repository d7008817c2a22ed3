package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	CodeAuthentication    = "AUTHENTICATION_ERROR"
	CodeCatalog           = "CATALOG_ERROR"
	CodeCatalogQuery      = "CATALOG_QUERY_ERROR"
	CodeCompletionService = "AI_SERVICE_ERROR"
	CodeParse             = "PARSE_ERROR"
	CodeConfiguration     = "CONFIGURATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Validation is bad caller input. Never retried.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest, nil)
}

func NotFound(resource string, err error) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func Unauthorized(message string, err error) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized, err)
}

func Forbidden(message string, err error) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden, err)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequests, message, http.StatusTooManyRequests, nil)
}

// Authentication means the catalog credential exchange failed.
func Authentication(message string, err error) *AppError {
	return New(CodeAuthentication, message, http.StatusInternalServerError, err)
}

func Catalog(message string, err error) *AppError {
	return New(CodeCatalog, message, http.StatusInternalServerError, err)
}

// CatalogQuery means the catalog understood the request but rejected the query itself.
func CatalogQuery(message string, err error) *AppError {
	return New(CodeCatalogQuery, message, http.StatusInternalServerError, err)
}

func CompletionService(message string, err error) *AppError {
	return New(CodeCompletionService, message, http.StatusInternalServerError, err)
}

func Parse(message string, err error) *AppError {
	return New(CodeParse, message, http.StatusInternalServerError, err)
}

func Configuration(message string) *AppError {
	return New(CodeConfiguration, message, http.StatusInternalServerError, nil)
}

func Internal(message string, err error) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError, err)
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
