package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "sweaty/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return handleHTTPError(c, httpErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{
			Error: appErr.Message,
			Code:  appErr.Code,
		})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: "An unexpected error occurred",
		Code:  apperrors.CodeInternal,
	})
}

// HTTPErrorHandler renders errors that escape handlers (unknown routes,
// middleware rejections) with the same body shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if writeErr := Error(c, err); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}

func handleHTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	switch httpErr.Code {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return c.JSON(httpErr.Code, ErrorBody{
			Error: "Invalid request body",
			Code:  apperrors.CodeValidation,
		})
	case http.StatusNotFound:
		return c.JSON(httpErr.Code, ErrorBody{Error: "Route not found", Code: apperrors.CodeNotFound})
	case http.StatusMethodNotAllowed:
		return c.JSON(httpErr.Code, ErrorBody{Error: "Method not allowed", Code: apperrors.CodeValidation})
	}

	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok && m != "" {
		message = m
	}
	return c.JSON(httpErr.Code, ErrorBody{Error: message, Code: apperrors.CodeInternal})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	message := "Invalid input data"
	if len(validationErr) > 0 {
		err := validationErr[0]
		field := strings.ToLower(err.Field())
		param := err.Param()

		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must contain at least " + param + " item(s)"
		case "max":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + param
		default:
			message = field + " is invalid"
		}
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Error: message,
		Code:  apperrors.CodeValidation,
	})
}
