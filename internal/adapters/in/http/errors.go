package http

import (
	"errors"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes. Business rule
// violations are checked before input errors because a DomainError may carry
// a ValueIsOutOfRangeError as its cause.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDomain):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrProductNameIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
		message = http.StatusText(status)
	}

	return c.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
