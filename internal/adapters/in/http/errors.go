package http

import (
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error class onto an HTTP status code.
func statusOf(class errs.Class) int {
	switch class {
	case errs.ClassInvalid:
		return http.StatusBadRequest
	case errs.ClassForbidden:
		return http.StatusForbidden
	case errs.ClassNotFound:
		return http.StatusNotFound
	case errs.ClassConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Internal errors are logged by the request logger
// and hidden from the client.
func writeError(c echo.Context, err error) error {
	status := statusOf(errs.ClassOf(err))
	message := err.Error()
	if status == http.StatusInternalServerError {
		c.Set(internalErrorKey, err)
		message = http.StatusText(status)
	}

	return c.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
