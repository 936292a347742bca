package middleware

import (
	"errors"
	"net/http"

	"github.com/confhall/registration-api/internal/apperr"
	"github.com/confhall/registration-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every business-rule failure with the exact status and
// message the service attached. Anything else falls through as a generic 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	var reqErr *apperr.RequestError
	if errors.As(err, &reqErr) {
		code = reqErr.Status
		msg = reqErr.Message
	} else if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
