package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "itda/internal/errors"
)

// fail converts a domain error into an echo HTTP error. Server errors are
// logged with their cause; the cause is only echoed back in debug mode.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	body := httpErr.ToErrorResponse()

	if httpErr.StatusCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"route", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		if c.Echo().Debug {
			body.Detail = err.Error()
		}
	}
	return echo.NewHTTPError(httpErr.StatusCode, body)
}

// invalidBody is returned when a request body cannot be decoded.
func invalidBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Message: "invalid request body",
		Code:    "INVALID_BODY",
		Detail:  bindDetail(err),
	})
}

func bindDetail(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return ""
}
