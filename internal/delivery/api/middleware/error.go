package middleware

import (
	"log/slog"
	"net/http"

	"interest/internal/delivery/api/response"
	deliverycontext "interest/internal/delivery/context"
	domainerrors "interest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Internal details of 5xx errors never reach the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	// a streamed export may fail after the headers went out
	if c.Response().Committed {
		m.log(c, "Error after response was committed", err)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c, "Request failed", err)
		}
		_ = response.Fail(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeHTTPError(c, httpErr)

		return
	}

	m.log(c, "Unhandled error", err)
	_ = response.Fail(c, domainerrors.ErrInternalError)
}

func (m *ErrorMiddleware) writeHTTPError(c echo.Context, httpErr *echo.HTTPError) {
	switch httpErr.Code {
	case http.StatusNotFound:
		_ = response.Fail(c, domainerrors.ErrNotFound)
	case http.StatusUnauthorized:
		_ = response.Fail(c, domainerrors.ErrUnauthorized)
	case http.StatusForbidden:
		_ = response.Fail(c, domainerrors.ErrForbidden)
	default:
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	}
}

func (m *ErrorMiddleware) log(c echo.Context, msg string, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error(msg,
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	)
}
