// Package response writes the JSON envelopes of the API.
package response

import (
	"net/http"

	deliverycontext "interest/internal/delivery/context"
	domainerrors "interest/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data       any       `json:"data"`
	Pagination *PageInfo `json:"pagination,omitempty"`
	Meta       *MetaInfo `json:"meta"`
}

// PageInfo describes one page of a list response.
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details is only sent for 4xx errors other than 401 and 403
	Details any `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Paginated returns one page of a list with its page metadata.
func Paginated(c echo.Context, data any, page *PageInfo) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:       data,
		Pagination: page,
		Meta:       meta(c),
	})
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// Fail writes appErr with its own status, code and message.
func Fail(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
}

// FailWithMessage keeps the status and code of appErr but replaces its message.
func FailWithMessage(c echo.Context, appErr domainerrors.AppError, message string) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message, nil)
}

// HandleAppError writes domain errors directly and hands anything else to the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Fail(c, appErr)
	}

	return errors.WithStack(err)
}
