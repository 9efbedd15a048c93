package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
)

// WebRestResult is the uniform JSON envelope.
type WebRestResult struct {
	Code    int         `json:"code"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// WebPagedResult wraps a paginated listing.
type WebPagedResult struct {
	Code     int         `json:"code"`
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Ok renders a success envelope.
func Ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, WebRestResult{Code: 0, Data: data})
}

// OkMessage renders a success envelope with a human-readable message.
func OkMessage(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, WebRestResult{Code: 0, Message: message, Data: data})
}

// Fail renders a failure envelope. detail is logged, never returned.
func Fail(c echo.Context, status int, code, message string, detail interface{}) error {
	if detail != nil {
		zap.L().Warn("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.String("code", code),
			zap.Any("detail", detail))
	}
	return c.JSON(status, WebRestResult{Code: 1, Error: code, Message: message})
}

// Paged renders a paginated success envelope.
func Paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, WebPagedResult{Code: 0, Data: data, Total: total, Page: page, PageSize: pageSize})
}

// FailFromError maps service sentinels onto the failure envelope.
// Unrecognized errors are storage failures: logged with their cause
// and surfaced as a generic DATABASE_ERROR.
func FailFromError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, shop.ErrNotFound):
		return Fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	case errors.Is(err, shop.ErrInsufficientStock):
		return Fail(c, http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock available", nil)
	case errors.Is(err, shop.ErrInvalidInput):
		return Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	case errors.Is(err, shop.ErrBadCredentials):
		return Fail(c, http.StatusUnauthorized, "BAD_CREDENTIALS", "Invalid email or password", nil)
	case errors.Is(err, shop.ErrDuplicate):
		return Fail(c, http.StatusConflict, "DUPLICATE", "Record already exists", nil)
	default:
		zap.L().Error("request failed",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
		return Fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Request failed, please retry later", nil)
	}
}
