package response

import (
	"net/http"

	deliverycontext "identity/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the unified envelope for every failed request.
type ErrorResponse struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code      string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details   string `json:"details,omitempty"` // Only rendered for client errors
	RequestID string `json:"requestId,omitempty"`
}

// CreatedResponse is returned by account creation.
type CreatedResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Token      string `json:"token"`
}

// UpdatedResponse reports whether an update matched and modified an account.
type UpdatedResponse struct {
	Matched    bool `json:"matched"`
	Modified   bool `json:"modified"`
	StatusCode int  `json:"statusCode"`
}

// DeletedResponse reports how many accounts a removal deleted.
type DeletedResponse struct {
	Deleted    int64 `json:"deleted"`
	StatusCode int   `json:"statusCode"`
}

// Created responds 201 with the created resource.
func Created(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, CreatedResponse{Message: message, Data: data})
}

// Token responds 200 with a freshly signed token.
func Token(c echo.Context, token, message string) error {
	return c.JSON(http.StatusOK, TokenResponse{StatusCode: http.StatusOK, Message: message, Token: token})
}

// Updated responds 200 with the update outcome.
func Updated(c echo.Context, matched, modified bool) error {
	return c.JSON(http.StatusOK, UpdatedResponse{Matched: matched, Modified: modified, StatusCode: http.StatusOK})
}

// Deleted responds 200 with the removal outcome.
func Deleted(c echo.Context, deleted int64) error {
	return c.JSON(http.StatusOK, DeletedResponse{Deleted: deleted, StatusCode: http.StatusOK})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	// Server and authentication failures never carry details.
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:      errorCode,
			Details:   details,
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
