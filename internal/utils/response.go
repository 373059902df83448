package utils

import (
	"net/http"

	apperrors "life-go/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the body of every error response
type ErrorBody struct {
	Detail string            `json:"detail"`
	Code   string            `json:"code,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// SuccessResponse writes data with 200
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse writes an error body
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Detail: message})
}

// BadRequest writes 400
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

// ValidationFailed writes 400 with field-level detail
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Detail: "Invalid input.",
		Code:   "VALIDATION",
		Errors: fields,
	})
}

// Unauthorized writes 401
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

// Forbidden writes 403
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message)
}

// NotFound writes 404
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusTooManyRequests, message)
}

// InternalError writes 500
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// HandleError maps a service error to its response and records it on the context for the logger.
// Internal details are never written to the client.
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	appErr, ok := apperrors.As(err)
	if !ok {
		InternalError(c, "Internal server error")
		return
	}

	status := appErr.HTTPStatus()
	if status == http.StatusInternalServerError {
		InternalError(c, appErr.Message)
		return
	}

	c.JSON(status, ErrorBody{
		Detail: appErr.Message,
		Code:   appErr.Code,
		Errors: appErr.Fields,
	})
}
