package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrorType classifies application errors
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypePrecondition ErrorType = "precondition"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeDatabase     ErrorType = "database"
	ErrorTypeInternal     ErrorType = "internal"
)

// AppError is an error with a type, a stable code and optional field-level detail
type AppError struct {
	Type     ErrorType
	Code     string
	Message  string
	Fields   map[string]string
	Internal error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error
func (e *AppError) Unwrap() error {
	return e.Internal
}

// Is matches on type and code
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithField attaches a field-level message
func (e *AppError) WithField(field, message string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// HTTPStatus maps the error type to a response status
func (e *AppError) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation, ErrorTypePrecondition:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// LogFields returns structured logging fields
func (e *AppError) LogFields() logrus.Fields {
	fields := logrus.Fields{
		"error_type":    e.Type,
		"error_code":    e.Code,
		"error_message": e.Message,
	}
	if e.Internal != nil {
		fields["internal_error"] = e.Internal.Error()
	}
	for k, v := range e.Fields {
		fields["field_"+k] = v
	}
	return fields
}

// New creates a new AppError
func New(errorType ErrorType, code, message string) *AppError {
	return &AppError{Type: errorType, Code: code, Message: message}
}

// Wrap wraps an existing error into an AppError
func Wrap(err error, errorType ErrorType, code, message string) *AppError {
	return &AppError{Type: errorType, Code: code, Message: message, Internal: err}
}

// As extracts an *AppError from err
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Sentinels for errors.Is checks
var (
	ErrUserNotFound       = New(ErrorTypeNotFound, "USER_NOT_FOUND", "User not found")
	ErrActivityNotFound   = New(ErrorTypeNotFound, "ACTIVITY_NOT_FOUND", "Activity not found")
	ErrLevel1Missing      = New(ErrorTypePrecondition, "LEVEL1_MISSING", "Level1 result not found. Submit Category1 inputs first.")
	ErrDuplicateName      = New(ErrorTypeValidation, "DUPLICATE_NAME", "An activity with this name already exists")
	ErrInvalidCredentials = New(ErrorTypeUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
)

func NewUserNotFound(userID uint) *AppError {
	return New(ErrorTypeNotFound, ErrUserNotFound.Code, fmt.Sprintf("User %d not found", userID))
}

func NewActivityNotFound(activityID uint) *AppError {
	return New(ErrorTypeNotFound, ErrActivityNotFound.Code, fmt.Sprintf("Activity %d not found", activityID))
}

func NewLevel1Missing() *AppError {
	return New(ErrorTypePrecondition, ErrLevel1Missing.Code, ErrLevel1Missing.Message)
}

func NewDuplicateName(name string) *AppError {
	return New(ErrorTypeValidation, ErrDuplicateName.Code, fmt.Sprintf("An activity named %q already exists", name)).
		WithField("name", "must be unique per user")
}

// NewFieldError reports one invalid request field
func NewFieldError(field, message string) *AppError {
	return New(ErrorTypeValidation, "VALIDATION", "Invalid input.").WithField(field, message)
}

func NewDatabaseError(err error) *AppError {
	return Wrap(err, ErrorTypeDatabase, "DB_ERROR", "Database operation failed")
}

func NewInternalError(err error) *AppError {
	return Wrap(err, ErrorTypeInternal, "INTERNAL", "Internal server error")
}
