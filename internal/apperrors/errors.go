package apperrors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorType classifies application errors for logging and HTTP mapping
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeRateLimit    ErrorType = "rate_limit"
	ErrorTypeDatabase     ErrorType = "database"
	ErrorTypeExternal     ErrorType = "external_api"
	ErrorTypeInternal     ErrorType = "internal"
)

// AppError carries a type, a client-safe message and the internal cause
type AppError struct {
	Type     ErrorType
	Message  string
	Internal error
	Context  map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type && e.Message == t.Message
	}
	return errors.Is(e.Internal, target)
}

// WithContext attaches a structured field for logging
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// LogFields returns structured logging fields
func (e *AppError) LogFields() []interface{} {
	fields := []interface{}{
		"error_type", e.Type,
		"error_message", e.Message,
	}
	if e.Internal != nil {
		fields = append(fields, "internal_error", e.Internal.Error())
	}
	for k, v := range e.Context {
		fields = append(fields, k, v)
	}
	return fields
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{Type: errorType, Message: message}
}

func Wrap(err error, errorType ErrorType, message string) *AppError {
	return &AppError{Type: errorType, Message: message, Internal: err}
}

// HTTPStatus maps an error to the status code the API contract promises:
// 400 validation, 401 unauthorized, 404 not found, 429 rate limited,
// 500 everything else. Non-AppErrors are treated as internal.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to expose to the client. Database,
// external and internal failures collapse to a generic message; the detail
// stays in the logs.
func ClientMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "Internal server error"
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeUnauthorized, ErrorTypeNotFound, ErrorTypeRateLimit:
		return appErr.Message
	default:
		return "Internal server error"
	}
}

// Handler logs errors according to their type
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		h.logger.ErrorContext(ctx, "Unhandled error", "error", err.Error())
		return
	}
	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeUnauthorized, ErrorTypeNotFound, ErrorTypeRateLimit:
		h.logger.WarnContext(ctx, "Request rejected", appErr.LogFields()...)
	default:
		h.logger.ErrorContext(ctx, "Request failed", appErr.LogFields()...)
	}
}

// Predefined errors
var (
	ErrUnauthorized      = New(ErrorTypeUnauthorized, "Unauthorized")
	ErrHabitNotFound     = New(ErrorTypeNotFound, "Habit not found")
	ErrUserNotFound      = New(ErrorTypeNotFound, "User not found")
	ErrRateLimitExceeded = New(ErrorTypeRateLimit, "Too many requests")
)

// Convenience constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewDatabaseError(err error) *AppError {
	return Wrap(err, ErrorTypeDatabase, "Database operation failed")
}

func NewExternalAPIError(err error, api string) *AppError {
	return Wrap(err, ErrorTypeExternal, fmt.Sprintf("%s API error", api)).
		WithContext("api", api)
}

func NewInternalError(err error) *AppError {
	return Wrap(err, ErrorTypeInternal, "Internal server error")
}
