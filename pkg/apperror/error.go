package apperror

import "net/http"

// Stable machine-readable error codes returned to clients alongside the
// HTTP status. Frontends key off these, not the human message.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeRateLimit    = "RATE_LIMITED"
	CodeDuplicate    = "DUPLICATE_SUBMISSION"
	CodeDelivery     = "DELIVERY_FAILED"
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// FieldError is a single validation failure tagged with the offending field
// so the client can highlight it.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code       int          `json:"code"`
	ErrCode    string       `json:"errCode"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"fields,omitempty"`
	RetryAfter int          `json:"retryAfter,omitempty"` // seconds
	Err        error        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, errCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		ErrCode: errCode,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, CodeValidation, message, nil)
}

// Validation builds a 400 carrying every failing field.
func Validation(fields []FieldError) *AppError {
	e := New(http.StatusBadRequest, CodeValidation, "Validation failed", nil)
	e.Fields = fields
	return e
}

// RateLimited builds a 429 with the seconds the client must wait.
func RateLimited(retryAfter int) *AppError {
	e := New(http.StatusTooManyRequests, CodeRateLimit, "Rate limit exceeded. Please try again later.", nil)
	e.RetryAfter = retryAfter
	return e
}

func Duplicate() *AppError {
	return New(http.StatusTooManyRequests, CodeDuplicate, "This message was already received. Please wait before sending it again.", nil)
}

func Delivery(err error) *AppError {
	return New(http.StatusInternalServerError, CodeDelivery, "Failed to deliver message. Please try again later.", err)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, CodeInternal, "Internal Server Error", err)
}
