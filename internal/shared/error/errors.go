package error

import (
	"errors"
	"net/http"
)

type DomainError interface {
	error // Embed standard error interface
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// messageError overrides the client message of the sentinel it wraps.
type messageError struct {
	sentinel DomainError
	message  string
}

func (e *messageError) Error() string {
	return e.sentinel.Info() + ": " + e.message
}

func (e *messageError) Unwrap() error {
	return e.sentinel
}

// ErrorResponse is the JSON response structure for errors
type ErrorResponse struct {
	Status  int               `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"` // client message
	Fields  map[string]string `json:"fields,omitempty"`
}

// Common errors
var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed indicates the request payload failed validation
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001", // METHOD_ARGUMENT_NOT_VALID
		Message: "Please check the highlighted fields and try again.",
	}

	// InvalidRequest indicates the request format is invalid (e.g., JSON parsing error)
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002", // INVALID_REQUEST
		Message: "The request could not be read.",
	}

	// InternalServerError indicates an unexpected server error
	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003", // INTERNAL_SERVER_ERROR
		Message: "An unexpected error occurred. Please try again in a few moments. If the problem persists, contact support.",
	}
)

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// WithMessage wraps a sentinel with a request-specific client message.
// The wrapped error still resolves to the sentinel's status and code.
func WithMessage(sentinel DomainError, message string) error {
	return &messageError{sentinel: sentinel, message: message}
}

// RegisterDomainErrorResponse registers a mapping between a domain error errInfo and a shared error response.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError converts a domain error into a shared error response if a mapping exists.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if !errors.As(err, &domainErr) {
		return ErrorResponse{}, false
	}

	resp, ok := domainErrorResponses[domainErr.Info()]
	if !ok {
		return ErrorResponse{}, false
	}

	var msgErr *messageError
	if errors.As(err, &msgErr) {
		resp.Message = msgErr.message
	}

	var fieldErr interface{ FieldMessages() map[string]string }
	if errors.As(err, &fieldErr) {
		resp.Fields = fieldErr.FieldMessages()
	}

	return resp, true
}

// Message returns the client message err resolves to, or the generic internal error message.
func Message(err error) string {
	if resp, ok := ResolveDomainError(err); ok {
		return resp.Message
	}
	return InternalServerError.Message
}

// FieldsError carries per-field client messages for inline display.
type FieldsError struct {
	sentinel DomainError
	fields   map[string]string
}

// NewFieldsError wraps a sentinel with field messages keyed by JSON field name.
func NewFieldsError(sentinel DomainError, fields map[string]string) *FieldsError {
	return &FieldsError{sentinel: sentinel, fields: fields}
}

func (e *FieldsError) Error() string {
	return e.sentinel.Info()
}

func (e *FieldsError) Unwrap() error {
	return e.sentinel
}

// FieldMessages returns the field messages.
func (e *FieldsError) FieldMessages() map[string]string {
	return e.fields
}

// Field returns the message for one field, if any.
func (e *FieldsError) Field(name string) (string, bool) {
	msg, ok := e.fields[name]
	return msg, ok
}
