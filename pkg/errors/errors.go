package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain error kinds. Extraction misses are not errors at all (they degrade
// to empty strings); these cover the cases where a run genuinely cannot
// proceed.
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrNotFound        = errors.New("not found")
	ErrExternalService = errors.New("external service failure")
)

// EmptyInput reports a missing required field.
func EmptyInput(field string) error {
	return fmt.Errorf("%s: %w", field, ErrEmptyInput)
}

// External wraps a failure from a collaborator (LLM API, Discord, network).
func External(service string, err error) error {
	return fmt.Errorf("%s: %w: %w", service, ErrExternalService, err)
}

// NotFound reports a missing resource such as the bot's resume file.
func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

type ApiError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

var (
	ErrBadRequest       = func(detail string) *ApiError { return New(http.StatusBadRequest, "Bad Request", detail) }
	ErrMethodNotAllowed = func(detail string) *ApiError { return New(http.StatusMethodNotAllowed, "Method Not Allowed", detail) }
	ErrInternalServer   = func(detail string) *ApiError {
		return New(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	ErrBadGateway = func(detail string) *ApiError { return New(http.StatusBadGateway, "Upstream Service Failed", detail) }
)

func New(code int, message, detail string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

// FromError maps domain error kinds onto HTTP status codes: empty input is
// the caller's fault, collaborator failures are a bad gateway, everything
// else is a 500.
func FromError(err error) *ApiError {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return ErrBadRequest(err.Error())
	case errors.Is(err, ErrExternalService):
		return ErrBadGateway(err.Error())
	case errors.Is(err, ErrNotFound):
		return New(http.StatusNotFound, "Not Found", err.Error())
	default:
		return ErrInternalServer(err.Error())
	}
}

func (e *ApiError) WithRequestID(requestID string) *ApiError {
	e.RequestID = requestID
	return e
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.Code
}
