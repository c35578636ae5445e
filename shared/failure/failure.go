package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var InvalidDateParam = &Failure{Code: http.StatusBadRequest, Message: "date must be formatted as YYYY-MM-DD"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// PreconditionViolation marks a wizard transition attempted without the fields
// of the earlier steps. Callers are expected to prevent it.
func PreconditionViolation(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// PaymentFailed returns a retryable payment failure.
func PaymentFailed(message string) error {
	return &Failure{
		Code:    http.StatusPaymentRequired,
		Message: message,
	}
}

// Unavailable returns a new Failure for a disabled capability.
func Unavailable(message string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries a Failure with the given code.
func Is(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
