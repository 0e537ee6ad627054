package apperr

import "fmt"

type Code int

const (
	BadRequestCode    Code = 400
	NotFoundCode      Code = 404
	InternalErrorCode Code = 500
)

// Error carries a client-attributable error code together with the message
// that is returned to the caller as-is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func BadRequest(message string) *Error {
	return New(BadRequestCode, message)
}

func NotFound(message string) *Error {
	return New(NotFoundCode, message)
}
