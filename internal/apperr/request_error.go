package apperr

import "net/http"

// RequestError is the single error shape services return for business-rule
// failures. The central error handler responds with exactly this status and
// message.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func New(status int, message string) *RequestError {
	return &RequestError{Status: status, Message: message}
}

func BadRequest(message string) *RequestError {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *RequestError {
	return New(http.StatusUnauthorized, message)
}

func PaymentRequired(message string) *RequestError {
	return New(http.StatusPaymentRequired, message)
}

func Forbidden(message string) *RequestError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *RequestError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *RequestError {
	return New(http.StatusConflict, message)
}
