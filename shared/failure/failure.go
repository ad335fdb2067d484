package failure

import (
	"errors"
	"net/http"
)

// Failure is a domain error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ErrForbidden      = &Failure{Code: http.StatusForbidden, Message: "you don't have the required permissions"}
	ErrTooManyRequest = &Failure{Code: http.StatusTooManyRequests, Message: "request limit exceeded"}
)

func (e *Failure) Error() string {
	return e.Message
}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// InternalError wraps err as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusInternalServerError, err.Error())
}

// GetCode returns the status carried by err, or 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsFailure reports whether err is safe to show to the client as is.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
