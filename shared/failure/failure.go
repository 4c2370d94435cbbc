// Package failure carries errors that map onto an HTTP status and a message
// safe to show to API clients.
package failure

import (
	"errors"
	"net/http"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidCredentials = New(http.StatusUnauthorized, "Credenciales inválidas")
	InactiveAccount    = New(http.StatusForbidden, "Usuario inactivo")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches any failure with the same code and message, so wrapped copies of
// the predefined failures compare equal under errors.Is.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

// BadRequest turns err into a 400 carrying err's message. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// GetCode returns the status carried by err, 500 for anything else.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
