package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"tourcrm/shared/constant"
	"tourcrm/shared/failure"
	"tourcrm/shared/logger"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Message is the envelope of responses that carry no row.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Data is the envelope of single-row responses. Message is set on writes.
type Data[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// List is the envelope of collection responses; Count is the number of rows in Data.
type List[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Count   int  `json:"count"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Success: true, Data: jsonPayload})
}

// WithMessageAndJSON sends a JSON object together with a confirmation message
func WithMessageAndJSON(writer http.ResponseWriter, code int, message string, jsonPayload any) {
	response(writer, code, Data[any]{Success: true, Message: message, Data: jsonPayload})
}

// WithList sends a collection and its size; a nil slice is sent as an empty array
func WithList[T any](writer http.ResponseWriter, code int, items []T) {
	if items == nil {
		items = []T{}
	}

	response(writer, code, List[T]{Success: true, Data: items, Count: len(items)})
}

// WithError sends the message of the failure carried by err, without any
// wrapping context. Anything else is logged and answered with an opaque
// message.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		WithMessage(writer, fail.Code, fail.Message)

		return
	}

	event := log.Error().Err(err)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		event = event.Str("pg_code", string(pqErr.Code)).Str("pg_constraint", pqErr.Constraint)
	}

	event.Msg("unexpected error")

	WithMessage(writer, http.StatusInternalServerError, constant.ResponseErrorInternal)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithNotFoundRoute sends a default response for unknown routes
func WithNotFoundRoute(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusNotFound, constant.ResponseErrorNotFoundRoute)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
