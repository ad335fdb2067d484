package response

import (
	"encoding/json"
	"net/http"

	"gomoto/shared/constant"
	"gomoto/shared/failure"
	"gomoto/shared/logger"
)

// Envelope wraps every payload written by the API.
type Envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Data       *T     `json:"data,omitempty"`
}

// Message is the envelope of responses without data, used by swagger docs.
type Message = Envelope[struct{}]

// WithMessage sends an envelope carrying only a message.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Envelope[any]{StatusCode: code, Success: isSuccess(code), Message: message})
}

// WithJSON sends an envelope carrying payload as data.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	WithData(writer, code, constant.Empty, payload)
}

func WithData(writer http.ResponseWriter, code int, message string, payload any) {
	write(writer, code, Envelope[any]{StatusCode: code, Success: isSuccess(code), Message: message, Data: &payload})
}

// WithError answers with the status carried by err. Errors that are not a
// failure.Failure are logged and hidden behind a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := constant.ResponseErrorInternal

	if failure.IsFailure(err) {
		message = err.Error()
	} else {
		logger.ErrorWithStack(err)
	}

	WithMessage(writer, code, message)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
