package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gomoto/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("rating must be between 0 and 5"), wantCode: http.StatusBadRequest, wantMsg: "rating must be between 0 and 5"},
		{name: "bad request from error", err: failure.BadRequest(errors.New("malformed body")), wantCode: http.StatusBadRequest, wantMsg: "malformed body"},
		{name: "unauthorized", err: failure.Unauthorized("invalid token"), wantCode: http.StatusUnauthorized, wantMsg: "invalid token"},
		{name: "forbidden", err: failure.Forbidden("not your booking"), wantCode: http.StatusForbidden, wantMsg: "not your booking"},
		{name: "not found", err: failure.NotFound("vehicle not found"), wantCode: http.StatusNotFound, wantMsg: "vehicle not found"},
		{name: "conflict", err: failure.Conflict("booking already closed"), wantCode: http.StatusConflict, wantMsg: "booking already closed"},
		{name: "internal", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError, wantMsg: "boom"},
		{name: "custom", err: failure.New(http.StatusTeapot, "teapot"), wantCode: http.StatusTeapot, wantMsg: "teapot"},
		{name: "predefined forbidden", err: failure.ErrForbidden, wantCode: http.StatusForbidden, wantMsg: "you don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
			assert.True(t, failure.IsFailure(tt.err))
		})
	}
}

func TestNilWrappers(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("database down"), want: http.StatusInternalServerError},
		{name: "nil error", err: nil, want: http.StatusInternalServerError},
		{name: "wrapped failure", err: fmt.Errorf("failed to cancel booking: %w", failure.Conflict("closed")), want: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIsFailure(t *testing.T) {
	assert.False(t, failure.IsFailure(errors.New("raw")))
	assert.True(t, failure.IsFailure(fmt.Errorf("wrap: %w", failure.NotFound("x"))))
}
