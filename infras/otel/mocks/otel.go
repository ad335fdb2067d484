// Package mocks provides a tracer that records nothing, for tests.
package mocks

import (
	"context"

	"gomoto/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (noopOtel) Shutdown(context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return noopOtel{}
}
