package otel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  attribute.KeyValue
	}{
		{name: "bool", value: true, want: attribute.Bool("k", true)},
		{name: "string", value: "booking", want: attribute.String("k", "booking")},
		{name: "int", value: 3, want: attribute.Int("k", 3)},
		{name: "int64", value: int64(7), want: attribute.Int64("k", 7)},
		{name: "float", value: 3300.5, want: attribute.Float64("k", 3300.5)},
		{name: "strings", value: []string{"admin", "user"}, want: attribute.StringSlice("k", []string{"admin", "user"})},
		{name: "fallback", value: struct{ ID int }{ID: 1}, want: attribute.String("k", "{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toAttribute("k", tt.value))
		})
	}
}
