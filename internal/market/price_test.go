package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float passes through", 42.5, 42.5},
		{"int passes through", 42, 42},
		{"dollar text with thousands separator", "$1,249.99", 1249.99},
		{"plain number text", "19.90", 19.9},
		{"currency prefix", "USD 15.50", 15.5},
		{"price with asterisk", "$129*", 129},
		{"no digits", "free shipping", 0},
		{"empty string", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPrice(tt.in))
		})
	}
}
