package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndices(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"plain array", "[0, 2, 5]", []int{0, 2, 5}, false},
		{"empty array", "[]", []int{}, false},
		{"fenced json", "```json\n[1, 3]\n```", []int{1, 3}, false},
		{"bare fence", "```\n[4]\n```", []int{4}, false},
		{"surrounding whitespace", "  [7]\n", []int{7}, false},
		{"free text", "I think items 0 and 2 match.", nil, true},
		{"json object", `{"indices": [0]}`, nil, true},
		{"empty response", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIndices(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "")
	require.Error(t, err)
}
