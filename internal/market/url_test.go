package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveProductURL(t *testing.T) {
	tests := []struct {
		name string
		item RawItem
		want string
	}{
		{
			"direct link wins",
			RawItem{Link: "https://shop.example/a", ProductLink: "https://shop.example/b", Title: "Red Mug"},
			"https://shop.example/a",
		},
		{
			"product link second",
			RawItem{ProductLink: "https://shop.example/b", RelatedContentLink: "https://shop.example/c"},
			"https://shop.example/b",
		},
		{
			"related content third",
			RawItem{RelatedContentLink: "https://shop.example/c"},
			"https://shop.example/c",
		},
		{
			"title synthesizes a shopping search",
			RawItem{Title: "Red Mug"},
			"https://www.google.com/search?tbm=shop&q=Red+Mug",
		},
		{
			"fallback constant",
			RawItem{},
			"https://google.com/shopping",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveProductURL(tt.item))
		})
	}
}
