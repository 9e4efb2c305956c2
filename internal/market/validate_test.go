package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidItem(t *testing.T) {
	valid := RawItem{
		Title:     "Acme Drone X200",
		Link:      "https://shop.example/drone",
		Thumbnail: "https://img.example/drone.jpg",
		Price:     "$199.99",
	}

	tests := []struct {
		name string
		item RawItem
		want bool
	}{
		{"well-formed item", valid, true},
		{"numeric price", RawItem{Title: "Mug", Thumbnail: "https://img.example/m.jpg", Price: 12.0}, true},
		{
			"youtube link",
			RawItem{Title: "Drone", Link: "https://www.youtube.com/watch?v=x", Thumbnail: "https://img.example/d.jpg", Price: "$10"},
			false,
		},
		{
			"youtu.be link",
			RawItem{Title: "Drone", Link: "https://youtu.be/x", Thumbnail: "https://img.example/d.jpg", Price: "$10"},
			false,
		},
		{
			"vimeo thumbnail",
			RawItem{Title: "Drone", Link: "https://shop.example/d", Thumbnail: "https://i.vimeo.com/d.jpg", Price: "$10"},
			false,
		},
		{
			"review video title",
			RawItem{Title: "Acme Drone X200 Review Video", Link: "https://shop.example/d", Thumbnail: "https://img.example/d.jpg", Price: "$10"},
			false,
		},
		{
			"review without video is fine",
			RawItem{Title: "Acme Drone X200 best reviewed", Link: "https://shop.example/d", Thumbnail: "https://img.example/d.jpg", Price: "$10"},
			true,
		},
		{"missing thumbnail", RawItem{Title: "Drone", Link: "https://shop.example/d", Price: "$10"}, false},
		{"zero price", RawItem{Title: "Drone", Thumbnail: "https://img.example/d.jpg", Price: 0}, false},
		{"nil price", RawItem{Title: "Drone", Thumbnail: "https://img.example/d.jpg"}, false},
		{"unparsable price", RawItem{Title: "Drone", Thumbnail: "https://img.example/d.jpg", Price: "call us"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidItem(tt.item))
		})
	}
}
