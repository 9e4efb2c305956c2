package serpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shoppingJSON = `{
  "shopping_results": [
    {
      "position": 1,
      "title": "Acme Drone X200",
      "link": "https://shop.example/drone",
      "product_link": "https://www.google.com/shopping/product/1",
      "source": "DroneDepot",
      "thumbnail": "https://img.example/drone.jpg",
      "price": "$199.00",
      "extracted_price": 199.0,
      "rating": 4.5,
      "reviews": 120,
      "second_hand_condition": "refurbished"
    },
    {
      "position": 2,
      "title": "Acme Drone X200 Clone",
      "source": "BudgetFly",
      "thumbnail": "https://img.example/clone.jpg",
      "price": "$89.99",
      "extracted_price": 89.99
    }
  ]
}`

const lensJSON = `{
  "visual_matches": [
    {
      "position": 1,
      "title": "Acme Drone X200 Quadcopter",
      "link": "https://shop.example/drone",
      "source": "DroneDepot",
      "thumbnail": "https://img.example/drone.jpg",
      "image": "https://img.example/drone_full.jpg",
      "price": {"value": "$189*", "extracted_value": 189.0, "currency": "$"}
    }
  ]
}`

const imagesJSON = `{
  "images_results": [
    {
      "position": 1,
      "title": "Acme Drone X200 product photo",
      "link": "https://catalog.example/drone",
      "original": "https://catalog.example/drone_large.jpg",
      "thumbnail": "https://catalog.example/drone_thumb.jpg",
      "source": "catalog.example"
    }
  ]
}`

func newTestServer(t *testing.T, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	var captured http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts, &captured
}

func TestSearchShopping(t *testing.T) {
	ts, req := newTestServer(t, shoppingJSON)
	client := NewClient(ClientOpts{BaseURL: ts.URL, APIKey: "key123"})

	results, err := client.SearchShopping(context.Background(), "acme drone x200", 60)
	require.NoError(t, err)

	assert.Equal(t, "/search.json", req.URL.Path)
	q := req.URL.Query()
	assert.Equal(t, "google_shopping", q.Get("engine"))
	assert.Equal(t, "acme drone x200", q.Get("q"))
	assert.Equal(t, "60", q.Get("num"))
	assert.Equal(t, "price_low", q.Get("sort"))
	assert.Equal(t, "key123", q.Get("api_key"))

	require.Len(t, results, 2)
	assert.Equal(t, "Acme Drone X200", results[0].Title)
	assert.Equal(t, 199.0, results[0].ExtractedPrice)
	assert.Equal(t, "refurbished", results[0].SecondHandCondition)
	assert.Equal(t, 4.5, results[0].Rating)
	assert.Equal(t, "BudgetFly", results[1].Source)
}

func TestSearchLens(t *testing.T) {
	ts, req := newTestServer(t, lensJSON)
	client := NewClient(ClientOpts{BaseURL: ts.URL, APIKey: "key123"})

	matches, err := client.SearchLens(context.Background(), "https://img.example/ref.jpg")
	require.NoError(t, err)

	q := req.URL.Query()
	assert.Equal(t, "google_lens", q.Get("engine"))
	assert.Equal(t, "https://img.example/ref.jpg", q.Get("url"))
	assert.Equal(t, "en", q.Get("hl"))
	assert.Equal(t, "us", q.Get("country"))

	require.Len(t, matches, 1)
	assert.Equal(t, "Acme Drone X200 Quadcopter", matches[0].Title)
	require.NotNil(t, matches[0].Price)
	assert.Equal(t, "$189*", matches[0].Price.Value)
	assert.Equal(t, 189.0, matches[0].Price.ExtractedValue)
}

func TestSearchImages(t *testing.T) {
	ts, req := newTestServer(t, imagesJSON)
	client := NewClient(ClientOpts{BaseURL: ts.URL, APIKey: "key123"})

	results, err := client.SearchImages(context.Background(), "acme drone white background product photo", 1)
	require.NoError(t, err)

	q := req.URL.Query()
	assert.Equal(t, "google_images", q.Get("engine"))
	assert.Equal(t, "1", q.Get("num"))
	assert.Equal(t, "active", q.Get("safe"))

	require.Len(t, results, 1)
	assert.Equal(t, "https://catalog.example/drone_thumb.jpg", results[0].Thumbnail)
}

func TestAPIErrorField(t *testing.T) {
	ts, _ := newTestServer(t, `{"error": "Invalid API key"}`)
	client := NewClient(ClientOpts{BaseURL: ts.URL, APIKey: "bad"})

	_, err := client.SearchShopping(context.Background(), "mug", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	client := NewClient(ClientOpts{BaseURL: ts.URL, APIKey: "key123"})

	_, err := client.SearchLens(context.Background(), "https://img.example/ref.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 500")
}
