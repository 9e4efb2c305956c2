package serpapi

import (
	"context"
	"strconv"
)

// ShoppingResponse is the google_shopping engine response.
type ShoppingResponse struct {
	Error           string           `json:"error"`
	ShoppingResults []ShoppingResult `json:"shopping_results"`
}

// ShoppingResult is a single keyword shopping hit.
type ShoppingResult struct {
	Position            int     `json:"position"`
	Title               string  `json:"title"`
	Link                string  `json:"link"`
	ProductLink         string  `json:"product_link"`
	Source              string  `json:"source"`
	Thumbnail           string  `json:"thumbnail"`
	Price               string  `json:"price"` // display text, e.g. "$139.00"
	ExtractedPrice      float64 `json:"extracted_price"`
	Rating              float64 `json:"rating"`
	Reviews             int     `json:"reviews"`
	SecondHandCondition string  `json:"second_hand_condition"`
}

// SearchShopping runs a keyword shopping query sorted ascending by price,
// capped server-side to num results.
func (c *Client) SearchShopping(ctx context.Context, query string, num int) ([]ShoppingResult, error) {
	result := &ShoppingResponse{}
	_, err := handleError(c.req(ctx, result).
		SetQueryParams(map[string]string{
			"engine":        "google_shopping",
			"q":             query,
			"google_domain": "google.com",
			"gl":            "us",
			"hl":            "en",
			"num":           strconv.Itoa(num),
			"sort":          "price_low",
		}).
		Get("/search.json"))
	if err != nil {
		return nil, err
	}

	return result.ShoppingResults, apiError(result.Error)
}
