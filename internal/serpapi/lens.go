package serpapi

import "context"

// LensResponse is the google_lens (reverse-image search) engine response.
type LensResponse struct {
	Error         string        `json:"error"`
	VisualMatches []VisualMatch `json:"visual_matches"`
}

// VisualMatch is a single reverse-image search hit.
type VisualMatch struct {
	Position  int        `json:"position"`
	Title     string     `json:"title"`
	Link      string     `json:"link"`
	Source    string     `json:"source"`
	Thumbnail string     `json:"thumbnail"`
	Image     string     `json:"image"`
	Price     *LensPrice `json:"price,omitempty"`
}

// LensPrice is the price attached to a visual match when the provider found
// one on the linked page.
type LensPrice struct {
	Value          string  `json:"value"` // display text, e.g. "$129*"
	ExtractedValue float64 `json:"extracted_value"`
	Currency       string  `json:"currency"`
}

// SearchLens runs a reverse-image search on the given image URL.
func (c *Client) SearchLens(ctx context.Context, imageURL string) ([]VisualMatch, error) {
	result := &LensResponse{}
	_, err := handleError(c.req(ctx, result).
		SetQueryParams(map[string]string{
			"engine":  "google_lens",
			"url":     imageURL,
			"hl":      "en",
			"country": "us",
		}).
		Get("/search.json"))
	if err != nil {
		return nil, err
	}

	return result.VisualMatches, apiError(result.Error)
}
