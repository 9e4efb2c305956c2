package serpapi

import (
	"context"
	"strconv"
)

// ImagesResponse is the google_images engine response.
type ImagesResponse struct {
	Error         string        `json:"error"`
	ImagesResults []ImageResult `json:"images_results"`
}

// ImageResult is a single image search hit.
type ImageResult struct {
	Position  int    `json:"position"`
	Title     string `json:"title"`
	Link      string `json:"link"`
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Source    string `json:"source"`
}

// SearchImages runs a google_images query. The pipeline uses it to find a
// clean canonical product photo to drive reverse-image search.
func (c *Client) SearchImages(ctx context.Context, query string, num int) ([]ImageResult, error) {
	result := &ImagesResponse{}
	_, err := handleError(c.req(ctx, result).
		SetQueryParams(map[string]string{
			"engine": "google_images",
			"q":      query,
			"num":    strconv.Itoa(num),
			"safe":   "active",
		}).
		Get("/search.json"))
	if err != nil {
		return nil, err
	}

	return result.ImagesResults, apiError(result.Error)
}
