package market

import "net/url"

const (
	shoppingSearchURL = "https://www.google.com/search?tbm=shop&q="
	fallbackURL       = "https://google.com/shopping"
)

// ResolveProductURL picks the best available link for a raw item, first match
// wins: direct link, product page link, related content link, a synthesized
// shopping search for the title, then a constant fallback. Never returns "".
func ResolveProductURL(item RawItem) string {
	if item.Link != "" {
		return item.Link
	}
	if item.ProductLink != "" {
		return item.ProductLink
	}
	if item.RelatedContentLink != "" {
		return item.RelatedContentLink
	}
	if item.Title != "" {
		return shoppingSearchURL + url.QueryEscape(item.Title)
	}
	return fallbackURL
}
