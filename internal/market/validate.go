package market

import "strings"

// videoHosts are domains whose results are video content, not offers.
var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com"}

// IsValidItem is the sanity gate every raw provider result must pass before
// it becomes a ProductCandidate. It rejects video-host links, review videos
// masquerading as listings, items without a thumbnail and items without a
// positive price.
func IsValidItem(item RawItem) bool {
	link := strings.ToLower(item.Link + " " + item.Thumbnail)
	for _, host := range videoHosts {
		if strings.Contains(link, host) {
			return false
		}
	}
	title := strings.ToLower(item.Title)
	if strings.Contains(title, "review") && strings.Contains(title, "video") {
		return false
	}
	if item.Thumbnail == "" {
		return false
	}
	return ExtractPrice(item.Price) > 0
}
