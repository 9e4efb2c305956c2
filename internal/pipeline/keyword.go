package pipeline

import (
	"context"
	"math"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/rs/zerolog/log"
)

const (
	keywordTier       = "Market Option"
	keywordConfidence = 80
	defaultQuality    = 8
	defaultVendor     = "Global Marketplace"
)

// keywordSearch runs a keyword shopping query on the product name and maps
// the hits into candidates. Like visualSearch it fails soft on provider
// errors.
func (p *Pipeline) keywordSearch(ctx context.Context, productName string) []market.ProductCandidate {
	results, err := p.search.SearchShopping(ctx, market.CleanQuery(productName), p.opts.KeywordResultCap)
	if err != nil {
		log.Warn().Err(err).Msg("keyword search failed")
		return nil
	}

	var out []market.ProductCandidate
	for _, r := range results {
		item := market.RawItem{
			Title:       r.Title,
			Source:      r.Source,
			Link:        r.Link,
			ProductLink: r.ProductLink,
			Thumbnail:   r.Thumbnail,
			Price:       r.Price,
		}
		if r.ExtractedPrice > 0 {
			item.Price = r.ExtractedPrice
		}
		if !market.IsValidItem(item) {
			continue
		}
		vendor := r.Source
		if vendor == "" {
			vendor = defaultVendor
		}
		flaws := r.SecondHandCondition
		if flaws == "" {
			flaws = "New"
		}
		quality := defaultQuality
		if r.Rating > 0 {
			quality = int(math.Round(r.Rating * 2))
		}
		out = append(out, market.ProductCandidate{
			Tier:            keywordTier,
			Vendor:          vendor,
			Price:           market.ExtractPrice(item.Price),
			Currency:        "USD",
			URL:             market.ResolveProductURL(item),
			Image:           r.Thumbnail,
			Description:     r.Title,
			ProbableFlaws:   flaws,
			QualityScore:    quality,
			ConfidenceScore: keywordConfidence,
		})
	}

	log.Info().Int("results", len(results)).Int("valid", len(out)).Msg("keyword search done")
	return out
}
