package pipeline

import (
	"context"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/rs/zerolog/log"
)

// Fixed scores for visual matches. Visual accuracy is trusted over price
// plausibility, so no price threshold is applied at this stage.
const (
	visualTier       = "Visual Match"
	visualQuality    = 9
	visualConfidence = 95
)

// visualSearch runs reverse-image search on the canonical image and maps the
// provider's visual matches into candidates. Fails soft: provider errors
// yield an empty list and the orchestrator's fallback takes over.
func (p *Pipeline) visualSearch(ctx context.Context, imageURL string) []market.ProductCandidate {
	matches, err := p.search.SearchLens(ctx, imageURL)
	if err != nil {
		log.Warn().Err(err).Msg("visual search failed")
		return nil
	}
	if len(matches) > p.opts.VisualMatchCap {
		matches = matches[:p.opts.VisualMatchCap]
	}

	var out []market.ProductCandidate
	for _, m := range matches {
		item := market.RawItem{
			Title:     m.Title,
			Source:    m.Source,
			Link:      m.Link,
			Thumbnail: m.Thumbnail,
		}
		if m.Price != nil {
			item.Price = m.Price.Value
			if m.Price.ExtractedValue > 0 {
				item.Price = m.Price.ExtractedValue
			}
		}
		if !market.IsValidItem(item) {
			continue
		}
		vendor := m.Source
		if vendor == "" {
			vendor = visualTier
		}
		out = append(out, market.ProductCandidate{
			Tier:            visualTier,
			Vendor:          vendor,
			Price:           market.ExtractPrice(item.Price),
			Currency:        "USD",
			URL:             market.ResolveProductURL(item),
			Image:           m.Thumbnail,
			Description:     m.Title,
			ProbableFlaws:   "None",
			QualityScore:    visualQuality,
			ConfidenceScore: visualConfidence,
		})
	}

	log.Info().Int("matches", len(matches)).Int("valid", len(out)).Msg("visual search done")
	return out
}
