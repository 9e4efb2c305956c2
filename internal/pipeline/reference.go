package pipeline

import (
	"context"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/rs/zerolog/log"
)

// canonicalQuerySuffix biases image search toward clean product shots, which
// perform better in reverse-image search than the user's own photo.
const canonicalQuerySuffix = " white background product photo"

// resolveReference returns the canonical reference image URL, or "" when
// visual search should be skipped. When the user supplied a photo, a clean
// catalog image is looked up for the identified product; otherwise a
// caller-supplied reference link is taken as-is.
func (p *Pipeline) resolveReference(ctx context.Context, productName string, in Input) string {
	if len(in.Image) > 0 {
		results, err := p.search.SearchImages(ctx, market.CleanQuery(productName)+canonicalQuerySuffix, 1)
		if err != nil {
			log.Warn().Err(err).Msg("canonical image lookup failed")
			return ""
		}
		if len(results) == 0 {
			return ""
		}
		return results[0].Thumbnail
	}
	if in.ReferenceURL != "" {
		return in.ReferenceURL
	}
	return ""
}
