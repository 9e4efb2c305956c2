package pipeline

import (
	"context"
	"fmt"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/rs/zerolog/log"
)

// verify narrows the candidate list to the indices the model selected. The
// model is a soft oracle, not an authority: a failed call, an unparsable
// response, an empty selection or an out-of-range index all keep the
// original list unchanged, so the caller always has a sane list.
func (p *Pipeline) verify(ctx context.Context, productName string, candidates []market.ProductCandidate) []market.ProductCandidate {
	listed := candidates
	if len(listed) > p.opts.VerifyCap {
		listed = listed[:p.opts.VerifyCap]
	}

	lines := make([]string, len(listed))
	for i, c := range listed {
		lines[i] = fmt.Sprintf("[%d] %s (%s) - $%.2f", i, c.Description, c.Vendor, c.Price)
	}

	indices, err := p.llm.SelectMatches(ctx, productName, lines)
	if err != nil {
		log.Warn().Err(err).Msg("verification failed, keeping unfiltered results")
		return candidates
	}
	if len(indices) == 0 {
		return candidates
	}

	keep := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(listed) {
			log.Warn().Int("index", idx).Msg("verifier index out of range, keeping unfiltered results")
			return candidates
		}
		keep[idx] = true
	}

	verified := make([]market.ProductCandidate, 0, len(keep))
	for i, c := range listed {
		if keep[i] {
			verified = append(verified, c)
		}
	}

	log.Info().Int("before", len(candidates)).Int("after", len(verified)).Msg("verification done")
	return verified
}
