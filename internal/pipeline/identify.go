package pipeline

import (
	"context"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/rs/zerolog/log"
)

// identify derives the product name: the vision model on the photo first,
// then the normalized text description, then a placeholder. Identification
// failures are logged and treated as "no name".
func (p *Pipeline) identify(ctx context.Context, in Input) string {
	productName := ""
	if len(in.Image) > 0 {
		name, err := p.llm.IdentifyProduct(ctx, in.Image)
		if err != nil {
			log.Warn().Err(err).Msg("product identification failed")
		} else {
			productName = name
		}
	}
	if productName == "" && in.Text != "" {
		productName = market.CleanQuery(in.Text)
	}
	if productName == "" {
		productName = unknownProduct
	}
	return productName
}
