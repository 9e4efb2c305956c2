package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/nerdy2010/FlipAI/internal/serpapi"
	"github.com/rs/zerolog/log"
)

// Method labels recorded on the result so callers can see which strategy
// produced the candidates.
const (
	MethodGlobalSearch = "Global Search"
	MethodTextFallback = "Text Fallback"
)

const unknownProduct = "Unknown Product"

// LLM is the vision-language capability the pipeline depends on.
type LLM interface {
	// IdentifyProduct returns the brand and model visible in the image.
	IdentifyProduct(ctx context.Context, imageJPEG []byte) (string, error)
	// SelectMatches returns the indices of the enumerated candidate lines
	// that genuinely match the product.
	SelectMatches(ctx context.Context, productName string, lines []string) ([]int, error)
}

// SearchAPI is the search-provider capability.
type SearchAPI interface {
	SearchImages(ctx context.Context, query string, num int) ([]serpapi.ImageResult, error)
	SearchLens(ctx context.Context, imageURL string) ([]serpapi.VisualMatch, error)
	SearchShopping(ctx context.Context, query string, num int) ([]serpapi.ShoppingResult, error)
}

// Options are the tunable result caps. The zero value gets defaults.
type Options struct {
	// VisualMatchCap caps how many reverse-image matches are considered.
	VisualMatchCap int
	// KeywordResultCap is the result count requested from keyword search.
	KeywordResultCap int
	// VerifyCap caps how many candidates are listed for verification.
	VerifyCap int
}

const (
	defaultVisualMatchCap   = 40
	defaultKeywordResultCap = 60
	defaultVerifyCap        = 40
)

func (o Options) withDefaults() Options {
	if o.VisualMatchCap <= 0 {
		o.VisualMatchCap = defaultVisualMatchCap
	}
	if o.KeywordResultCap <= 0 {
		o.KeywordResultCap = defaultKeywordResultCap
	}
	if o.VerifyCap <= 0 {
		o.VerifyCap = defaultVerifyCap
	}
	return o
}

// Pipeline runs the product sourcing flow: identify the product, resolve a
// canonical reference image, search visually, fall back to keyword search,
// verify the candidates and rank them by price. Stateless per Run call.
type Pipeline struct {
	llm    LLM
	search SearchAPI
	opts   Options
}

func New(llm LLM, search SearchAPI, opts Options) *Pipeline {
	return &Pipeline{llm: llm, search: search, opts: opts.withDefaults()}
}

// Input is one user search action. All fields are optional but at least one
// of Image, Text or ReferenceURL should be set for a meaningful search.
type Input struct {
	Image        []byte  // JPEG photo of the product
	Text         string  // free-text description
	ReferenceURL string  // link to a reference product image
	TargetPrice  float64 // target price, 0 means unknown
}

// Run executes the pipeline. It returns *market.NotFoundError when every
// strategy, including the text fallback, produced zero valid candidates.
// Provider errors along the way are logged and treated as empty results.
func (p *Pipeline) Run(ctx context.Context, in Input) (*market.AnalysisResult, error) {
	productName := p.identify(ctx, in)
	canonicalURL := p.resolveReference(ctx, productName, in)

	method := MethodGlobalSearch
	var options []market.ProductCandidate
	if canonicalURL != "" {
		options = p.visualSearch(ctx, canonicalURL)
	}

	// Keyword fallback only runs if visual search failed completely.
	if len(options) == 0 {
		method = MethodTextFallback
		options = p.keywordSearch(ctx, productName)
	}

	if len(options) > 0 {
		options = p.verify(ctx, productName, options)
	}

	// Cheapest first, stable on ties.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	if len(options) == 0 {
		return nil, &market.NotFoundError{ProductName: productName}
	}

	var total float64
	for _, o := range options {
		total += o.Price
	}

	source := "Text Description"
	if canonicalURL != "" {
		source = "Visual Reference"
	}

	log.Info().
		Str("product", productName).
		Str("method", method).
		Int("options", len(options)).
		Msg("search complete")

	return &market.AnalysisResult{
		ProductName:            productName,
		IdentifiedModel:        method,
		OriginalEstimatedPrice: in.TargetPrice,
		MarketAnalysis: market.MarketAnalysis{
			AverageMarketPrice: fmt.Sprintf("$%.2f", total/float64(len(options))),
			HonestyScore:       95,
			UncertaintyReason:  "Verified SerpApi Results",
		},
		Options:         options,
		SearchImageUsed: canonicalURL,
		VisualAnalysis:  fmt.Sprintf("Identified as %s. Search based on %s.", productName, source),
	}, nil
}
