package market

// ProductCandidate is one purchase offer surfaced to the caller. Every
// candidate that reaches the caller has a positive price and a thumbnail,
// enforced by IsValidItem before the raw result is mapped.
type ProductCandidate struct {
	Tier            string  `json:"tier"`
	Vendor          string  `json:"vendor"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	URL             string  `json:"url"`
	Image           string  `json:"image,omitempty"`
	Description     string  `json:"description"`
	ProbableFlaws   string  `json:"probableFlaws"`
	QualityScore    int     `json:"qualityScore"`    // 1-10
	ConfidenceScore int     `json:"confidenceScore"` // 0-100
}

// MarketAnalysis summarizes the final candidate list.
type MarketAnalysis struct {
	AverageMarketPrice string `json:"averageMarketPrice"`
	HonestyScore       int    `json:"honestyScore"`
	UncertaintyReason  string `json:"uncertaintyReason"`
}

// AnalysisResult is the outcome of one search invocation. It is constructed
// once by the pipeline and owned by the caller afterwards.
type AnalysisResult struct {
	ProductName            string             `json:"productName"`
	IdentifiedModel        string             `json:"identifiedModel"` // acquisition method label
	OriginalEstimatedPrice float64            `json:"originalEstimatedPrice"`
	MarketAnalysis         MarketAnalysis     `json:"marketAnalysis"`
	Options                []ProductCandidate `json:"options"` // sorted ascending by price
	SearchImageUsed        string             `json:"searchImageUsed,omitempty"`
	VisualAnalysis         string             `json:"visualAnalysis,omitempty"`
}

// ChatMessage is one turn of assistant conversation history.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// RawItem is the provider-agnostic view of one raw search hit. Adapters map
// engine-specific response structs into this shape so that validation and
// URL resolution never see provider field names.
type RawItem struct {
	Title              string
	Source             string
	Link               string
	ProductLink        string
	RelatedContentLink string
	Thumbnail          string
	Price              any // number, price text like "$1,249.99", or nil
}
