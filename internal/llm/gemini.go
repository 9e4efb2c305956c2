package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const (
	searchModel = "gemini-3-pro-preview"   // identification and verification
	chatModel   = "gemini-3-flash-preview" // conversational assistant
)

// Gemini pricing (per million tokens)
const (
	proInputPricePerMillion    = 2.00
	proOutputPricePerMillion   = 12.00
	flashInputPricePerMillion  = 0.50
	flashOutputPricePerMillion = 3.00
)

const identifyPrompt = `Identify this product. Return ONLY the Brand and specific Model Name. No extra text.`

// identifyMaxOutputTokens keeps the answer to a short brand/model string.
const identifyMaxOutputTokens = 50

const verifyPrompt = `Context: User is analyzing: %q.

Task: Identify items that are the visual match of the user's product.

Rules:
1. Accept different brand names (white label or factory unbranded is GOOD).
2. Reject parts, accessories, or boxes (e.g. if user wants a drone, reject "propellers only").
3. Reject completely different items.

Return a JSON array of indices for the matching items.

List:
%s

Output JSON: [0, 2, 5]`

// Gemini talks to the Gemini API for product identification, candidate
// verification and the chat assistant.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini client with an explicit API key. Reading the
// key is the caller's job so nothing in this package touches the environment.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// IdentifyProduct returns the brand and model visible in the image. Low
// temperature and a small output ceiling keep the answer to the product name
// alone.
func (g *Gemini) IdentifyProduct(ctx context.Context, imageJPEG []byte) (string, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: imageJPEG, MIMEType: "image/jpeg"}},
		genai.NewPartFromText(identifyPrompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: identifyMaxOutputTokens,
		Temperature:     genai.Ptr[float32](0.1),
	}

	result, err := g.client.Models.GenerateContent(ctx, searchModel, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	name := strings.TrimSpace(result.Text())
	logUsage(result, searchModel, proInputPricePerMillion, proOutputPricePerMillion, "product identification llm call")

	return name, nil
}

// SelectMatches asks the model which of the enumerated candidate lines
// genuinely match the product. Lines are "[i] description (vendor) - $price".
// Parse failures are returned as errors so the caller can fall back to the
// unfiltered list.
func (g *Gemini) SelectMatches(ctx context.Context, productName string, lines []string) ([]int, error) {
	prompt := fmt.Sprintf(verifyPrompt, productName, strings.Join(lines, "\n"))
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := g.client.Models.GenerateContent(ctx, searchModel, []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}, config)
	if err != nil {
		return nil, fmt.Errorf("gemini verification failed: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	indices, err := parseIndices(result.Text())
	if err != nil {
		return nil, err
	}

	logUsage(result, searchModel, proInputPricePerMillion, proOutputPricePerMillion, "candidate verification llm call")

	return indices, nil
}

// parseIndices parses a JSON array of candidate indices from model output,
// tolerating markdown code fences around the JSON.
func parseIndices(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var indices []int
	if err := json.Unmarshal([]byte(text), &indices); err != nil {
		return nil, fmt.Errorf("failed to parse indices json: %w (response: %s)", err, text)
	}

	return indices, nil
}

func logUsage(result *genai.GenerateContentResponse, model string, inputPrice, outputPrice float64, msg string) {
	if result.UsageMetadata == nil {
		return
	}
	inputTokens := int64(result.UsageMetadata.PromptTokenCount)
	outputTokens := int64(result.UsageMetadata.CandidatesTokenCount)
	log.Info().
		Str("model", model).
		Int64("inputTokens", inputTokens).
		Int64("outputTokens", outputTokens).
		Float64("costUSD", calculateGeminiCost(inputTokens, outputTokens, inputPrice, outputPrice)).
		Msg(msg)
}

func calculateGeminiCost(inputTokens, outputTokens int64, inputPrice, outputPrice float64) float64 {
	inputCost := float64(inputTokens) / 1_000_000 * inputPrice
	outputCost := float64(outputTokens) / 1_000_000 * outputPrice
	return inputCost + outputCost
}
