package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/nerdy2010/FlipAI/internal/market"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// chatErrorReply is returned whenever the chat call fails so the UI always
// has something to show.
const chatErrorReply = "Connection Error."

const chatSystemInstruction = `You are FlipAI. %sHelp the user negotiate or evaluate suppliers.`

// Chat forwards the conversation history plus an optional product context to
// the flash model and returns its reply.
func (g *Gemini) Chat(ctx context.Context, history []market.ChatMessage, message string, analysis *market.AnalysisResult) string {
	contextMsg := ""
	if analysis != nil {
		contextMsg = fmt.Sprintf("Context: User is analyzing %s. ", analysis.ProductName)
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(fmt.Sprintf(chatSystemInstruction, contextMsg), genai.RoleUser),
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	result, err := g.client.Models.GenerateContent(ctx, chatModel, contents, config)
	if err != nil {
		log.Warn().Err(err).Msg("chat llm call failed")
		return chatErrorReply
	}

	reply := strings.TrimSpace(result.Text())
	if reply == "" {
		return chatErrorReply
	}

	logUsage(result, chatModel, flashInputPricePerMillion, flashOutputPricePerMillion, "chat llm call")

	return reply
}
