package repository

import (
	"fmt"
	"strings"

	"golang-stock-insight/internal/entity"
)

const assistantInstructions = `You are a highly knowledgeable and helpful business assistant. Your goal is to provide clear, concise, and accurate information about a wide range of topics, including stocks, investing, economics, entrepreneurship, management, and general business concepts.

Formatting Guidelines:
- Use **bold** for key terms, concepts, and company names
- Use *italic* for emphasis or to clarify definitions
- Use bullet points for lists, steps, or key takeaways
- Use markdown tables for structured data
- Use headings (#, ##) to organize content clearly
- Use ` + "`code`" + ` for formulas, tickers, or specific values
- Keep your tone professional, friendly, and educational

Response Requirements:
- Provide context and definitions for any technical terms
- When relevant, include actionable insights or tips
- Avoid jargon unless explained
- Do not provide financial advice; offer information and education only
- For step-by-step guides, use numbered lists`

// BuildAssistantPrompt builds the assistant prompt for a question. When latest is
// not nil its values are included as context.
func BuildAssistantPrompt(question string, latest *entity.StockPrice, records int) string {
	var sb strings.Builder
	sb.WriteString(assistantInstructions)
	sb.WriteString("\n\n")

	if latest != nil {
		sb.WriteString("Market Context:\n")
		sb.WriteString(fmt.Sprintf("- Index: %s\n", latest.Company))
		sb.WriteString(fmt.Sprintf("- Records available: %d\n", records))
		sb.WriteString(fmt.Sprintf("- Latest session (%s): open %.2f, high %.2f, low %.2f, close %.2f, volume %.0f\n",
			latest.Date, latest.Open, latest.High, latest.Low, latest.Close, latest.Volume))
		sb.WriteString("\n")
	}

	sb.WriteString("User Question: ")
	sb.WriteString(question)
	return sb.String()
}
