// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"strings"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

const defaultSummaryWords = 200

// System prompts per content kind.
const (
	systemArticle = "You are an expert Wikipedia article writer specializing in Omani history, " +
		"culture, and events. Write comprehensive, well-structured, and factual articles."
	systemSummary = "You are an expert on Omani events and history. Provide accurate, concise summaries."
	systemInfobox = "You are an expert at creating Wikipedia infoboxes."
	systemImage   = "You are an expert at writing descriptive prompts for text-to-image models, " +
		"with deep knowledge of Omani culture and landscapes."
)

// styleInstruction maps a writing style to its prompt wording.
var styleInstruction = map[types.Style]string{
	types.StyleFormal:   "formal, encyclopedic tone",
	types.StyleCasual:   "casual, approachable tone",
	types.StyleDetailed: "detailed, thorough tone with extensive background",
}

// buildCompletion constructs the upstream request for a content kind.
func buildCompletion(kind types.ContentKind, req types.GenerationRequest) (CompletionRequest, error) {
	switch kind {
	case types.KindArticle:
		return CompletionRequest{
			System:      systemArticle,
			Prompt:      articlePrompt(req),
			Temperature: 0.7,
			MaxTokens:   2000,
		}, nil
	case types.KindSummary:
		return CompletionRequest{
			System:      systemSummary,
			Prompt:      summaryPrompt(req),
			Temperature: 0.5,
			MaxTokens:   300,
		}, nil
	case types.KindInfobox:
		return CompletionRequest{
			System:      systemInfobox,
			Prompt:      infoboxPrompt(req),
			Temperature: 0.6,
			MaxTokens:   500,
		}, nil
	case types.KindImagePrompt:
		return CompletionRequest{
			System:      systemImage,
			Prompt:      imagePrompt(req),
			Temperature: 0.8,
			MaxTokens:   200,
		}, nil
	}
	return CompletionRequest{}, &types.InvalidArgumentError{Field: "kind", Value: string(kind)}
}

func articlePrompt(req types.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a comprehensive Wikipedia-style article about '%s' in Oman.\n\n", req.EventName)
	b.WriteString("The article should include:\n")
	b.WriteString("1. An introductory paragraph with a clear definition\n")
	b.WriteString("2. Historical background and significance\n")
	b.WriteString("3. Key details and information\n")
	b.WriteString("4. Cultural or economic impact\n")
	b.WriteString("5. Notable participants or figures (if applicable)\n")
	b.WriteString("6. Related events or traditions\n")
	b.WriteString("7. References section\n\n")
	fmt.Fprintf(&b, "Style: %s\n", styleInstruction[req.Style])

	if req.Context != "" {
		fmt.Fprintf(&b, "\nAdditional context: %s\n", req.Context)
	}

	b.WriteString("\nWrite the article in proper Wikipedia format with appropriate sections and subsections.")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func summaryPrompt(req types.GenerationRequest) string {
	maxWords := req.MaxLength
	if maxWords <= 0 {
		maxWords = defaultSummaryWords
	}
	prompt := fmt.Sprintf("Write a concise summary (max %d words) about '%s' in Oman.\n"+
		"Focus on the most important facts and significance.", maxWords, req.EventName)
	return prompt + languageInstruction(req.Language)
}

func infoboxPrompt(req types.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a Wikipedia-style infobox for '%s' in Oman.\n", req.EventName)
	b.WriteString("Include relevant fields such as:\n")
	b.WriteString("- Date/Time period\n")
	b.WriteString("- Location\n")
	b.WriteString("- Type of event\n")
	b.WriteString("- Significance\n")
	b.WriteString("- Participants\n")
	b.WriteString("- Other relevant details\n\n")
	b.WriteString("Format it as a text-based infobox.")
	b.WriteString(languageInstruction(req.Language))
	return b.String()
}

func imagePrompt(req types.GenerationRequest) string {
	prompt := fmt.Sprintf("Write a single vivid text-to-image prompt depicting '%s' in Oman. "+
		"Describe the scene, setting, lighting, and atmosphere in one paragraph. "+
		"Do not include any text or captions in the image description.", req.EventName)
	if req.Context != "" {
		prompt += fmt.Sprintf("\nAdditional context: %s", req.Context)
	}
	return prompt
}

// languageInstruction appends the output-language directive. English is the
// prompt language, so only Arabic needs an explicit instruction.
func languageInstruction(lang types.Language) string {
	if lang == types.LangArabic {
		return "\n\nWrite the entire output in Modern Standard Arabic."
	}
	return ""
}
