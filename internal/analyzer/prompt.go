package analyzer

import (
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const analysisToolName = "record_comment_analyses"

const systemPrompt = `You are an expert at analyzing YouTube comments about products/videos.
Your task is to extract structured information from each comment:

1. PRODUCT SENTIMENT: Focus specifically on how the commenter feels about the PRODUCT/VIDEO itself, not their general mood. Look for opinions about features, quality, usefulness, etc.

2. ISSUE IDENTIFICATION: Only mark has_issue=true if the comment explicitly mentions a problem, bug, complaint, or negative experience with the product. Be specific in describing the issue.

3. TOPIC CATEGORIZATION: Identify the main topic/theme of the comment as it relates to the product. Examples: "feature request", "bug report", "pricing", "performance", "UI/UX", "comparison", "tutorial request", "general praise", etc.

Keep outputs concise and deterministic. Be precise and consistent in categorization.`

// analysisTool forces the completion into the batch payload schema instead of
// free text. comment_index refers back into the submitted batch.
var analysisTool = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        analysisToolName,
		Description: "Record the structured analysis for every comment in the batch",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"analyses": {
					Type:        jsonschema.Array,
					Description: "List of individual comment analyses",
					Items: &jsonschema.Definition{
						Type: jsonschema.Object,
						Properties: map[string]jsonschema.Definition{
							"comment_index": {
								Type:        jsonschema.Integer,
								Description: "The index of the comment in the batch (0-indexed)",
							},
							"product_sentiment": {
								Type:        jsonschema.String,
								Enum:        []string{"positive", "negative", "neutral", "mixed"},
								Description: "Sentiment specifically about the product, not just general sentiment",
							},
							"has_issue": {
								Type:        jsonschema.Boolean,
								Description: "Whether this comment mentions a specific issue with the product",
							},
							"issue_description": {
								Type:        jsonschema.String,
								Description: "Brief description of the issue if has_issue is true, max 50 chars",
							},
							"topic": {
								Type:        jsonschema.String,
								Description: "General topic/category of the comment as it relates to the product, max 30 chars",
							},
						},
						Required: []string{"comment_index", "product_sentiment", "has_issue", "topic"},
					},
				},
			},
			Required: []string{"analyses"},
		},
	},
}

// buildMessages formats one batch into the system/user message pair, each
// comment prefixed with its zero-based position within the batch.
func buildMessages(batch []string, productContext string) []openai.ChatCompletionMessage {
	var sb strings.Builder
	if productContext != "" {
		fmt.Fprintf(&sb, "Product/Video Context: %s\n\n", productContext)
	}
	fmt.Fprintf(&sb, "Analyze the following %d comments. Return structured analysis for each:\n\n", len(batch))
	for idx, comment := range batch {
		fmt.Fprintf(&sb, "[%d] %s\n", idx, comment)
	}

	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: sb.String(),
		},
	}
}
