package summarizer

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

func generateGemini(ctx context.Context, modelName, prompt string) (string, *LLMRequestLog, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return "", nil, err
	}

	result, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", nil, err
	}

	text := result.Text()
	llmLog := &LLMRequestLog{
		Prompt:       prompt,
		Response:     text,
		ModelName:    modelName,
		ModelVersion: result.ModelVersion,
	}
	if result.UsageMetadata != nil {
		llmLog.TokenUsage = TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	return text, llmLog, nil
}
