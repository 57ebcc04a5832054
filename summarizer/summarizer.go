package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"biorxiv-calendar/config"
	"biorxiv-calendar/internal/logger"
)

const summarizeInstruction = `Summarize the following scientific abstract into 3 concise bullet points suitable for a quick overview. Use plain language where possible.

Abstract:
%s`

const jargonInstruction = `Identify the top 3 most complex technical terms in this text and briefly explain them for a general audience:

"%s"`

// LLMRequestLog captures one generative-text call for the structured log.
type LLMRequestLog struct {
	ID           string     `json:"id"`
	Prompt       string     `json:"prompt"`
	Response     string     `json:"response"`
	LatencyMs    int64      `json:"latency_ms"`
	TokenUsage   TokenUsage `json:"token_usage"`
	ModelName    string     `json:"model_name"`
	ModelVersion string     `json:"model_version"`
	GeneratedAt  time.Time  `json:"generated_at"`
}

type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
}

// SummarizeAbstract asks the configured provider for a bullet-point summary
// of a paper's abstract. One-shot: no retry, no caching here. An empty
// response is not an error; it means no summary was produced.
func SummarizeAbstract(ctx context.Context, abstract string) (string, error) {
	return generate(ctx, fmt.Sprintf(summarizeInstruction, abstract))
}

// ExplainJargon asks the configured provider to explain the most complex
// technical terms in text for a general audience.
func ExplainJargon(ctx context.Context, text string) (string, error) {
	return generate(ctx, fmt.Sprintf(jargonInstruction, text))
}

func generate(ctx context.Context, prompt string) (string, error) {
	llmCfg := config.GetConfig().LLM

	start := time.Now()

	var (
		text string
		log  *LLMRequestLog
		err  error
	)
	switch llmCfg.Provider {
	case "", "google":
		text, log, err = generateGemini(ctx, llmCfg.ModelName, prompt)
	case "openai":
		text, log, err = generateOpenAI(ctx, llmCfg.ModelName, prompt)
	default:
		return "", fmt.Errorf("unsupported LLM provider: %s", llmCfg.Provider)
	}
	if err != nil {
		return "", err
	}

	log.ID = uuid.New().String()
	log.LatencyMs = time.Since(start).Milliseconds()
	log.GeneratedAt = time.Now()
	logger.InfoWithFields("llm request completed", logger.Fields{
		"llm_request_id": log.ID,
		"model_name":     log.ModelName,
		"model_version":  log.ModelVersion,
		"latency_ms":     log.LatencyMs,
		"input_tokens":   log.TokenUsage.InputTokens,
		"output_tokens":  log.TokenUsage.OutputTokens,
		"total_tokens":   log.TokenUsage.TotalTokens,
	})

	return text, nil
}
