// Package usage converts provider SDK token accounting into the contract's
// TokenUsage shape, so engines can emit UsageUpdate events straight from
// model responses regardless of provider.
package usage

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"

	"github.com/hupe1980/agentwire/core"
)

// FromAnthropic converts Anthropic API usage. Cache creation and cache read
// tokens count as input tokens; the total is derived as input plus output.
func FromAnthropic(u anthropic.Usage) core.TokenUsage {
	input := u.InputTokens + u.CacheCreationInputTokens + u.CacheReadInputTokens
	return core.TokenUsage{
		InputTokens:  input,
		OutputTokens: u.OutputTokens,
		TotalTokens:  input + u.OutputTokens,
	}
}

// FromOpenAI converts OpenAI API usage. The API's own total is preserved
// rather than re-derived.
func FromOpenAI(u openai.CompletionUsage) core.TokenUsage {
	return core.TokenUsage{
		InputTokens:  u.PromptTokens,
		OutputTokens: u.CompletionTokens,
		TotalTokens:  u.TotalTokens,
	}
}

// WithCost returns a copy of u carrying the given estimated USD cost.
func WithCost(u core.TokenUsage, costUSD float64) core.TokenUsage {
	u.EstimatedCostUSD = &costUSD
	return u
}

// Price estimates the USD cost of u at the given per-million-token rates
// and returns a copy carrying it.
func Price(u core.TokenUsage, inputPerMTok, outputPerMTok float64) core.TokenUsage {
	cost := float64(u.InputTokens)/1e6*inputPerMTok + float64(u.OutputTokens)/1e6*outputPerMTok
	return WithCost(u, cost)
}
