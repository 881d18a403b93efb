package core

// TokenUsage is the token accounting snapshot attached to results and usage
// updates. TotalTokens is producer-trusted: it is expected to equal
// InputTokens+OutputTokens but this type does not enforce that invariant.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
	TotalTokens  int64 `json:"total_tokens"`
	// Estimated cost in USD, when the producer can price the tokens.
	EstimatedCostUSD *float64 `json:"estimated_cost_usd,omitempty"`
}

// Add returns the field-wise sum of two usage snapshots. Costs sum only when
// both sides carry one; otherwise the known cost (if any) is kept.
func (u TokenUsage) Add(other TokenUsage) TokenUsage {
	sum := TokenUsage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
		TotalTokens:  u.TotalTokens + other.TotalTokens,
	}
	switch {
	case u.EstimatedCostUSD != nil && other.EstimatedCostUSD != nil:
		cost := *u.EstimatedCostUSD + *other.EstimatedCostUSD
		sum.EstimatedCostUSD = &cost
	case u.EstimatedCostUSD != nil:
		cost := *u.EstimatedCostUSD
		sum.EstimatedCostUSD = &cost
	case other.EstimatedCostUSD != nil:
		cost := *other.EstimatedCostUSD
		sum.EstimatedCostUSD = &cost
	}
	return sum
}
