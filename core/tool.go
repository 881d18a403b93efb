package core

import "encoding/json"

// ToolOutput is the result of executing a tool call.
type ToolOutput struct {
	// Success or failure.
	Success bool `json:"success"`
	// Textual output content.
	Content string `json:"content"`
	// Optional structured payload.
	Data json.RawMessage `json:"data,omitempty"`
	// Process exit code for shell commands. Nil when not applicable.
	ExitCode *int `json:"exit_code,omitempty"`
}

// RiskLevel ranks how dangerous a tool call is. It drives approval policy
// under ApprovalRiskBased. Defaults to medium when absent on the wire.
type RiskLevel string

const (
	// RiskNone is read-only.
	RiskNone RiskLevel = "none"
	// RiskLow covers local, easily reverted changes.
	RiskLow RiskLevel = "low"
	// RiskMedium covers file modifications. The default.
	RiskMedium RiskLevel = "medium"
	// RiskHigh covers destructive or network operations.
	RiskHigh RiskLevel = "high"
	// RiskCritical covers system-level operations.
	RiskCritical RiskLevel = "critical"
)

// Severity returns the level's position in the none < low < medium < high <
// critical ordering, for policy threshold comparisons. Unknown levels rank
// as medium.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskNone:
		return 0
	case RiskLow:
		return 1
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	default:
		return 2
	}
}
