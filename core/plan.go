package core

import (
	"encoding/json"
	"fmt"
)

// PlanGranularity selects how detailed task planning should be.
type PlanGranularity string

const (
	// GranularityCoarse plans high-level steps only.
	GranularityCoarse PlanGranularity = "coarse"
	// GranularityDetailed produces a detailed implementation plan.
	GranularityDetailed PlanGranularity = "detailed"
	// GranularityAuto lets the model decide. The default.
	GranularityAuto PlanGranularity = "auto"
)

// StepComplexity is the estimated complexity of a plan step.
type StepComplexity string

const (
	// ComplexitySimple is a single straightforward action.
	ComplexitySimple StepComplexity = "simple"
	// ComplexityModerate is moderate complexity. The default.
	ComplexityModerate StepComplexity = "moderate"
	// ComplexityComplex may need further decomposition.
	ComplexityComplex StepComplexity = "complex"
)

// PlanStep is a single step in a task plan.
type PlanStep struct {
	// Step identifier, unique within the plan.
	ID string `json:"id"`
	// Step description.
	Description string `json:"description"`
	// Expected outcome when the step is done.
	ExpectedOutcome string `json:"expected_outcome"`
	// Estimated complexity. Defaults to moderate.
	Complexity StepComplexity `json:"complexity"`
}

// UnmarshalJSON applies the moderate complexity default for absent fields.
func (s *PlanStep) UnmarshalJSON(data []byte) error {
	type planStep PlanStep
	tmp := planStep{Complexity: ComplexityModerate}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = PlanStep(tmp)
	return nil
}

// DependencyEdge is a directed (from, to) edge between plan step ids. Edges
// form a DAG; cycle validation is the consumer's concern, not enforced here.
// It serializes as a two-element array ["from", "to"].
type DependencyEdge struct {
	From string
	To   string
}

// MarshalJSON emits the two-element array form.
func (e DependencyEdge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.From, e.To})
}

// UnmarshalJSON decodes the two-element array form.
func (e *DependencyEdge) UnmarshalJSON(data []byte) error {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("malformed dependency edge: %w", err)
	}
	e.From, e.To = pair[0], pair[1]
	return nil
}

// TaskPlan is a decomposition of a user request into assignable steps.
type TaskPlan struct {
	// The original user request text.
	OriginalRequest string `json:"original_request"`
	// Ordered decomposed steps.
	Steps []PlanStep `json:"steps"`
	// Step id to assigned agent role.
	AgentAssignments map[string]AgentRole `json:"agent_assignments"`
	// Dependency edges between step ids.
	Dependencies []DependencyEdge `json:"dependencies"`
	// Estimated token cost of executing the plan.
	EstimatedTokens int64 `json:"estimated_tokens"`
}
