package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPlanStepComplexityDefault(t *testing.T) {
	var step PlanStep
	raw := `{"id": "1", "description": "add handler", "expected_outcome": "handler registered"}`
	if err := json.Unmarshal([]byte(raw), &step); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if step.Complexity != ComplexityModerate {
		t.Errorf("Complexity = %q, want %q", step.Complexity, ComplexityModerate)
	}
}

func TestDependencyEdgeWireForm(t *testing.T) {
	edge := DependencyEdge{From: "1", To: "2"}
	data, err := json.Marshal(edge)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `["1","2"]` {
		t.Errorf("Marshal() = %s, want [\"1\",\"2\"]", data)
	}
	var back DependencyEdge
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != edge {
		t.Errorf("round trip = %+v, want %+v", back, edge)
	}
}

func TestDependencyEdgeRejectsMalformed(t *testing.T) {
	var edge DependencyEdge
	if err := json.Unmarshal([]byte(`{"from":"1","to":"2"}`), &edge); err == nil {
		t.Error("object form accepted, want array form only")
	}
}

func TestTaskPlanRoundTrip(t *testing.T) {
	plan := TaskPlan{
		OriginalRequest: "add auth",
		Steps: []PlanStep{
			{ID: "1", Description: "create auth module", ExpectedOutcome: "module exists", Complexity: ComplexitySimple},
			{ID: "2", Description: "wire middleware", ExpectedOutcome: "requests authenticated", Complexity: ComplexityComplex},
		},
		AgentAssignments: map[string]AgentRole{
			"1": WorkerRole(),
			"2": SpecialistRole("security"),
		},
		Dependencies:    []DependencyEdge{{From: "1", To: "2"}},
		EstimatedTokens: 15000,
	}
	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back TaskPlan
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(back, plan) {
		t.Errorf("round trip = %+v, want %+v", back, plan)
	}
}

func TestRiskLevelSeverityOrdering(t *testing.T) {
	order := []RiskLevel{RiskNone, RiskLow, RiskMedium, RiskHigh, RiskCritical}
	for i := 1; i < len(order); i++ {
		if order[i-1].Severity() >= order[i].Severity() {
			t.Errorf("Severity(%s) = %d not below Severity(%s) = %d",
				order[i-1], order[i-1].Severity(), order[i], order[i].Severity())
		}
	}
	if RiskLevel("unheard_of").Severity() != RiskMedium.Severity() {
		t.Error("unknown risk level does not rank as medium")
	}
}

func TestTokenUsageAdd(t *testing.T) {
	cost := 0.25
	a := TokenUsage{InputTokens: 1000, OutputTokens: 500, TotalTokens: 1500, EstimatedCostUSD: &cost}
	b := TokenUsage{InputTokens: 200, OutputTokens: 100, TotalTokens: 300}

	sum := a.Add(b)
	if sum.InputTokens != 1200 || sum.OutputTokens != 600 || sum.TotalTokens != 1800 {
		t.Errorf("Add() = %+v", sum)
	}
	if sum.EstimatedCostUSD == nil || *sum.EstimatedCostUSD != cost {
		t.Errorf("Add() cost = %v, want %v", sum.EstimatedCostUSD, cost)
	}

	other := 0.5
	b.EstimatedCostUSD = &other
	sum = a.Add(b)
	if sum.EstimatedCostUSD == nil || *sum.EstimatedCostUSD != 0.75 {
		t.Errorf("Add() cost = %v, want 0.75", sum.EstimatedCostUSD)
	}

	// Add returns a copy; mutating the sum's cost must not touch the inputs.
	*sum.EstimatedCostUSD = 99
	if *a.EstimatedCostUSD != 0.25 {
		t.Error("Add() aliased the input cost pointer")
	}
}
