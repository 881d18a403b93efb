package core

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAgentRoleWireForms(t *testing.T) {
	tests := []struct {
		name string
		role AgentRole
		want string
	}{
		{"zero value", AgentRole{}, `"worker"`},
		{"worker", WorkerRole(), `"worker"`},
		{"orchestrator", OrchestratorRole(), `"orchestrator"`},
		{"scout", AgentRole{Kind: RoleScout}, `"scout"`},
		{"reviewer", AgentRole{Kind: RoleReviewer}, `"reviewer"`},
		{"domain lead", DomainLeadRole("frontend"), `{"domain_lead":{"domain":"frontend"}}`},
		{"specialist", SpecialistRole("security"), `{"specialist":{"specialty":"security"}}`},
		{"custom", CustomRole("archaeologist"), `{"custom":{"name":"archaeologist"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.role)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestAgentRoleRoundTrip(t *testing.T) {
	for _, role := range []AgentRole{
		WorkerRole(),
		OrchestratorRole(),
		{Kind: RoleScout},
		{Kind: RoleReviewer},
		DomainLeadRole("backend"),
		SpecialistRole("performance"),
		CustomRole("librarian"),
	} {
		data, err := json.Marshal(role)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", role, err)
		}
		var back AgentRole
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if back != role {
			t.Errorf("round trip = %+v, want %+v", back, role)
		}
	}
}

func TestAgentRoleRejectsUnknown(t *testing.T) {
	var r AgentRole
	if err := json.Unmarshal([]byte(`"manager"`), &r); err == nil {
		t.Error("unknown role string accepted")
	}
	if err := json.Unmarshal([]byte(`{"team_lead":{"domain":"x"}}`), &r); err == nil {
		t.Error("unknown role object accepted")
	}
}

func TestAgentConfigDefaults(t *testing.T) {
	var cfg AgentConfig
	if err := json.Unmarshal([]byte(`{}`), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Role != WorkerRole() {
		t.Errorf("Role = %+v, want worker", cfg.Role)
	}
	if cfg.CanSpawn {
		t.Error("CanSpawn = true, want false")
	}
	if cfg.MaxChildren != nil || cfg.TokenBudget != nil {
		t.Error("absent limits are not nil")
	}
}

func TestAgentStatusWireForms(t *testing.T) {
	tests := []struct {
		name   string
		status AgentStatus
		want   string
	}{
		{"zero value", AgentStatus{}, `"spawning"`},
		{"running", AgentStatus{Kind: StatusRunning}, `"running"`},
		{"completed", AgentStatus{Kind: StatusCompleted}, `"completed"`},
		{"waiting", WaitingStatus("approval pending"), `{"waiting":{"reason":"approval pending"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.status)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestAgentStatusRoundTrip(t *testing.T) {
	for _, status := range []AgentStatus{
		{Kind: StatusSpawning},
		{Kind: StatusInitializing},
		{Kind: StatusRunning},
		WaitingStatus("blocked on dependency"),
		{Kind: StatusCompleted},
		{Kind: StatusFailed},
		{Kind: StatusTerminated},
	} {
		data, err := json.Marshal(status)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", status, err)
		}
		var back AgentStatus
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if back != status {
			t.Errorf("round trip = %+v, want %+v", back, status)
		}
	}
}

func TestAgentStatusIsTerminal(t *testing.T) {
	terminal := []StatusKind{StatusCompleted, StatusFailed, StatusTerminated}
	for _, k := range terminal {
		if !(AgentStatus{Kind: k}).IsTerminal() {
			t.Errorf("IsTerminal(%s) = false, want true", k)
		}
	}
	live := []StatusKind{StatusSpawning, StatusInitializing, StatusRunning, StatusWaiting}
	for _, k := range live {
		if (AgentStatus{Kind: k}).IsTerminal() {
			t.Errorf("IsTerminal(%s) = true, want false", k)
		}
	}
}

func TestAgentTreeRoundTrip(t *testing.T) {
	summary := "coordinating"
	tree := AgentTree{
		AgentID:     NewAgentID(),
		Role:        OrchestratorRole(),
		Status:      AgentStatus{Kind: StatusRunning},
		TaskSummary: &summary,
		Children: []AgentTree{
			{
				AgentID: NewAgentID(),
				Role:    DomainLeadRole("frontend"),
				Status:  WaitingStatus("queued"),
			},
			{
				AgentID: NewAgentID(),
				Role:    WorkerRole(),
				Status:  AgentStatus{Kind: StatusRunning},
			},
		},
	}
	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back AgentTree
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(back, tree) {
		t.Errorf("round trip = %+v, want %+v", back, tree)
	}
}
