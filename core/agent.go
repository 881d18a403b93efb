package core

import (
	"encoding/json"
	"fmt"
)

// RoleKind tags the agent role variants.
type RoleKind string

const (
	// RoleOrchestrator is the top-level coordinating agent.
	RoleOrchestrator RoleKind = "orchestrator"
	// RoleDomainLead leads a domain (e.g. frontend, backend). Carries the domain name.
	RoleDomainLead RoleKind = "domain_lead"
	// RoleWorker is a general-purpose execution agent. The default.
	RoleWorker RoleKind = "worker"
	// RoleSpecialist focuses on a specialty (e.g. security, performance).
	RoleSpecialist RoleKind = "specialist"
	// RoleScout performs research and exploration.
	RoleScout RoleKind = "scout"
	// RoleReviewer reviews produced work.
	RoleReviewer RoleKind = "reviewer"
	// RoleCustom is an externally defined role. Carries the role name.
	RoleCustom RoleKind = "custom"
)

// AgentRole describes an agent's place in the hierarchy. Unit kinds serialize
// as bare strings; payload kinds serialize as single-key objects, e.g.
// {"domain_lead": {"domain": "frontend"}}. The zero value behaves as worker.
type AgentRole struct {
	Kind RoleKind
	// Domain is populated for RoleDomainLead.
	Domain string
	// Specialty is populated for RoleSpecialist.
	Specialty string
	// Name is populated for RoleCustom.
	Name string
}

// WorkerRole returns the default worker role.
func WorkerRole() AgentRole { return AgentRole{Kind: RoleWorker} }

// OrchestratorRole returns the orchestrator role.
func OrchestratorRole() AgentRole { return AgentRole{Kind: RoleOrchestrator} }

// DomainLeadRole returns a domain lead role for the given domain.
func DomainLeadRole(domain string) AgentRole {
	return AgentRole{Kind: RoleDomainLead, Domain: domain}
}

// SpecialistRole returns a specialist role for the given specialty.
func SpecialistRole(specialty string) AgentRole {
	return AgentRole{Kind: RoleSpecialist, Specialty: specialty}
}

// CustomRole returns a custom role with the given name.
func CustomRole(name string) AgentRole {
	return AgentRole{Kind: RoleCustom, Name: name}
}

// MarshalJSON emits the tagged wire form.
func (r AgentRole) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case "", RoleWorker:
		return json.Marshal(string(RoleWorker))
	case RoleOrchestrator, RoleScout, RoleReviewer:
		return json.Marshal(string(r.Kind))
	case RoleDomainLead:
		return json.Marshal(map[string]map[string]string{
			string(RoleDomainLead): {"domain": r.Domain},
		})
	case RoleSpecialist:
		return json.Marshal(map[string]map[string]string{
			string(RoleSpecialist): {"specialty": r.Specialty},
		})
	case RoleCustom:
		return json.Marshal(map[string]map[string]string{
			string(RoleCustom): {"name": r.Name},
		})
	default:
		return nil, fmt.Errorf("unknown agent role kind %q", r.Kind)
	}
}

// UnmarshalJSON accepts both the bare-string and single-key object forms.
func (r *AgentRole) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch kind := RoleKind(s); kind {
		case RoleOrchestrator, RoleWorker, RoleScout, RoleReviewer:
			*r = AgentRole{Kind: kind}
			return nil
		default:
			return fmt.Errorf("unknown agent role %q", s)
		}
	}
	var obj map[string]map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("malformed agent role: %w", err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("malformed agent role object")
	}
	for kind, payload := range obj {
		switch RoleKind(kind) {
		case RoleDomainLead:
			*r = AgentRole{Kind: RoleDomainLead, Domain: payload["domain"]}
		case RoleSpecialist:
			*r = AgentRole{Kind: RoleSpecialist, Specialty: payload["specialty"]}
		case RoleCustom:
			*r = AgentRole{Kind: RoleCustom, Name: payload["name"]}
		default:
			return fmt.Errorf("unknown agent role %q", kind)
		}
	}
	return nil
}

// AgentConfig describes how to spawn an agent.
type AgentConfig struct {
	// Role in the hierarchy. Defaults to worker.
	Role AgentRole `json:"role"`
	// Model override; empty means inherit the session model.
	Model string `json:"model,omitempty"`
	// Working directory.
	Cwd string `json:"cwd,omitempty"`
	// Worktree isolation handle (e.g. a git worktree name).
	Worktree string `json:"worktree,omitempty"`
	// Tools available to this agent.
	Tools []string `json:"tools,omitempty"`
	// CanSpawn controls whether the agent may spawn children.
	CanSpawn bool `json:"can_spawn"`
	// MaxChildren limits spawned children. Nil means unlimited.
	MaxChildren *int `json:"max_children,omitempty"`
	// TokenBudget caps token spend for this agent. Nil means unlimited.
	TokenBudget *int64 `json:"token_budget,omitempty"`
}

// UnmarshalJSON applies the worker role default when the field is absent.
func (c *AgentConfig) UnmarshalJSON(data []byte) error {
	type agentConfig AgentConfig
	tmp := agentConfig{Role: WorkerRole()}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = AgentConfig(tmp)
	return nil
}

// StatusKind tags the agent lifecycle states.
type StatusKind string

const (
	// StatusSpawning means the agent is being created. The initial state.
	StatusSpawning StatusKind = "spawning"
	// StatusInitializing means the agent is loading its context.
	StatusInitializing StatusKind = "initializing"
	// StatusRunning means the agent is actively working.
	StatusRunning StatusKind = "running"
	// StatusWaiting means the agent is blocked on input, approval or a
	// dependency. Carries a reason.
	StatusWaiting StatusKind = "waiting"
	// StatusCompleted is terminal: the task finished successfully.
	StatusCompleted StatusKind = "completed"
	// StatusFailed is terminal: the task failed.
	StatusFailed StatusKind = "failed"
	// StatusTerminated is terminal: the agent was manually stopped.
	StatusTerminated StatusKind = "terminated"
)

// AgentStatus is an agent's lifecycle state snapshot. Unit kinds serialize as
// bare strings; waiting serializes as {"waiting": {"reason": ...}}. The zero
// value behaves as spawning.
type AgentStatus struct {
	Kind StatusKind
	// Reason is populated for StatusWaiting.
	Reason string
}

// WaitingStatus returns a waiting status with the given reason.
func WaitingStatus(reason string) AgentStatus {
	return AgentStatus{Kind: StatusWaiting, Reason: reason}
}

// IsTerminal reports whether the status is completed, failed or terminated.
func (s AgentStatus) IsTerminal() bool {
	switch s.Kind {
	case StatusCompleted, StatusFailed, StatusTerminated:
		return true
	}
	return false
}

// MarshalJSON emits the tagged wire form.
func (s AgentStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case "", StatusSpawning:
		return json.Marshal(string(StatusSpawning))
	case StatusInitializing, StatusRunning, StatusCompleted, StatusFailed, StatusTerminated:
		return json.Marshal(string(s.Kind))
	case StatusWaiting:
		return json.Marshal(map[string]map[string]string{
			string(StatusWaiting): {"reason": s.Reason},
		})
	default:
		return nil, fmt.Errorf("unknown agent status kind %q", s.Kind)
	}
}

// UnmarshalJSON accepts both the bare-string and waiting object forms.
func (s *AgentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		switch kind := StatusKind(str); kind {
		case StatusSpawning, StatusInitializing, StatusRunning,
			StatusCompleted, StatusFailed, StatusTerminated:
			*s = AgentStatus{Kind: kind}
			return nil
		default:
			return fmt.Errorf("unknown agent status %q", str)
		}
	}
	var obj map[string]map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("malformed agent status: %w", err)
	}
	payload, ok := obj[string(StatusWaiting)]
	if !ok || len(obj) != 1 {
		return fmt.Errorf("malformed agent status object")
	}
	*s = AgentStatus{Kind: StatusWaiting, Reason: payload["reason"]}
	return nil
}

// AgentResult is the outcome reported when an agent finishes its task.
type AgentResult struct {
	// Success or failure.
	Success bool `json:"success"`
	// Summary of what was done.
	Summary string `json:"summary"`
	// Files changed by the agent.
	FilesChanged []string `json:"files_changed,omitempty"`
	// Structured output data, shape defined by the producing agent.
	Output json.RawMessage `json:"output,omitempty"`
}

// AgentTree is a point-in-time value snapshot of the agent hierarchy. Each
// node exclusively owns its children; there are no back references and no
// cycles. State change is represented by emitting a new snapshot, never by
// mutating a previously sent one.
type AgentTree struct {
	AgentID AgentID     `json:"agent_id"`
	Role    AgentRole   `json:"role"`
	Status  AgentStatus `json:"status"`
	// TaskSummary is a short description of the node's current task, if any.
	TaskSummary *string `json:"task_summary,omitempty"`
	// Children in hierarchy order.
	Children []AgentTree `json:"children,omitempty"`
}

// MessageType classifies agent message content.
type MessageType string

const (
	// MessageText is a regular text response. The default.
	MessageText MessageType = "text"
	// MessageThinking is reasoning output that a UI may hide.
	MessageThinking MessageType = "thinking"
	// MessageCode is a code block.
	MessageCode MessageType = "code"
	// MessageError is an error message.
	MessageError MessageType = "error"
	// MessageStatus is a status update.
	MessageStatus MessageType = "status"
	// MessageProgress is a progress indicator.
	MessageProgress MessageType = "progress"
)
