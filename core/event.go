package core

import (
	"encoding/json"
	"time"
)

// EventType is the wire discriminant for events. It appears as the "type"
// field of the encoded object.
type EventType string

// Event type tags, grouped by concern.
const (
	// Session events.
	EventTypeSessionConfigured EventType = "session_configured"
	EventTypeSettingsUpdated   EventType = "settings_updated"

	// Task events.
	EventTypeTaskStarted     EventType = "task_started"
	EventTypeTurnComplete    EventType = "turn_complete"
	EventTypeTaskComplete    EventType = "task_complete"
	EventTypeTaskFailed      EventType = "task_failed"
	EventTypeTaskInterrupted EventType = "task_interrupted"

	// Agent events.
	EventTypeAgentSpawned       EventType = "agent_spawned"
	EventTypeAgentWorking       EventType = "agent_working"
	EventTypeAgentStatusChanged EventType = "agent_status_changed"
	EventTypeAgentMessage       EventType = "agent_message"
	EventTypeAgentComplete      EventType = "agent_complete"
	EventTypeAgentTerminated    EventType = "agent_terminated"

	// Tool events.
	EventTypeToolCallStart    EventType = "tool_call_start"
	EventTypeApprovalRequired EventType = "approval_required"
	EventTypeToolCallComplete EventType = "tool_call_complete"
	EventTypeToolCallFailed   EventType = "tool_call_failed"

	// Hierarchy events.
	EventTypeHierarchyUpdated EventType = "hierarchy_updated"

	// Checkpoint events.
	EventTypeCheckpointSaved    EventType = "checkpoint_saved"
	EventTypeCheckpointRestored EventType = "checkpoint_restored"
	EventTypeCheckpointList     EventType = "checkpoint_list"

	// Plan events.
	EventTypePlanModeChanged EventType = "plan_mode_changed"
	EventTypePlanCreated     EventType = "plan_created"

	// System events.
	EventTypeWarning     EventType = "warning"
	EventTypeError       EventType = "error"
	EventTypeUsageUpdate EventType = "usage_update"
)

// Event is an engine-to-client notification. Like Op the union is closed
// within a protocol revision but open across revisions, so decoders reject
// unknown tags with a typed error and consumers keep a default arm when
// switching on Type.
//
// Events carrying the same SubmissionID are emitted in order; events from
// different submissions may interleave arbitrarily.
type Event interface {
	isEvent()
	// Type returns the wire discriminant for this variant.
	Type() EventType
	// Submission returns the correlation identifier of the triggering
	// operation. Unsolicited events still carry a fresh identifier so the
	// contract shape stays uniform.
	Submission() SubmissionID
}

// SessionConfigured acknowledges a ConfigureSession operation.
type SessionConfigured struct {
	SubID     SubmissionID  `json:"sub_id"`
	SessionID SessionID     `json:"session_id"`
	Config    SessionConfig `json:"config"`
}

func (SessionConfigured) isEvent() {}

// Type returns the wire discriminant.
func (SessionConfigured) Type() EventType { return EventTypeSessionConfigured }

// Submission returns the correlation identifier.
func (e SessionConfigured) Submission() SubmissionID { return e.SubID }

// SettingsUpdated acknowledges an UpdateSettings operation.
type SettingsUpdated struct {
	SubID    SubmissionID    `json:"sub_id"`
	Settings SessionSettings `json:"settings"`
}

func (SettingsUpdated) isEvent() {}

// Type returns the wire discriminant.
func (SettingsUpdated) Type() EventType { return EventTypeSettingsUpdated }

// Submission returns the correlation identifier.
func (e SettingsUpdated) Submission() SubmissionID { return e.SubID }

// TaskStarted signals that a new task has started.
type TaskStarted struct {
	SubID  SubmissionID `json:"sub_id"`
	TaskID TaskID       `json:"task_id"`
	Prompt string       `json:"prompt"`
}

func (TaskStarted) isEvent() {}

// Type returns the wire discriminant.
func (TaskStarted) Type() EventType { return EventTypeTaskStarted }

// Submission returns the correlation identifier.
func (e TaskStarted) Submission() SubmissionID { return e.SubID }

// TurnComplete marks the end of a task turn. Each turn produces a checkpoint
// usable for resumption.
type TurnComplete struct {
	SubID        SubmissionID `json:"sub_id"`
	TaskID       TaskID       `json:"task_id"`
	TurnNumber   uint32       `json:"turn_number"`
	CheckpointID CheckpointID `json:"checkpoint_id"`
}

func (TurnComplete) isEvent() {}

// Type returns the wire discriminant.
func (TurnComplete) Type() EventType { return EventTypeTurnComplete }

// Submission returns the correlation identifier.
func (e TurnComplete) Submission() SubmissionID { return e.SubID }

// TaskComplete signals successful task completion.
type TaskComplete struct {
	SubID  SubmissionID `json:"sub_id"`
	TaskID TaskID       `json:"task_id"`
	Result TaskResult   `json:"result"`
}

func (TaskComplete) isEvent() {}

// Type returns the wire discriminant.
func (TaskComplete) Type() EventType { return EventTypeTaskComplete }

// Submission returns the correlation identifier.
func (e TaskComplete) Submission() SubmissionID { return e.SubID }

// TaskFailed signals task failure with an error description.
type TaskFailed struct {
	SubID  SubmissionID `json:"sub_id"`
	TaskID TaskID       `json:"task_id"`
	Error  string       `json:"error"`
}

func (TaskFailed) isEvent() {}

// Type returns the wire discriminant.
func (TaskFailed) Type() EventType { return EventTypeTaskFailed }

// Submission returns the correlation identifier.
func (e TaskFailed) Submission() SubmissionID { return e.SubID }

// TaskInterrupted acknowledges an Interrupt operation. It is a terminal task
// event.
type TaskInterrupted struct {
	SubID  SubmissionID `json:"sub_id"`
	TaskID TaskID       `json:"task_id"`
}

func (TaskInterrupted) isEvent() {}

// Type returns the wire discriminant.
func (TaskInterrupted) Type() EventType { return EventTypeTaskInterrupted }

// Submission returns the correlation identifier.
func (e TaskInterrupted) Submission() SubmissionID { return e.SubID }

// AgentSpawned signals a new agent in the hierarchy.
type AgentSpawned struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	// Parent agent, absent for the root orchestrator.
	ParentID *AgentID    `json:"parent_id,omitempty"`
	Role     AgentRole   `json:"role"`
	Config   AgentConfig `json:"config"`
}

func (AgentSpawned) isEvent() {}

// Type returns the wire discriminant.
func (AgentSpawned) Type() EventType { return EventTypeAgentSpawned }

// Submission returns the correlation identifier.
func (e AgentSpawned) Submission() SubmissionID { return e.SubID }

// AgentWorking signals that an agent started working on its task.
type AgentWorking struct {
	SubID       SubmissionID `json:"sub_id"`
	AgentID     AgentID      `json:"agent_id"`
	TaskSummary string       `json:"task_summary"`
}

func (AgentWorking) isEvent() {}

// Type returns the wire discriminant.
func (AgentWorking) Type() EventType { return EventTypeAgentWorking }

// Submission returns the correlation identifier.
func (e AgentWorking) Submission() SubmissionID { return e.SubID }

// AgentStatusChanged signals an agent lifecycle transition.
type AgentStatusChanged struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	Status  AgentStatus  `json:"status"`
}

func (AgentStatusChanged) isEvent() {}

// Type returns the wire discriminant.
func (AgentStatusChanged) Type() EventType { return EventTypeAgentStatusChanged }

// Submission returns the correlation identifier.
func (e AgentStatusChanged) Submission() SubmissionID { return e.SubID }

// AgentMessage is a streaming message chunk from an agent.
type AgentMessage struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	Content string       `json:"content"`
	// Streaming is true while more content is coming.
	Streaming   bool        `json:"streaming"`
	MessageType MessageType `json:"message_type"`
}

func (AgentMessage) isEvent() {}

// Type returns the wire discriminant.
func (AgentMessage) Type() EventType { return EventTypeAgentMessage }

// Submission returns the correlation identifier.
func (e AgentMessage) Submission() SubmissionID { return e.SubID }

// UnmarshalJSON applies the text message type default for absent fields.
func (e *AgentMessage) UnmarshalJSON(data []byte) error {
	type agentMessage AgentMessage
	tmp := agentMessage{MessageType: MessageText}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*e = AgentMessage(tmp)
	return nil
}

// AgentComplete signals that an agent finished its task.
type AgentComplete struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	Result  AgentResult  `json:"result"`
}

func (AgentComplete) isEvent() {}

// Type returns the wire discriminant.
func (AgentComplete) Type() EventType { return EventTypeAgentComplete }

// Submission returns the correlation identifier.
func (e AgentComplete) Submission() SubmissionID { return e.SubID }

// AgentTerminated signals that an agent was terminated.
type AgentTerminated struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	Reason  string       `json:"reason"`
}

func (AgentTerminated) isEvent() {}

// Type returns the wire discriminant.
func (AgentTerminated) Type() EventType { return EventTypeAgentTerminated }

// Submission returns the correlation identifier.
func (e AgentTerminated) Submission() SubmissionID { return e.SubID }

// ToolCallStart signals that a tool call started.
type ToolCallStart struct {
	SubID     SubmissionID    `json:"sub_id"`
	AgentID   AgentID         `json:"agent_id"`
	CallID    CallID          `json:"call_id"`
	ToolName  string          `json:"tool_name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (ToolCallStart) isEvent() {}

// Type returns the wire discriminant.
func (ToolCallStart) Type() EventType { return EventTypeToolCallStart }

// Submission returns the correlation identifier.
func (e ToolCallStart) Submission() SubmissionID { return e.SubID }

// ApprovalRequired asks the client to approve or deny a tool call. The
// client replies with ExecApproval or McpApproval carrying the same CallID.
type ApprovalRequired struct {
	SubID     SubmissionID    `json:"sub_id"`
	AgentID   AgentID         `json:"agent_id"`
	CallID    CallID          `json:"call_id"`
	ToolName  string          `json:"tool_name"`
	Arguments json.RawMessage `json:"arguments"`
	// Description is a human-readable account of what will happen.
	Description string    `json:"description"`
	Risk        RiskLevel `json:"risk"`
}

func (ApprovalRequired) isEvent() {}

// Type returns the wire discriminant.
func (ApprovalRequired) Type() EventType { return EventTypeApprovalRequired }

// Submission returns the correlation identifier.
func (e ApprovalRequired) Submission() SubmissionID { return e.SubID }

// UnmarshalJSON applies the medium risk default for absent fields.
func (e *ApprovalRequired) UnmarshalJSON(data []byte) error {
	type approvalRequired ApprovalRequired
	tmp := approvalRequired{Risk: RiskMedium}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*e = ApprovalRequired(tmp)
	return nil
}

// ToolCallComplete signals that a tool call finished.
type ToolCallComplete struct {
	SubID      SubmissionID `json:"sub_id"`
	AgentID    AgentID      `json:"agent_id"`
	CallID     CallID       `json:"call_id"`
	ToolName   string       `json:"tool_name"`
	Output     ToolOutput   `json:"output"`
	DurationMs uint64       `json:"duration_ms"`
}

func (ToolCallComplete) isEvent() {}

// Type returns the wire discriminant.
func (ToolCallComplete) Type() EventType { return EventTypeToolCallComplete }

// Submission returns the correlation identifier.
func (e ToolCallComplete) Submission() SubmissionID { return e.SubID }

// ToolCallFailed signals that a tool call failed before producing output.
type ToolCallFailed struct {
	SubID    SubmissionID `json:"sub_id"`
	AgentID  AgentID      `json:"agent_id"`
	CallID   CallID       `json:"call_id"`
	ToolName string       `json:"tool_name"`
	Error    string       `json:"error"`
}

func (ToolCallFailed) isEvent() {}

// Type returns the wire discriminant.
func (ToolCallFailed) Type() EventType { return EventTypeToolCallFailed }

// Submission returns the correlation identifier.
func (e ToolCallFailed) Submission() SubmissionID { return e.SubID }

// HierarchyUpdated carries a fresh snapshot of the agent tree.
type HierarchyUpdated struct {
	SubID SubmissionID `json:"sub_id"`
	Root  AgentTree    `json:"root"`
}

func (HierarchyUpdated) isEvent() {}

// Type returns the wire discriminant.
func (HierarchyUpdated) Type() EventType { return EventTypeHierarchyUpdated }

// Submission returns the correlation identifier.
func (e HierarchyUpdated) Submission() SubmissionID { return e.SubID }

// CheckpointSaved acknowledges a SaveCheckpoint operation.
type CheckpointSaved struct {
	SubID        SubmissionID `json:"sub_id"`
	CheckpointID CheckpointID `json:"checkpoint_id"`
	Name         *string      `json:"name,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
}

func (CheckpointSaved) isEvent() {}

// Type returns the wire discriminant.
func (CheckpointSaved) Type() EventType { return EventTypeCheckpointSaved }

// Submission returns the correlation identifier.
func (e CheckpointSaved) Submission() SubmissionID { return e.SubID }

// CheckpointRestored acknowledges a RestoreCheckpoint operation.
type CheckpointRestored struct {
	SubID        SubmissionID `json:"sub_id"`
	CheckpointID CheckpointID `json:"checkpoint_id"`
}

func (CheckpointRestored) isEvent() {}

// Type returns the wire discriminant.
func (CheckpointRestored) Type() EventType { return EventTypeCheckpointRestored }

// Submission returns the correlation identifier.
func (e CheckpointRestored) Submission() SubmissionID { return e.SubID }

// CheckpointList answers a ListCheckpoints operation.
type CheckpointList struct {
	SubID       SubmissionID     `json:"sub_id"`
	Checkpoints []CheckpointMeta `json:"checkpoints"`
}

func (CheckpointList) isEvent() {}

// Type returns the wire discriminant.
func (CheckpointList) Type() EventType { return EventTypeCheckpointList }

// Submission returns the correlation identifier.
func (e CheckpointList) Submission() SubmissionID { return e.SubID }

// PlanModeChanged acknowledges a TogglePlanMode operation.
type PlanModeChanged struct {
	SubID       SubmissionID    `json:"sub_id"`
	Enabled     bool            `json:"enabled"`
	Granularity PlanGranularity `json:"granularity"`
}

func (PlanModeChanged) isEvent() {}

// Type returns the wire discriminant.
func (PlanModeChanged) Type() EventType { return EventTypePlanModeChanged }

// Submission returns the correlation identifier.
func (e PlanModeChanged) Submission() SubmissionID { return e.SubID }

// PlanCreated carries a plan derived from a user request.
type PlanCreated struct {
	SubID SubmissionID `json:"sub_id"`
	Plan  TaskPlan     `json:"plan"`
}

func (PlanCreated) isEvent() {}

// Type returns the wire discriminant.
func (PlanCreated) Type() EventType { return EventTypePlanCreated }

// Submission returns the correlation identifier.
func (e PlanCreated) Submission() SubmissionID { return e.SubID }

// Warning is a non-fatal condition the client should surface.
type Warning struct {
	SubID   SubmissionID `json:"sub_id"`
	Message string       `json:"message"`
	Details *string      `json:"details,omitempty"`
}

func (Warning) isEvent() {}

// Type returns the wire discriminant.
func (Warning) Type() EventType { return EventTypeWarning }

// Submission returns the correlation identifier.
func (e Warning) Submission() SubmissionID { return e.SubID }

// ErrorEvent is a fatal error surfaced across the contract boundary. The
// name avoids colliding with the error taxonomy in errors.go.
type ErrorEvent struct {
	SubID   SubmissionID `json:"sub_id"`
	Message string       `json:"message"`
	// Recoverable indicates the session can continue after the error.
	Recoverable bool `json:"recoverable"`
}

func (ErrorEvent) isEvent() {}

// Type returns the wire discriminant.
func (ErrorEvent) Type() EventType { return EventTypeError }

// Submission returns the correlation identifier.
func (e ErrorEvent) Submission() SubmissionID { return e.SubID }

// UsageUpdate reports token and cost usage, either per agent or aggregate.
type UsageUpdate struct {
	SubID SubmissionID `json:"sub_id"`
	// AgentID scopes the usage to one agent; absent means session-wide.
	AgentID *AgentID   `json:"agent_id,omitempty"`
	Usage   TokenUsage `json:"usage"`
}

func (UsageUpdate) isEvent() {}

// Type returns the wire discriminant.
func (UsageUpdate) Type() EventType { return EventTypeUsageUpdate }

// Submission returns the correlation identifier.
func (e UsageUpdate) Submission() SubmissionID { return e.SubID }

// IsError reports whether e is one of the error-class events, ErrorEvent or
// TaskFailed. Warnings are not errors.
func IsError(e Event) bool {
	switch e.Type() {
	case EventTypeError, EventTypeTaskFailed:
		return true
	default:
		return false
	}
}

// RequiresAttention reports whether a UI must surface e immediately instead
// of queueing it. True for ApprovalRequired, ErrorEvent and Warning.
func RequiresAttention(e Event) bool {
	switch e.Type() {
	case EventTypeApprovalRequired, EventTypeError, EventTypeWarning:
		return true
	default:
		return false
	}
}
