package core

import "encoding/json"

// OpType is the wire discriminant for operations. It appears as the "type"
// field of the encoded object.
type OpType string

// Operation type tags. Tags are stable: renaming one is a breaking protocol
// change.
const (
	OpTypeConfigureSession  OpType = "configure_session"
	OpTypeUserInput         OpType = "user_input"
	OpTypeInterrupt         OpType = "interrupt"
	OpTypeExecApproval      OpType = "exec_approval"
	OpTypeMcpApproval       OpType = "mcp_approval"
	OpTypeSpawnAgent        OpType = "spawn_agent"
	OpTypeTerminateAgent    OpType = "terminate_agent"
	OpTypeRouteMessage      OpType = "route_message"
	OpTypeSaveCheckpoint    OpType = "save_checkpoint"
	OpTypeRestoreCheckpoint OpType = "restore_checkpoint"
	OpTypeListCheckpoints   OpType = "list_checkpoints"
	OpTypeUndo              OpType = "undo"
	OpTypeTogglePlanMode    OpType = "toggle_plan_mode"
	OpTypeUpdateSettings    OpType = "update_settings"
)

// Op is a client-to-engine operation. The set of variants is closed within a
// protocol revision but open across revisions: decoders must reject unknown
// tags with a typed error rather than guessing, and consumers switching on
// Type should keep a default arm for forward compatibility.
//
// Every operation carries exactly one SubmissionID; all events caused by an
// operation echo it.
type Op interface {
	isOp()
	// Type returns the wire discriminant for this variant.
	Type() OpType
	// Submission returns the correlation identifier without requiring the
	// caller to switch on the variant.
	Submission() SubmissionID
}

// ConfigureSession configures or reconfigures the session. The config
// replaces the previous one wholesale; it is not merged.
type ConfigureSession struct {
	SubID  SubmissionID  `json:"sub_id"`
	Config SessionConfig `json:"config"`
}

func (ConfigureSession) isOp() {}

// Type returns the wire discriminant.
func (ConfigureSession) Type() OpType { return OpTypeConfigureSession }

// Submission returns the correlation identifier.
func (o ConfigureSession) Submission() SubmissionID { return o.SubID }

// UserInput starts or continues a task from a user prompt.
type UserInput struct {
	SubID  SubmissionID `json:"sub_id"`
	Prompt string       `json:"prompt"`
	// Images attached to the prompt.
	Images []ImageAttachment `json:"images,omitempty"`
	// Context to include with the task.
	Context TaskContext `json:"context"`
	// Resume from a specific checkpoint instead of current state.
	CheckpointID *CheckpointID `json:"checkpoint_id,omitempty"`
}

func (UserInput) isOp() {}

// Type returns the wire discriminant.
func (UserInput) Type() OpType { return OpTypeUserInput }

// Submission returns the correlation identifier.
func (o UserInput) Submission() SubmissionID { return o.SubID }

// Interrupt requests that a running task stop. It is advisory: the engine
// acknowledges asynchronously with TaskInterrupted (or another terminal task
// event) and the task is not guaranteed to stop immediately.
type Interrupt struct {
	SubID SubmissionID `json:"sub_id"`
	// Task to interrupt. Nil means the current task.
	TaskID *TaskID `json:"task_id,omitempty"`
}

func (Interrupt) isOp() {}

// Type returns the wire discriminant.
func (Interrupt) Type() OpType { return OpTypeInterrupt }

// Submission returns the correlation identifier.
func (o Interrupt) Submission() SubmissionID { return o.SubID }

// ExecApproval answers an ApprovalRequired event for a command execution.
type ExecApproval struct {
	SubID  SubmissionID `json:"sub_id"`
	CallID CallID       `json:"call_id"`
	// Whether to approve the call.
	Approved bool `json:"approved"`
	// Optional modified command text to run instead of the original.
	ModifiedCommand *string `json:"modified_command,omitempty"`
}

func (ExecApproval) isOp() {}

// Type returns the wire discriminant.
func (ExecApproval) Type() OpType { return OpTypeExecApproval }

// Submission returns the correlation identifier.
func (o ExecApproval) Submission() SubmissionID { return o.SubID }

// McpApproval answers an approval request originating from an MCP tool call.
type McpApproval struct {
	SubID    SubmissionID `json:"sub_id"`
	CallID   CallID       `json:"call_id"`
	Approved bool         `json:"approved"`
}

func (McpApproval) isOp() {}

// Type returns the wire discriminant.
func (McpApproval) Type() OpType { return OpTypeMcpApproval }

// Submission returns the correlation identifier.
func (o McpApproval) Submission() SubmissionID { return o.SubID }

// SpawnAgent requests a new agent in the hierarchy.
type SpawnAgent struct {
	SubID  SubmissionID `json:"sub_id"`
	Config AgentConfig  `json:"config"`
	// Parent agent. Nil spawns the root orchestrator.
	ParentID *AgentID `json:"parent_id,omitempty"`
	// Task to assign to the new agent.
	Task TaskAssignment `json:"task"`
}

func (SpawnAgent) isOp() {}

// Type returns the wire discriminant.
func (SpawnAgent) Type() OpType { return OpTypeSpawnAgent }

// Submission returns the correlation identifier.
func (o SpawnAgent) Submission() SubmissionID { return o.SubID }

// TerminateAgent stops a specific agent.
type TerminateAgent struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	// Optional reason recorded with the termination.
	Reason *string `json:"reason,omitempty"`
}

func (TerminateAgent) isOp() {}

// Type returns the wire discriminant.
func (TerminateAgent) Type() OpType { return OpTypeTerminateAgent }

// Submission returns the correlation identifier.
func (o TerminateAgent) Submission() SubmissionID { return o.SubID }

// RouteMessage injects a free-form message to a specific agent.
type RouteMessage struct {
	SubID   SubmissionID `json:"sub_id"`
	AgentID AgentID      `json:"agent_id"`
	Content string       `json:"content"`
}

func (RouteMessage) isOp() {}

// Type returns the wire discriminant.
func (RouteMessage) Type() OpType { return OpTypeRouteMessage }

// Submission returns the correlation identifier.
func (o RouteMessage) Submission() SubmissionID { return o.SubID }

// SaveCheckpoint saves a checkpoint of the current task/session state.
type SaveCheckpoint struct {
	SubID SubmissionID `json:"sub_id"`
	// Optional name for the checkpoint.
	Name *string `json:"name,omitempty"`
}

func (SaveCheckpoint) isOp() {}

// Type returns the wire discriminant.
func (SaveCheckpoint) Type() OpType { return OpTypeSaveCheckpoint }

// Submission returns the correlation identifier.
func (o SaveCheckpoint) Submission() SubmissionID { return o.SubID }

// RestoreCheckpoint restores state from a checkpoint.
type RestoreCheckpoint struct {
	SubID        SubmissionID `json:"sub_id"`
	CheckpointID CheckpointID `json:"checkpoint_id"`
}

func (RestoreCheckpoint) isOp() {}

// Type returns the wire discriminant.
func (RestoreCheckpoint) Type() OpType { return OpTypeRestoreCheckpoint }

// Submission returns the correlation identifier.
func (o RestoreCheckpoint) Submission() SubmissionID { return o.SubID }

// ListCheckpoints requests the list of available checkpoints.
type ListCheckpoints struct {
	SubID SubmissionID `json:"sub_id"`
}

func (ListCheckpoints) isOp() {}

// Type returns the wire discriminant.
func (ListCheckpoints) Type() OpType { return OpTypeListCheckpoints }

// Submission returns the correlation identifier.
func (o ListCheckpoints) Submission() SubmissionID { return o.SubID }

// Undo reverts to the last automatic checkpoint.
type Undo struct {
	SubID SubmissionID `json:"sub_id"`
}

func (Undo) isOp() {}

// Type returns the wire discriminant.
func (Undo) Type() OpType { return OpTypeUndo }

// Submission returns the correlation identifier.
func (o Undo) Submission() SubmissionID { return o.SubID }

// TogglePlanMode enables or disables plan mode.
type TogglePlanMode struct {
	SubID   SubmissionID `json:"sub_id"`
	Enabled bool         `json:"enabled"`
	// Granularity to use while plan mode is enabled. Defaults to auto.
	Granularity PlanGranularity `json:"granularity"`
}

func (TogglePlanMode) isOp() {}

// Type returns the wire discriminant.
func (TogglePlanMode) Type() OpType { return OpTypeTogglePlanMode }

// Submission returns the correlation identifier.
func (o TogglePlanMode) Submission() SubmissionID { return o.SubID }

// UnmarshalJSON applies the auto granularity default for absent fields.
func (o *TogglePlanMode) UnmarshalJSON(data []byte) error {
	type togglePlanMode TogglePlanMode
	tmp := togglePlanMode{Granularity: GranularityAuto}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*o = TogglePlanMode(tmp)
	return nil
}

// UpdateSettings updates runtime settings. Unlike ConfigureSession this is a
// partial, non-invalidating update.
type UpdateSettings struct {
	SubID    SubmissionID    `json:"sub_id"`
	Settings SessionSettings `json:"settings"`
}

func (UpdateSettings) isOp() {}

// Type returns the wire discriminant.
func (UpdateSettings) Type() OpType { return OpTypeUpdateSettings }

// Submission returns the correlation identifier.
func (o UpdateSettings) Submission() SubmissionID { return o.SubID }

// NewUserInput builds a UserInput with a fresh SubmissionID and empty context.
func NewUserInput(prompt string) UserInput {
	return UserInput{SubID: NewSubmissionID(), Prompt: prompt}
}

// NewInterrupt builds an Interrupt for the current task with a fresh
// SubmissionID.
func NewInterrupt() Interrupt {
	return Interrupt{SubID: NewSubmissionID()}
}

// ApproveExec builds an approval reply for the given call.
func ApproveExec(callID CallID) ExecApproval {
	return ExecApproval{SubID: NewSubmissionID(), CallID: callID, Approved: true}
}

// DenyExec builds a denial reply for the given call.
func DenyExec(callID CallID) ExecApproval {
	return ExecApproval{SubID: NewSubmissionID(), CallID: callID, Approved: false}
}
