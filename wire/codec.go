package wire

import (
	"encoding/json"

	"github.com/hupe1980/agentwire/core"
)

// EncodeOp serializes an operation into its tagged JSON form: the variant's
// payload fields plus a "type" discriminant. The operation must carry a
// non-empty submission id.
func EncodeOp(op core.Op) ([]byte, error) {
	if op.Submission() == "" {
		return nil, &core.InvalidSubmissionIDError{Value: ""}
	}
	return encodeTagged(string(op.Type()), op)
}

// EncodeEvent serializes an event into its tagged JSON form.
func EncodeEvent(e core.Event) ([]byte, error) {
	if e.Submission() == "" {
		return nil, &core.InvalidSubmissionIDError{Value: ""}
	}
	return encodeTagged(string(e.Type()), e)
}

// encodeTagged flattens the payload object and injects the discriminant as a
// sibling "type" field.
func encodeTagged(tag string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &core.EncodeError{Err: err}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &core.EncodeError{Err: err}
	}
	tagJSON, err := json.Marshal(tag)
	if err != nil {
		return nil, &core.EncodeError{Err: err}
	}
	fields["type"] = tagJSON
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, &core.EncodeError{Err: err}
	}
	return out, nil
}

// envelope is the minimal shape peeked at before dispatching on the tag.
type envelope struct {
	Type  string            `json:"type"`
	SubID core.SubmissionID `json:"sub_id"`
}

func peek(data []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return env, &core.DecodeError{Message: err.Error()}
	}
	if env.Type == "" {
		return env, &core.DecodeError{Message: "missing type field"}
	}
	if env.SubID == "" {
		return env, &core.InvalidSubmissionIDError{Value: string(env.SubID)}
	}
	return env, nil
}

// DecodeOp parses a tagged JSON document into the matching Op variant.
// Unknown tags yield an UnknownOperationError so version skew surfaces as a
// typed error instead of corrupted state. Unknown payload fields are
// ignored; missing ones take their documented defaults.
func DecodeOp(data []byte) (core.Op, error) {
	env, err := peek(data)
	if err != nil {
		return nil, err
	}
	var op core.Op
	switch core.OpType(env.Type) {
	case core.OpTypeConfigureSession:
		op, err = decodePayload[core.ConfigureSession](data)
	case core.OpTypeUserInput:
		op, err = decodePayload[core.UserInput](data)
	case core.OpTypeInterrupt:
		op, err = decodePayload[core.Interrupt](data)
	case core.OpTypeExecApproval:
		op, err = decodePayload[core.ExecApproval](data)
	case core.OpTypeMcpApproval:
		op, err = decodePayload[core.McpApproval](data)
	case core.OpTypeSpawnAgent:
		op, err = decodePayload[core.SpawnAgent](data)
	case core.OpTypeTerminateAgent:
		op, err = decodePayload[core.TerminateAgent](data)
	case core.OpTypeRouteMessage:
		op, err = decodePayload[core.RouteMessage](data)
	case core.OpTypeSaveCheckpoint:
		op, err = decodePayload[core.SaveCheckpoint](data)
	case core.OpTypeRestoreCheckpoint:
		op, err = decodePayload[core.RestoreCheckpoint](data)
	case core.OpTypeListCheckpoints:
		op, err = decodePayload[core.ListCheckpoints](data)
	case core.OpTypeUndo:
		op, err = decodePayload[core.Undo](data)
	case core.OpTypeTogglePlanMode:
		op, err = decodePayload[core.TogglePlanMode](data)
	case core.OpTypeUpdateSettings:
		op, err = decodePayload[core.UpdateSettings](data)
	default:
		return nil, &core.UnknownOperationError{Type: env.Type}
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

// DecodeEvent parses a tagged JSON document into the matching Event variant.
// Unknown tags yield an UnknownEventError.
func DecodeEvent(data []byte) (core.Event, error) {
	env, err := peek(data)
	if err != nil {
		return nil, err
	}
	var e core.Event
	switch core.EventType(env.Type) {
	case core.EventTypeSessionConfigured:
		e, err = decodePayload[core.SessionConfigured](data)
	case core.EventTypeSettingsUpdated:
		e, err = decodePayload[core.SettingsUpdated](data)
	case core.EventTypeTaskStarted:
		e, err = decodePayload[core.TaskStarted](data)
	case core.EventTypeTurnComplete:
		e, err = decodePayload[core.TurnComplete](data)
	case core.EventTypeTaskComplete:
		e, err = decodePayload[core.TaskComplete](data)
	case core.EventTypeTaskFailed:
		e, err = decodePayload[core.TaskFailed](data)
	case core.EventTypeTaskInterrupted:
		e, err = decodePayload[core.TaskInterrupted](data)
	case core.EventTypeAgentSpawned:
		e, err = decodePayload[core.AgentSpawned](data)
	case core.EventTypeAgentWorking:
		e, err = decodePayload[core.AgentWorking](data)
	case core.EventTypeAgentStatusChanged:
		e, err = decodePayload[core.AgentStatusChanged](data)
	case core.EventTypeAgentMessage:
		e, err = decodePayload[core.AgentMessage](data)
	case core.EventTypeAgentComplete:
		e, err = decodePayload[core.AgentComplete](data)
	case core.EventTypeAgentTerminated:
		e, err = decodePayload[core.AgentTerminated](data)
	case core.EventTypeToolCallStart:
		e, err = decodePayload[core.ToolCallStart](data)
	case core.EventTypeApprovalRequired:
		e, err = decodePayload[core.ApprovalRequired](data)
	case core.EventTypeToolCallComplete:
		e, err = decodePayload[core.ToolCallComplete](data)
	case core.EventTypeToolCallFailed:
		e, err = decodePayload[core.ToolCallFailed](data)
	case core.EventTypeHierarchyUpdated:
		e, err = decodePayload[core.HierarchyUpdated](data)
	case core.EventTypeCheckpointSaved:
		e, err = decodePayload[core.CheckpointSaved](data)
	case core.EventTypeCheckpointRestored:
		e, err = decodePayload[core.CheckpointRestored](data)
	case core.EventTypeCheckpointList:
		e, err = decodePayload[core.CheckpointList](data)
	case core.EventTypePlanModeChanged:
		e, err = decodePayload[core.PlanModeChanged](data)
	case core.EventTypePlanCreated:
		e, err = decodePayload[core.PlanCreated](data)
	case core.EventTypeWarning:
		e, err = decodePayload[core.Warning](data)
	case core.EventTypeError:
		e, err = decodePayload[core.ErrorEvent](data)
	case core.EventTypeUsageUpdate:
		e, err = decodePayload[core.UsageUpdate](data)
	default:
		return nil, &core.UnknownEventError{Type: env.Type}
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func decodePayload[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &core.DecodeError{Message: err.Error()}
	}
	return v, nil
}
