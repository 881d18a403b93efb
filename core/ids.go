package core

import (
	"github.com/google/uuid"
)

// AgentID uniquely identifies an agent in the hierarchy.
//
// The zero value is the nil UUID; use NewAgentID for fresh identifiers and
// AgentIDFromUUID when rehydrating from storage or logs. IDs are comparable
// and safe for use as map keys.
type AgentID struct{ uuid.UUID }

// NewAgentID returns a fresh, statistically unique agent identifier.
func NewAgentID() AgentID { return AgentID{uuid.New()} }

// AgentIDFromUUID wraps an existing UUID. Construction cannot fail.
func AgentIDFromUUID(u uuid.UUID) AgentID { return AgentID{u} }

// String renders a short human-readable form ("agent-" + first 8 hex chars).
// JSON serialization uses the full canonical UUID string.
func (id AgentID) String() string { return "agent-" + id.UUID.String()[:8] }

// TaskID uniquely identifies a task.
type TaskID struct{ uuid.UUID }

// NewTaskID returns a fresh task identifier.
func NewTaskID() TaskID { return TaskID{uuid.New()} }

// TaskIDFromUUID wraps an existing UUID.
func TaskIDFromUUID(u uuid.UUID) TaskID { return TaskID{u} }

// String renders a short human-readable form ("task-" + first 8 hex chars).
func (id TaskID) String() string { return "task-" + id.UUID.String()[:8] }

// CallID uniquely identifies a tool call.
type CallID struct{ uuid.UUID }

// NewCallID returns a fresh tool call identifier.
func NewCallID() CallID { return CallID{uuid.New()} }

// CallIDFromUUID wraps an existing UUID.
func CallIDFromUUID(u uuid.UUID) CallID { return CallID{u} }

// String renders a short human-readable form ("call-" + first 8 hex chars).
func (id CallID) String() string { return "call-" + id.UUID.String()[:8] }

// SessionID uniquely identifies a session.
type SessionID struct{ uuid.UUID }

// NewSessionID returns a fresh session identifier.
func NewSessionID() SessionID { return SessionID{uuid.New()} }

// SessionIDFromUUID wraps an existing UUID.
func SessionIDFromUUID(u uuid.UUID) SessionID { return SessionID{u} }

// String renders a short human-readable form ("session-" + first 8 hex chars).
func (id SessionID) String() string { return "session-" + id.UUID.String()[:8] }

// CheckpointID uniquely identifies a checkpoint.
type CheckpointID struct{ uuid.UUID }

// NewCheckpointID returns a fresh checkpoint identifier.
func NewCheckpointID() CheckpointID { return CheckpointID{uuid.New()} }

// CheckpointIDFromUUID wraps an existing UUID.
func CheckpointIDFromUUID(u uuid.UUID) CheckpointID { return CheckpointID{u} }

// String renders a short human-readable form ("checkpoint-" + first 8 hex chars).
func (id CheckpointID) String() string { return "checkpoint-" + id.UUID.String()[:8] }

// SubmissionID correlates operations with the events they trigger. It is an
// opaque string: NewSubmissionID mints a random canonical UUID string, while
// SubmissionIDFrom accepts any caller-supplied token (for clients that manage
// their own correlation scheme). Every Op and Event carries exactly one.
type SubmissionID string

// NewSubmissionID returns a fresh random submission identifier.
func NewSubmissionID() SubmissionID { return SubmissionID(uuid.NewString()) }

// SubmissionIDFrom wraps a caller-supplied correlation token.
func SubmissionIDFrom(s string) SubmissionID { return SubmissionID(s) }

// String returns the identifier verbatim.
func (id SubmissionID) String() string { return string(id) }
