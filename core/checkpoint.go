package core

import "time"

// CheckpointMeta is the metadata shape for a saved checkpoint. Storage format
// and location belong to the persistence layer; only this shape crosses the
// wire (CheckpointSaved, CheckpointList).
type CheckpointMeta struct {
	ID CheckpointID `json:"id"`
	// Optional user-assigned name.
	Name *string `json:"name,omitempty"`
	// Creation time, UTC.
	Timestamp time.Time `json:"timestamp"`
	// Size of the persisted snapshot in bytes.
	SizeBytes int64 `json:"size_bytes"`
	// Task active when the checkpoint was taken, if any.
	TaskID *TaskID `json:"task_id,omitempty"`
	// Human-readable summary.
	Summary string `json:"summary"`
}
