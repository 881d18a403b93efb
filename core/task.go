package core

// TaskContext carries the execution context handed to an agent with a task.
type TaskContext struct {
	// Current working directory.
	Cwd string `json:"cwd,omitempty"`
	// Files to include as context.
	Files []string `json:"files,omitempty"`
	// Memory/context strings recalled for this task.
	MemoryContext []string `json:"memory_context,omitempty"`
	// Free-form metadata.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TaskAssignment describes a task handed to an agent.
type TaskAssignment struct {
	TaskID TaskID `json:"task_id"`
	// Human-readable task description.
	Description string `json:"description"`
	// Expected deliverables.
	Deliverables []string `json:"deliverables,omitempty"`
	// Tasks that must complete first.
	Dependencies []TaskID `json:"dependencies,omitempty"`
	// Execution context.
	Context TaskContext `json:"context"`
}

// TaskResult is the outcome of a completed task.
type TaskResult struct {
	TaskID  TaskID `json:"task_id"`
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	// Files changed while executing the task.
	FilesChanged []string `json:"files_changed,omitempty"`
	// Token accounting for the task.
	TokenUsage TokenUsage `json:"token_usage"`
}

// ImageAttachment is an image attached to a user prompt.
type ImageAttachment struct {
	// Base64 encoded image data.
	Data string `json:"data"`
	// MIME type, e.g. "image/png".
	MimeType string `json:"mime_type"`
	// Original filename hint.
	Filename *string `json:"filename,omitempty"`
}
