// Package testutil contains sample message fixtures used across tests to
// reduce boilerplate when exercising every variant of the Op and Event
// unions. The samples carry representative payloads, not zero values, so
// round-trip tests catch field-level regressions. Not intended for
// production usage.
package testutil

import (
	"encoding/json"
	"time"

	"github.com/hupe1980/agentwire/core"
)

// SampleSessionConfig returns a config with every optional field populated.
func SampleSessionConfig() core.SessionConfig {
	timeout := int64(120)
	return core.SessionConfig{
		Cwd:          "/work/project",
		Model:        "claude-sonnet-4",
		Instructions: "prefer small commits",
		McpServers: []core.McpServerConfig{
			{
				ID:        "fs",
				Name:      "filesystem",
				Transport: core.StdioTransport("mcp-fs", "--root", "/work"),
				Env:       map[string]string{"LOG_LEVEL": "warn"},
			},
			{
				ID:        "search",
				Name:      "search",
				Transport: core.HTTPTransport("http://localhost:8080/sse"),
			},
		},
		ApprovalMode: core.ApprovalRiskBased,
		Sandbox: core.SandboxConfig{
			Enabled:       true,
			Network:       core.AllowlistPolicy("api.example.com"),
			WritablePaths: []string{"/tmp/scratch"},
			TimeoutSecs:   &timeout,
		},
		MaxParallelAgents: 4,
	}
}

// SampleAgentConfig returns an agent config with limits set.
func SampleAgentConfig() core.AgentConfig {
	maxChildren := 3
	budget := int64(200000)
	return core.AgentConfig{
		Role:        core.DomainLeadRole("backend"),
		Model:       "claude-haiku-4",
		Cwd:         "/work/project/api",
		Worktree:    "lead-backend",
		Tools:       []string{"shell", "edit"},
		CanSpawn:    true,
		MaxChildren: &maxChildren,
		TokenBudget: &budget,
	}
}

// SampleAgentTree returns a two-level hierarchy snapshot.
func SampleAgentTree() core.AgentTree {
	rootSummary := "coordinating"
	childSummary := "writing handlers"
	return core.AgentTree{
		AgentID:     core.NewAgentID(),
		Role:        core.OrchestratorRole(),
		Status:      core.AgentStatus{Kind: core.StatusRunning},
		TaskSummary: &rootSummary,
		Children: []core.AgentTree{
			{
				AgentID:     core.NewAgentID(),
				Role:        core.WorkerRole(),
				Status:      core.WaitingStatus("approval pending"),
				TaskSummary: &childSummary,
			},
		},
	}
}

// SampleTaskPlan returns a small two-step plan with one dependency.
func SampleTaskPlan() core.TaskPlan {
	return core.TaskPlan{
		OriginalRequest: "add request logging",
		Steps: []core.PlanStep{
			{ID: "1", Description: "add middleware", ExpectedOutcome: "requests logged", Complexity: core.ComplexitySimple},
			{ID: "2", Description: "wire into router", ExpectedOutcome: "middleware active", Complexity: core.ComplexityModerate},
		},
		AgentAssignments: map[string]core.AgentRole{"1": core.WorkerRole()},
		Dependencies:     []core.DependencyEdge{{From: "1", To: "2"}},
		EstimatedTokens:  8000,
	}
}

// SampleOps returns one populated instance of every operation variant, all
// carrying the given submission id.
func SampleOps(sub core.SubmissionID) []core.Op {
	taskID := core.NewTaskID()
	modified := "ls -la /work"
	reason := "scope change"
	name := "before refactor"
	return []core.Op{
		core.ConfigureSession{SubID: sub, Config: SampleSessionConfig()},
		core.UserInput{
			SubID:  sub,
			Prompt: "add request logging",
			Context: core.TaskContext{
				Cwd:   "/work/project",
				Files: []string{"router.go"},
			},
		},
		core.Interrupt{SubID: sub, TaskID: &taskID},
		core.ExecApproval{SubID: sub, CallID: core.NewCallID(), Approved: true, ModifiedCommand: &modified},
		core.McpApproval{SubID: sub, CallID: core.NewCallID(), Approved: false},
		core.SpawnAgent{
			SubID:  sub,
			Config: SampleAgentConfig(),
			Task: core.TaskAssignment{
				TaskID:       core.NewTaskID(),
				Description:  "implement the middleware",
				Deliverables: []string{"middleware.go"},
				Context:      core.TaskContext{Cwd: "/work/project"},
			},
		},
		core.TerminateAgent{SubID: sub, AgentID: core.NewAgentID(), Reason: &reason},
		core.RouteMessage{SubID: sub, AgentID: core.NewAgentID(), Content: "focus on error paths"},
		core.SaveCheckpoint{SubID: sub, Name: &name},
		core.RestoreCheckpoint{SubID: sub, CheckpointID: core.NewCheckpointID()},
		core.ListCheckpoints{SubID: sub},
		core.Undo{SubID: sub},
		core.TogglePlanMode{SubID: sub, Enabled: true, Granularity: core.GranularityDetailed},
		core.UpdateSettings{SubID: sub, Settings: core.SessionSettings{ShowRateLimit: true, PlanGranularity: core.GranularityCoarse}},
	}
}

// SampleEvents returns one populated instance of every event variant, all
// carrying the given submission id.
func SampleEvents(sub core.SubmissionID) []core.Event {
	agentID := core.NewAgentID()
	parentID := core.NewAgentID()
	taskID := core.NewTaskID()
	name := "before refactor"
	details := "80% of limit used"
	cost := 0.25
	return []core.Event{
		core.SessionConfigured{SubID: sub, SessionID: core.NewSessionID(), Config: SampleSessionConfig()},
		core.SettingsUpdated{SubID: sub, Settings: core.SessionSettings{PlanGranularity: core.GranularityAuto}},
		core.TaskStarted{SubID: sub, TaskID: taskID, Prompt: "add request logging"},
		core.TurnComplete{SubID: sub, TaskID: taskID, TurnNumber: 3, CheckpointID: core.NewCheckpointID()},
		core.TaskComplete{SubID: sub, TaskID: taskID, Result: core.TaskResult{
			TaskID:       taskID,
			Success:      true,
			Summary:      "middleware merged",
			FilesChanged: []string{"middleware.go"},
			TokenUsage:   core.TokenUsage{InputTokens: 1000, OutputTokens: 400, TotalTokens: 1400},
		}},
		core.TaskFailed{SubID: sub, TaskID: taskID, Error: "compile error in router.go"},
		core.TaskInterrupted{SubID: sub, TaskID: taskID},
		core.AgentSpawned{SubID: sub, AgentID: agentID, ParentID: &parentID, Role: core.WorkerRole(), Config: SampleAgentConfig()},
		core.AgentWorking{SubID: sub, AgentID: agentID, TaskSummary: "writing handlers"},
		core.AgentStatusChanged{SubID: sub, AgentID: agentID, Status: core.WaitingStatus("blocked on approval")},
		core.AgentMessage{SubID: sub, AgentID: agentID, Content: "starting on the router", Streaming: true, MessageType: core.MessageText},
		core.AgentComplete{SubID: sub, AgentID: agentID, Result: core.AgentResult{
			Success:      true,
			Summary:      "done",
			FilesChanged: []string{"middleware.go"},
			Output:       json.RawMessage(`{"lines_added":42}`),
		}},
		core.AgentTerminated{SubID: sub, AgentID: agentID, Reason: "user request"},
		core.ToolCallStart{SubID: sub, AgentID: agentID, CallID: core.NewCallID(), ToolName: "shell", Arguments: json.RawMessage(`{"command":"go test ./..."}`)},
		core.ApprovalRequired{
			SubID:       sub,
			AgentID:     agentID,
			CallID:      core.NewCallID(),
			ToolName:    "shell",
			Arguments:   json.RawMessage(`{"command":"rm -rf build"}`),
			Description: "delete the build directory",
			Risk:        core.RiskHigh,
		},
		core.ToolCallComplete{SubID: sub, AgentID: agentID, CallID: core.NewCallID(), ToolName: "shell", Output: core.ToolOutput{
			Success: true,
			Content: "ok",
		}, DurationMs: 150},
		core.ToolCallFailed{SubID: sub, AgentID: agentID, CallID: core.NewCallID(), ToolName: "shell", Error: "command not found"},
		core.HierarchyUpdated{SubID: sub, Root: SampleAgentTree()},
		core.CheckpointSaved{SubID: sub, CheckpointID: core.NewCheckpointID(), Name: &name, Timestamp: time.Now().UTC()},
		core.CheckpointRestored{SubID: sub, CheckpointID: core.NewCheckpointID()},
		core.CheckpointList{SubID: sub, Checkpoints: []core.CheckpointMeta{
			{
				ID:        core.NewCheckpointID(),
				Name:      &name,
				Timestamp: time.Now().UTC(),
				SizeBytes: 1024,
				TaskID:    &taskID,
				Summary:   "first checkpoint",
			},
		}},
		core.PlanModeChanged{SubID: sub, Enabled: true, Granularity: core.GranularityDetailed},
		core.PlanCreated{SubID: sub, Plan: SampleTaskPlan()},
		core.Warning{SubID: sub, Message: "rate limit approaching", Details: &details},
		core.ErrorEvent{SubID: sub, Message: "model backend unreachable", Recoverable: true},
		core.UsageUpdate{SubID: sub, AgentID: &agentID, Usage: core.TokenUsage{InputTokens: 1000, OutputTokens: 500, TotalTokens: 1500, EstimatedCostUSD: &cost}},
	}
}
