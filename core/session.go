package core

import (
	"encoding/json"
	"fmt"
)

// SessionConfig configures a session. It is replaced wholesale on
// reconfiguration (ConfigureSession), never merged field by field. Use
// SessionSettings for knobs that may change mid-session.
type SessionConfig struct {
	// Working directory for agents.
	Cwd string `json:"cwd,omitempty"`
	// Model used by the orchestrator.
	Model string `json:"model,omitempty"`
	// Custom system instructions.
	Instructions string `json:"instructions,omitempty"`
	// MCP servers to connect.
	McpServers []McpServerConfig `json:"mcp_servers,omitempty"`
	// Approval mode for tool execution.
	ApprovalMode ApprovalMode `json:"approval_mode"`
	// Sandbox policy.
	Sandbox SandboxConfig `json:"sandbox"`
	// Max agents running in parallel.
	MaxParallelAgents int `json:"max_parallel_agents"`
}

// DefaultSessionConfig returns the documented defaults: risk-based approval,
// sandbox enabled, eight parallel agents. The approval and sandbox defaults
// are safety relevant; decode paths must not weaken them.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ApprovalMode:      ApprovalRiskBased,
		Sandbox:           DefaultSandboxConfig(),
		MaxParallelAgents: 8,
	}
}

// UnmarshalJSON decodes with defaults-then-overlay so absent fields pick up
// the documented defaults.
func (c *SessionConfig) UnmarshalJSON(data []byte) error {
	type sessionConfig SessionConfig
	tmp := sessionConfig(DefaultSessionConfig())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = SessionConfig(tmp)
	return nil
}

// SessionSettings are runtime knobs modifiable without a full session
// reconfigure. Updating settings never invalidates the session.
type SessionSettings struct {
	// Show rate limit info in the UI.
	ShowRateLimit bool `json:"show_rate_limit"`
	// Override for the number of parallel subagents. Nil means engine default.
	SubagentConcurrency *int `json:"subagent_concurrency,omitempty"`
	// Plan mode granularity.
	PlanGranularity PlanGranularity `json:"plan_granularity"`
}

// DefaultSessionSettings returns settings with automatic plan granularity.
func DefaultSessionSettings() SessionSettings {
	return SessionSettings{PlanGranularity: GranularityAuto}
}

// UnmarshalJSON applies the plan granularity default for absent fields.
func (s *SessionSettings) UnmarshalJSON(data []byte) error {
	type sessionSettings SessionSettings
	tmp := sessionSettings(DefaultSessionSettings())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*s = SessionSettings(tmp)
	return nil
}

// ApprovalMode selects when tool execution requires human approval.
type ApprovalMode string

const (
	// ApprovalAlways requires approval for every tool call.
	ApprovalAlways ApprovalMode = "always"
	// ApprovalNever disables approval gating entirely. Dangerous.
	ApprovalNever ApprovalMode = "never"
	// ApprovalRiskBased gates on the call's RiskLevel. The default.
	ApprovalRiskBased ApprovalMode = "risk_based"
	// ApprovalCustom defers to externally defined policy rules.
	ApprovalCustom ApprovalMode = "custom"
)

// SandboxConfig describes the sandbox policy for tool execution.
type SandboxConfig struct {
	// Enabled toggles sandboxing. Defaults to true.
	Enabled bool `json:"enabled"`
	// Network access policy.
	Network NetworkPolicy `json:"network"`
	// Additional writable paths beyond the working directory.
	WritablePaths []string `json:"writable_paths,omitempty"`
	// Execution timeout in seconds. Nil means no timeout.
	TimeoutSecs *int64 `json:"timeout_secs,omitempty"`
}

// DefaultSandboxConfig returns an enabled sandbox with no network access.
func DefaultSandboxConfig() SandboxConfig {
	return SandboxConfig{Enabled: true, Network: NetworkPolicy{Kind: NetworkNone}}
}

// UnmarshalJSON decodes with defaults-then-overlay: decoding "{}" yields an
// enabled sandbox with network "none".
func (c *SandboxConfig) UnmarshalJSON(data []byte) error {
	type sandboxConfig SandboxConfig
	tmp := sandboxConfig(DefaultSandboxConfig())
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*c = SandboxConfig(tmp)
	return nil
}

// NetworkPolicyKind tags the network access policy variants.
type NetworkPolicyKind string

const (
	// NetworkNone permits no network access. The default.
	NetworkNone NetworkPolicyKind = "none"
	// NetworkLocalhost permits localhost only.
	NetworkLocalhost NetworkPolicyKind = "localhost"
	// NetworkAllowlist permits the listed hosts only.
	NetworkAllowlist NetworkPolicyKind = "allowlist"
	// NetworkFull permits unrestricted network access.
	NetworkFull NetworkPolicyKind = "full"
)

// NetworkPolicy is the sandbox network access policy. Unit kinds serialize as
// bare strings ("none", "localhost", "full"); the allowlist kind serializes
// as {"allowlist": ["host", ...]}.
type NetworkPolicy struct {
	Kind NetworkPolicyKind
	// Hosts is populated for NetworkAllowlist only.
	Hosts []string
}

// AllowlistPolicy builds an allowlist network policy for the given hosts.
func AllowlistPolicy(hosts ...string) NetworkPolicy {
	return NetworkPolicy{Kind: NetworkAllowlist, Hosts: hosts}
}

// MarshalJSON emits the tagged wire form. The zero value serializes as "none".
func (p NetworkPolicy) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case "", NetworkNone:
		return json.Marshal(string(NetworkNone))
	case NetworkLocalhost, NetworkFull:
		return json.Marshal(string(p.Kind))
	case NetworkAllowlist:
		hosts := p.Hosts
		if hosts == nil {
			hosts = []string{}
		}
		return json.Marshal(map[string][]string{string(NetworkAllowlist): hosts})
	default:
		return nil, fmt.Errorf("unknown network policy kind %q", p.Kind)
	}
}

// UnmarshalJSON accepts both the bare-string and allowlist object forms.
func (p *NetworkPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch kind := NetworkPolicyKind(s); kind {
		case NetworkNone, NetworkLocalhost, NetworkFull:
			*p = NetworkPolicy{Kind: kind}
			return nil
		default:
			return fmt.Errorf("unknown network policy %q", s)
		}
	}
	var obj map[string][]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("malformed network policy: %w", err)
	}
	hosts, ok := obj[string(NetworkAllowlist)]
	if !ok || len(obj) != 1 {
		return fmt.Errorf("malformed network policy object")
	}
	*p = NetworkPolicy{Kind: NetworkAllowlist, Hosts: hosts}
	return nil
}

// McpServerConfig configures an external MCP tool server. Only the transport
// shape is part of this contract; connecting is the engine's concern.
type McpServerConfig struct {
	// Unique identifier for this server.
	ID string `json:"id"`
	// Display name.
	Name string `json:"name"`
	// Transport type and parameters.
	Transport McpTransport `json:"transport"`
	// Environment variables to set for the server process.
	Env map[string]string `json:"env,omitempty"`
}

// McpTransportKind tags the MCP transport variants.
type McpTransportKind string

const (
	// McpTransportStdio runs the server as a child process over stdio.
	McpTransportStdio McpTransportKind = "stdio"
	// McpTransportSocket connects over a unix domain socket.
	McpTransportSocket McpTransportKind = "socket"
	// McpTransportHTTP connects over HTTP/SSE.
	McpTransportHTTP McpTransportKind = "http"
)

// McpTransport describes how to reach an MCP server. It is internally tagged
// on the wire: {"type": "stdio", "command": ..., "args": [...]} and so on.
type McpTransport struct {
	Kind McpTransportKind
	// Command and Args apply to the stdio kind.
	Command string
	Args    []string
	// Path applies to the socket kind.
	Path string
	// URL applies to the http kind.
	URL string
}

// StdioTransport builds a stdio MCP transport.
func StdioTransport(command string, args ...string) McpTransport {
	return McpTransport{Kind: McpTransportStdio, Command: command, Args: args}
}

// SocketTransport builds a unix socket MCP transport.
func SocketTransport(path string) McpTransport {
	return McpTransport{Kind: McpTransportSocket, Path: path}
}

// HTTPTransport builds an HTTP/SSE MCP transport.
func HTTPTransport(url string) McpTransport {
	return McpTransport{Kind: McpTransportHTTP, URL: url}
}

// MarshalJSON emits the internally tagged wire form for the active kind.
func (t McpTransport) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case McpTransportStdio:
		return json.Marshal(struct {
			Type    McpTransportKind `json:"type"`
			Command string           `json:"command"`
			Args    []string         `json:"args,omitempty"`
		}{t.Kind, t.Command, t.Args})
	case McpTransportSocket:
		return json.Marshal(struct {
			Type McpTransportKind `json:"type"`
			Path string           `json:"path"`
		}{t.Kind, t.Path})
	case McpTransportHTTP:
		return json.Marshal(struct {
			Type McpTransportKind `json:"type"`
			URL  string           `json:"url"`
		}{t.Kind, t.URL})
	default:
		return nil, fmt.Errorf("unknown mcp transport kind %q", t.Kind)
	}
}

// UnmarshalJSON dispatches on the "type" tag.
func (t *McpTransport) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    McpTransportKind `json:"type"`
		Command string           `json:"command"`
		Args    []string         `json:"args"`
		Path    string           `json:"path"`
		URL     string           `json:"url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case McpTransportStdio:
		*t = McpTransport{Kind: raw.Type, Command: raw.Command, Args: raw.Args}
	case McpTransportSocket:
		*t = McpTransport{Kind: raw.Type, Path: raw.Path}
	case McpTransportHTTP:
		*t = McpTransport{Kind: raw.Type, URL: raw.URL}
	default:
		return fmt.Errorf("unknown mcp transport type %q", raw.Type)
	}
	return nil
}
