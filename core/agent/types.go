// Package agent defines the dispatch contract shared by every Kairo
// specialist agent: prompt composition, request enhancement, provider
// invocation, and structured response extraction.
package agent

// ProjectType selects the platform target a project is built for.
type ProjectType string

const (
	ProjectTypeWebApp    ProjectType = "web-app"
	ProjectTypeMobileApp ProjectType = "mobile-app"
)

// OrchestrationMode is caller-level policy for selecting agents. The core
// carries it through but never interprets it.
type OrchestrationMode string

const (
	OrchestrationIntelligent OrchestrationMode = "intelligent"
	OrchestrationManual      OrchestrationMode = "manual"
	OrchestrationSequential  OrchestrationMode = "sequential"
)

// APIKeys holds optional caller-supplied provider credentials.
type APIKeys struct {
	OpenAI    string `json:"openai,omitempty" yaml:"openai,omitempty"`
	Anthropic string `json:"anthropic,omitempty" yaml:"anthropic,omitempty"`
	Google    string `json:"google,omitempty" yaml:"google,omitempty"`
	Azure     string `json:"azure,omitempty" yaml:"azure,omitempty"`
}

// EnvironmentType classifies a deployment environment.
type EnvironmentType string

const (
	EnvLocal      EnvironmentType = "local"
	EnvStaging    EnvironmentType = "staging"
	EnvProduction EnvironmentType = "production"
	EnvCustom     EnvironmentType = "custom"
)

// Environment is a deployment target record. Interpreted by callers
// (settings UI, deployment tooling), not by the core.
type Environment struct {
	ID   string          `json:"id" yaml:"id"`
	Name string          `json:"name" yaml:"name"`
	URL  string          `json:"url" yaml:"url"`
	Type EnvironmentType `json:"type" yaml:"type"`
}

// MCPServer describes an MCP server registration. Interpreted by an MCP
// client out of scope of this core.
type MCPServer struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Command     string   `json:"command" yaml:"command"`
	Args        []string `json:"args" yaml:"args"`
	Enabled     bool     `json:"enabled" yaml:"enabled"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// ProjectSettings is the caller-owned configuration passed by value into
// every agent invocation. The core never mutates it.
type ProjectSettings struct {
	// CMSInstanceGUID identifies the Agility CMS instance, when one is
	// connected.
	CMSInstanceGUID string `json:"cmsInstanceGuid,omitempty" yaml:"cms_instance_guid,omitempty"`

	Environments []Environment `json:"environments" yaml:"environments"`

	// EnabledAgents lists the agent ids the project has switched on.
	EnabledAgents []string `json:"enabledAgents" yaml:"enabled_agents"`

	OrchestrationMode OrchestrationMode `json:"orchestrationMode" yaml:"orchestration_mode"`
	ProjectType       ProjectType       `json:"projectType" yaml:"project_type"`

	// AgentModels maps agent id to the model identifier it should use.
	AgentModels map[string]string `json:"agentModels" yaml:"agent_models"`

	ReasoningModel string `json:"reasoningModel" yaml:"reasoning_model"`

	// AgentPrompts maps agent id to a free-text custom prompt override.
	AgentPrompts map[string]string `json:"agentPrompts" yaml:"agent_prompts"`

	APIKeys APIKeys `json:"apiKeys" yaml:"api_keys"`

	MCPServers []MCPServer `json:"mcpServers" yaml:"mcp_servers"`

	// SDKRules maps an SDK name (fetch, management, sync, apps, nextjs)
	// to free-text usage rules surfaced in every system prompt.
	SDKRules map[string]string `json:"sdkRules" yaml:"sdk_rules"`
}

// Config is the per-invocation agent descriptor supplied by the caller.
type Config struct {
	ID           string `json:"id" yaml:"id"`
	Model        string `json:"model" yaml:"model"`
	CustomPrompt string `json:"customPrompt,omitempty" yaml:"custom_prompt,omitempty"`
	Enabled      bool   `json:"enabled" yaml:"enabled"`
}

// TaskKind distinguishes how an invocation was initiated.
type TaskKind string

const (
	TaskInitial       TaskKind = "initial"
	TaskFollowup      TaskKind = "followup"
	TaskCollaboration TaskKind = "collaboration"
)

// HistoryMessage is one entry of prior conversation history.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TaskContext carries optional invocation history and collaboration state.
type TaskContext struct {
	Type                TaskKind         `json:"type"`
	PreviousMessages    []HistoryMessage `json:"previousMessages,omitempty"`
	CollaboratingAgents []string         `json:"collaboratingAgents,omitempty"`
}

// Context is the sole input to an agent execution. Built fresh per
// request and never persisted.
type Context struct {
	ProjectSettings ProjectSettings `json:"projectSettings"`
	AgentConfig     Config          `json:"agentConfig"`
	TaskContext     *TaskContext    `json:"taskContext,omitempty"`
}

// ActionType tags an extracted action item.
type ActionType string

const (
	ActionCodeChange           ActionType = "code_change"
	ActionFileCreate           ActionType = "file_create"
	ActionDependencyAdd        ActionType = "dependency_add"
	ActionCollaborationRequest ActionType = "collaboration_request"
)

// ActionItem is a structured directive extracted from response text.
// Details is an empty record today; extraction never populates it.
type ActionItem struct {
	Type        ActionType        `json:"type"`
	Description string            `json:"description"`
	Details     map[string]string `json:"details"`
}

// Priority ranks a collaboration request.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// CollaborationRequest is a hand-off signal naming another agent.
type CollaborationRequest struct {
	TargetAgent string   `json:"targetAgent"`
	Context     string   `json:"context"`
	Priority    Priority `json:"priority"`
}

// Response is the immutable output of one agent execution. The structured
// slices are nil, not empty, when the response text carried no matching
// tags; callers rely on that distinction.
type Response struct {
	AgentID               string                 `json:"agentId"`
	Response              string                 `json:"response"`
	ActionItems           []ActionItem           `json:"actionItems,omitempty"`
	NextSteps             []string               `json:"nextSteps,omitempty"`
	CollaborationRequests []CollaborationRequest `json:"collaborationRequests,omitempty"`
}
