package agent

import "fmt"

// DisabledError is returned when the invocation's agent config has the
// enabled flag switched off. Raised before any provider call.
type DisabledError struct {
	AgentID string
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("agent %s is not enabled", e.AgentID)
}

// NotEnabledError is returned when the agent id is missing from the
// project's enabled-agents list. Raised before any provider call.
type NotEnabledError struct {
	AgentID string
}

func (e *NotEnabledError) Error() string {
	return fmt.Sprintf("agent %s is not in enabled agents list", e.AgentID)
}

// UnknownAgentError is returned for agent ids no registry or routing
// table knows about.
type UnknownAgentError struct {
	AgentID string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent: %s", e.AgentID)
}

// ExecutionError wraps any failure after validation passes. It is the
// only error type that crosses the Execute boundary once preconditions
// hold; the call either returns a complete Response or this.
type ExecutionError struct {
	AgentID string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("agent %s execution failed: %v", e.AgentID, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
