// Package agents is the registry of Kairo's specialist agents: a fixed,
// compile-time table mapping agent ids to their dispatch specs.
package agents

import (
	"context"

	"github.com/kairohq/kairo-agents/agents/content"
	"github.com/kairohq/kairo-agents/agents/deployment"
	"github.com/kairohq/kairo-agents/agents/design"
	"github.com/kairohq/kairo-agents/agents/frontend"
	"github.com/kairohq/kairo-agents/agents/performance"
	"github.com/kairohq/kairo-agents/agents/pr"
	"github.com/kairohq/kairo-agents/agents/responsive"
	"github.com/kairohq/kairo-agents/agents/security"
	testingagent "github.com/kairohq/kairo-agents/agents/testing"
	"github.com/kairohq/kairo-agents/agents/translation"
	"github.com/kairohq/kairo-agents/core/agent"
)

// registry holds every spec in registration order. The order is part of
// the contract: ListAvailable reports it as-is.
var registry = []agent.Spec{
	design.Spec(),
	frontend.Spec(),
	content.Spec(),
	testingagent.Spec(),
	performance.Spec(),
	security.Spec(),
	responsive.Spec(),
	deployment.Spec(),
	translation.Spec(),
	pr.Spec(),
}

var byID = func() map[string]agent.Spec {
	m := make(map[string]agent.Spec, len(registry))
	for _, spec := range registry {
		m[spec.ID] = spec
	}
	return m
}()

// Create looks up the spec for an agent id.
func Create(agentID string) (agent.Spec, error) {
	spec, ok := byID[agentID]
	if !ok {
		return agent.Spec{}, &agent.UnknownAgentError{AgentID: agentID}
	}
	return spec, nil
}

// Execute is the single-shot convenience composition of Create and
// Runner.Execute.
func Execute(ctx context.Context, runner *agent.Runner, agentID string, actx agent.Context, message string) (*agent.Response, error) {
	spec, err := Create(agentID)
	if err != nil {
		return nil, err
	}
	return runner.Execute(ctx, spec, actx, message)
}

// ListAvailable returns all registered agent ids in registration order.
func ListAvailable() []string {
	ids := make([]string, len(registry))
	for i, spec := range registry {
		ids[i] = spec.ID
	}
	return ids
}

// IsAvailable reports whether an id is registered. Accepts arbitrary
// strings without panicking.
func IsAvailable(agentID string) bool {
	_, ok := byID[agentID]
	return ok
}

// Describe returns the display description for an agent id, empty when
// unknown.
func Describe(agentID string) string {
	return byID[agentID].Description
}
