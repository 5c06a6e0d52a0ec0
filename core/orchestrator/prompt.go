// Package orchestrator coordinates multi-agent conversations: it builds
// the main orchestration system prompt from project settings and streams
// the coordinated response through a resolved provider handle.
package orchestrator

import (
	"fmt"
	"strings"

	"github.com/kairohq/kairo-agents/core/agent"
)

// defaultAgentRoster is advertised when the project has no enabled
// agents configured.
var defaultAgentRoster = []string{"frontend-agent", "design-agent", "performance-agent"}

// SystemPrompt renders the Main Orchestration Agent prompt for the
// given project settings. Unset fields fall back to the platform
// defaults: web-app, intelligent mode, the three-agent roster.
func SystemPrompt(settings agent.ProjectSettings) string {
	roster := settings.EnabledAgents
	if len(roster) == 0 {
		roster = defaultAgentRoster
	}

	var agents strings.Builder
	for i, id := range roster {
		if i > 0 {
			agents.WriteString("\n")
		}
		fmt.Fprintf(&agents, "- %s", id)
	}

	projectType := settings.ProjectType
	if projectType == "" {
		projectType = agent.ProjectTypeWebApp
	}
	mode := settings.OrchestrationMode
	if mode == "" {
		mode = agent.OrchestrationIntelligent
	}

	return fmt.Sprintf(`You are the Main Orchestration Agent for Kairo, a multi-agent development platform.

Your role is to coordinate specialized agents to help users build and improve their projects. You have access to these agents:
%s

Project Configuration:
- Type: %s
- Orchestration Mode: %s
- Enabled Agents: %d agents

When responding:
1. Analyze the user's request
2. Determine which agents should handle different aspects
3. Provide a coordinated response that mentions which agents you're leveraging
4. Use this format when delegating: [agent-name] for specific tasks

Example: "I'll coordinate with [design-agent] for the UI layout and [performance-agent] for optimization."

Be helpful, professional, and always explain your orchestration decisions.`,
		agents.String(), projectType, mode, len(roster))
}
