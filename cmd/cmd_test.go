package cmd

import (
	"strings"
	"testing"

	"github.com/kairohq/kairo-agents/agents"
	"github.com/kairohq/kairo-agents/core/agent"
)

func TestOutputAgentListCoversRegistry(t *testing.T) {
	var buf strings.Builder

	if err := outputAgentList(&buf, agents.ListAvailable()); err != nil {
		t.Fatalf("outputAgentList: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("lines: got %d, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], "design-agent") {
		t.Errorf("lines[0]: got %q", lines[0])
	}
}

func TestResolveModelPrecedence(t *testing.T) {
	settings := agent.ProjectSettings{
		AgentModels: map[string]string{"design-agent": "claude-3-5-sonnet-20241022"},
	}

	runModel = "gemini-1.5-pro"
	defer func() { runModel = "" }()
	if got := resolveModel("design-agent", settings); got != "gemini-1.5-pro" {
		t.Errorf("flag override: got %q", got)
	}

	runModel = ""
	if got := resolveModel("design-agent", settings); got != "claude-3-5-sonnet-20241022" {
		t.Errorf("settings assignment: got %q", got)
	}
	if got := resolveModel("frontend-agent", settings); got != "" {
		t.Errorf("unassigned agent: got %q, want empty", got)
	}
}

func TestOutputProviderStatus(t *testing.T) {
	var buf strings.Builder

	outputProviderStatus(&buf, "anthropic", true)
	outputProviderStatus(&buf, "google", false)

	out := buf.String()
	if !strings.Contains(out, "ok") {
		t.Errorf("missing healthy marker: %q", out)
	}
	if !strings.Contains(out, "no credentials") {
		t.Errorf("missing unhealthy marker: %q", out)
	}
}
