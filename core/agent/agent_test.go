package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kairohq/kairo-agents/core/providers"
)

var testSpec = Spec{
	ID:          "design-agent",
	Description: "UI/UX design specialist",
	BasePrompt:  "You are a design specialist.",
	Keywords:    []string{"color", "layout", "component"},
	EnhancementSuffix: "Focus on design aspects including visual hierarchy, " +
		"color schemes, and component layout.",
}

func TestEnhancePassesThroughOnKeyword(t *testing.T) {
	message := "adjust the layout of the pricing table"

	if got := testSpec.Enhance(message); got != message {
		t.Errorf("Enhance: got %q, want unchanged message", got)
	}
}

func TestEnhanceIsCaseInsensitive(t *testing.T) {
	message := "the COLOR feels off"

	if got := testSpec.Enhance(message); got != message {
		t.Errorf("Enhance: got %q, want unchanged message", got)
	}
}

func TestEnhanceAppendsSuffix(t *testing.T) {
	message := "make the button nicer"

	got := testSpec.Enhance(message)

	want := message + "\n\n" + testSpec.EnhancementSuffix
	if got != want {
		t.Errorf("Enhance: got %q, want %q", got, want)
	}
}

func TestEnhanceIsIdempotent(t *testing.T) {
	enhanced := testSpec.Enhance("make the button nicer")

	if got := testSpec.Enhance(enhanced); got != enhanced {
		t.Error("enhancing an enhanced message changed it again")
	}
}

func TestSystemPromptComposition(t *testing.T) {
	actx := Context{
		ProjectSettings: ProjectSettings{ProjectType: ProjectTypeWebApp},
		AgentConfig:     Config{CustomPrompt: "Prefer Tailwind utilities."},
	}

	got := testSpec.SystemPrompt(actx)

	// The contextual block carries its own trailing newline; the joiner
	// adds the blank line between segments.
	want := "You are a design specialist.\n\n" +
		"## Project Context\n- Project Type: web-app\n" +
		"\n\n## Custom Instructions\nPrefer Tailwind utilities."
	if got != want {
		t.Errorf("SystemPrompt:\ngot  %q\nwant %q", got, want)
	}
}

func TestSystemPromptWithoutCustomInstructions(t *testing.T) {
	actx := Context{
		ProjectSettings: ProjectSettings{ProjectType: ProjectTypeMobileApp},
	}

	got := testSpec.SystemPrompt(actx)

	if strings.Contains(got, "## Custom Instructions") {
		t.Errorf("SystemPrompt included custom block with no custom prompt: %q", got)
	}
	if !strings.HasSuffix(got, "- Project Type: mobile-app\n") {
		t.Errorf("SystemPrompt missing project context tail: %q", got)
	}
}

func TestContextualPromptIncludesCMSInstance(t *testing.T) {
	got := ContextualPrompt(ProjectSettings{
		ProjectType:     ProjectTypeWebApp,
		CMSInstanceGUID: "abc-123",
	})

	if !strings.Contains(got, "- Agility CMS GUID: abc-123\n") {
		t.Errorf("ContextualPrompt missing CMS line: %q", got)
	}
}

func TestContextualPromptSDKRulesSorted(t *testing.T) {
	got := ContextualPrompt(ProjectSettings{
		ProjectType: ProjectTypeWebApp,
		SDKRules: map[string]string{
			"sync":  "Use the sync SDK for builds.",
			"fetch": "Use the fetch SDK for runtime reads.",
		},
	})

	fetchIdx := strings.Index(got, "### FETCH")
	syncIdx := strings.Index(got, "### SYNC")
	if fetchIdx == -1 || syncIdx == -1 {
		t.Fatalf("ContextualPrompt missing SDK sections: %q", got)
	}
	if fetchIdx > syncIdx {
		t.Error("SDK sections not in sorted name order")
	}
}

func TestContextualPromptSkipsEmptyRules(t *testing.T) {
	got := ContextualPrompt(ProjectSettings{
		ProjectType: ProjectTypeWebApp,
		SDKRules:    map[string]string{"fetch": ""},
	})

	if strings.Contains(got, "## SDK Guidelines") {
		t.Errorf("ContextualPrompt emitted guidelines for empty rules: %q", got)
	}
}

func TestValidateContextDisabledWinsOverNotEnabled(t *testing.T) {
	actx := Context{
		ProjectSettings: ProjectSettings{EnabledAgents: nil},
		AgentConfig:     Config{ID: "design-agent", Enabled: false},
	}

	err := ValidateContext(testSpec, actx)

	var disabled *DisabledError
	if !errors.As(err, &disabled) {
		t.Fatalf("err: got %v, want *DisabledError", err)
	}
}

func TestValidateContextNotEnabled(t *testing.T) {
	actx := Context{
		ProjectSettings: ProjectSettings{EnabledAgents: []string{"frontend-agent"}},
		AgentConfig:     Config{ID: "design-agent", Enabled: true},
	}

	err := ValidateContext(testSpec, actx)

	var notEnabled *NotEnabledError
	if !errors.As(err, &notEnabled) {
		t.Fatalf("err: got %v, want *NotEnabledError", err)
	}
}

// fakeHandle records the request it receives and returns canned output.
type fakeHandle struct {
	provider providers.ProviderType
	model    string
	text     string
	err      error
	lastReq  *providers.GenerateRequest
}

func (f *fakeHandle) Provider() providers.ProviderType { return f.provider }
func (f *fakeHandle) Model() string                    { return f.model }

func (f *fakeHandle) Generate(ctx context.Context, req *providers.GenerateRequest) (*providers.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &providers.GenerateResponse{Text: f.text, Model: f.model}, nil
}

func (f *fakeHandle) Stream(ctx context.Context, req *providers.GenerateRequest, handler providers.StreamHandler) error {
	f.lastReq = req
	if f.err != nil {
		return f.err
	}
	return handler(&providers.StreamChunk{Type: providers.ChunkTypeText, Text: f.text})
}

type fakeResolver struct {
	handle      *fakeHandle
	lastModelID string
	lastCreds   providers.Credentials
}

func (f *fakeResolver) Resolve(modelID string, creds providers.Credentials) providers.ModelHandle {
	f.lastModelID = modelID
	f.lastCreds = creds
	return f.handle
}

func enabledContext() Context {
	return Context{
		ProjectSettings: ProjectSettings{
			ProjectType:   ProjectTypeWebApp,
			EnabledAgents: []string{"design-agent"},
			APIKeys:       APIKeys{Anthropic: "sk-test"},
		},
		AgentConfig: Config{
			ID:      "design-agent",
			Model:   "claude-3-5-sonnet-20241022",
			Enabled: true,
		},
	}
}

func TestRunnerExecute(t *testing.T) {
	handle := &fakeHandle{
		provider: providers.ProviderTypeAnthropic,
		model:    "claude-3-5-sonnet-20241022",
		text: "I'll restyle it.\n" +
			"[ACTION:code_change] update button style\n" +
			"[COLLABORATE:frontend-agent] implement new CSS",
	}
	resolver := &fakeResolver{handle: handle}
	runner := NewRunner(resolver, nil)

	resp, err := runner.Execute(context.Background(), testSpec, enabledContext(), "make the button nicer")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if resp.AgentID != "design-agent" {
		t.Errorf("AgentID: got %q", resp.AgentID)
	}
	if len(resp.ActionItems) != 1 || resp.ActionItems[0].Description != "update button style" {
		t.Errorf("ActionItems: got %+v", resp.ActionItems)
	}
	if len(resp.CollaborationRequests) != 1 || resp.CollaborationRequests[0].TargetAgent != "frontend-agent" {
		t.Errorf("CollaborationRequests: got %+v", resp.CollaborationRequests)
	}
	if resp.NextSteps != nil {
		t.Errorf("NextSteps: got %v, want nil", resp.NextSteps)
	}

	if resolver.lastModelID != "claude-3-5-sonnet-20241022" {
		t.Errorf("resolved model: got %q", resolver.lastModelID)
	}
	if resolver.lastCreds.Anthropic != "sk-test" {
		t.Errorf("resolved credentials: got %+v", resolver.lastCreds)
	}

	// The keyword-less message gets the enhancement suffix before dispatch.
	wantPrompt := "make the button nicer\n\n" + testSpec.EnhancementSuffix
	if handle.lastReq.Prompt != wantPrompt {
		t.Errorf("Prompt: got %q, want %q", handle.lastReq.Prompt, wantPrompt)
	}
	if handle.lastReq.Temperature != executeTemperature {
		t.Errorf("Temperature: got %v, want %v", handle.lastReq.Temperature, executeTemperature)
	}
	if handle.lastReq.MaxTokens != executeMaxTokens {
		t.Errorf("MaxTokens: got %d, want %d", handle.lastReq.MaxTokens, executeMaxTokens)
	}
}

func TestRunnerExecuteValidationSkipsProvider(t *testing.T) {
	resolver := &fakeResolver{handle: &fakeHandle{}}
	runner := NewRunner(resolver, nil)

	actx := enabledContext()
	actx.AgentConfig.Enabled = false

	_, err := runner.Execute(context.Background(), testSpec, actx, "hello")

	var disabled *DisabledError
	if !errors.As(err, &disabled) {
		t.Fatalf("err: got %v, want *DisabledError", err)
	}
	if resolver.lastModelID != "" {
		t.Error("resolver was called despite validation failure")
	}
}

func TestRunnerExecuteWrapsProviderError(t *testing.T) {
	providerErr := &providers.AuthError{Provider: providers.ProviderTypeAnthropic}
	resolver := &fakeResolver{handle: &fakeHandle{err: providerErr}}
	runner := NewRunner(resolver, nil)

	_, err := runner.Execute(context.Background(), testSpec, enabledContext(), "make the button nicer")

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("err: got %v, want *ExecutionError", err)
	}
	if execErr.AgentID != "design-agent" {
		t.Errorf("AgentID: got %q", execErr.AgentID)
	}
	if !errors.Is(err, providerErr) {
		t.Error("ExecutionError does not unwrap to the provider error")
	}
}
