package agent

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/kairohq/kairo-agents/core/providers"
)

// Every per-agent generation call uses the same sampling settings; only
// the orchestrator layer differs.
const (
	executeTemperature = 0.7
	executeMaxTokens   = 2000
)

// Spec is the value object describing one specialist agent: identity,
// static prompt text, and its enhancement policy. Specs are immutable and
// shared freely across goroutines.
type Spec struct {
	// ID is the registry key, e.g. "design-agent".
	ID string

	// Description is display text for registry listings. It has no
	// behavioral effect.
	Description string

	// BasePrompt is the agent's fixed system prompt.
	BasePrompt string

	// ContextualPrompt appends agent-specific, project-conditioned
	// guidance after the shared project-context block. May be nil.
	ContextualPrompt func(ProjectSettings) string

	// Keywords gate request enhancement: if the user message already
	// mentions one (case-insensitively), it passes through untouched.
	Keywords []string

	// EnhancementSuffix is appended to keyword-less messages. It must
	// contain at least one of Keywords so enhancement is idempotent.
	EnhancementSuffix string
}

// Enhance applies the agent's keyword heuristic: messages lacking any
// domain vocabulary get the fixed suffix appended, others pass through.
// Deterministic and idempotent.
func (s Spec) Enhance(message string) string {
	lower := strings.ToLower(message)
	for _, keyword := range s.Keywords {
		if strings.Contains(lower, keyword) {
			return message
		}
	}
	return message + "\n\n" + s.EnhancementSuffix
}

// SystemPrompt concatenates the base prompt, the contextual block, and
// the custom-instructions block, blank-line separated. Empty segments are
// dropped so no stray separators appear.
func (s Spec) SystemPrompt(actx Context) string {
	contextual := ContextualPrompt(actx.ProjectSettings)
	if s.ContextualPrompt != nil {
		contextual += s.ContextualPrompt(actx.ProjectSettings)
	}

	segments := []string{s.BasePrompt, contextual}
	if custom := actx.AgentConfig.CustomPrompt; custom != "" {
		segments = append(segments, "## Custom Instructions\n"+custom)
	}

	nonEmpty := segments[:0]
	for _, segment := range segments {
		if segment != "" {
			nonEmpty = append(nonEmpty, segment)
		}
	}

	return strings.Join(nonEmpty, "\n\n")
}

// ContextualPrompt renders the shared project-context block every agent
// receives: project type, the CMS instance when configured, and any SDK
// guidelines. SDK names are emitted in sorted order so output is stable.
func ContextualPrompt(settings ProjectSettings) string {
	var b strings.Builder

	b.WriteString("## Project Context\n")
	fmt.Fprintf(&b, "- Project Type: %s\n", settings.ProjectType)

	if settings.CMSInstanceGUID != "" {
		fmt.Fprintf(&b, "- Agility CMS GUID: %s\n", settings.CMSInstanceGUID)
	}

	names := make([]string, 0, len(settings.SDKRules))
	for name, rule := range settings.SDKRules {
		if rule != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		sort.Strings(names)
		b.WriteString("\n## SDK Guidelines\n")
		for _, name := range names {
			fmt.Fprintf(&b, "### %s\n%s\n\n", strings.ToUpper(name), settings.SDKRules[name])
		}
	}

	return b.String()
}

// ValidateContext checks static preconditions before any provider call.
// The enabled-flag check runs first; error messages depend on the order.
func ValidateContext(s Spec, actx Context) error {
	if !actx.AgentConfig.Enabled {
		return &DisabledError{AgentID: s.ID}
	}
	if !slices.Contains(actx.ProjectSettings.EnabledAgents, s.ID) {
		return &NotEnabledError{AgentID: s.ID}
	}
	return nil
}

// Resolver routes a model identifier plus optional credentials to a
// provider-bound handle. Resolution never fails and never validates
// credentials.
type Resolver interface {
	Resolve(modelID string, creds providers.Credentials) providers.ModelHandle
}

// Runner executes agent specs against a resolver. It holds no mutable
// state; one Runner serves concurrent executions.
type Runner struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewRunner creates a runner. A nil logger falls back to slog.Default().
func NewRunner(resolver Resolver, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{resolver: resolver, logger: logger}
}

// Execute runs one agent request end to end: validate, enhance, resolve,
// compose the system prompt, perform a single non-streaming generation,
// and extract structured output. Failures after validation are wrapped in
// *ExecutionError; no retries happen at this layer.
func (r *Runner) Execute(ctx context.Context, spec Spec, actx Context, userMessage string) (*Response, error) {
	if err := ValidateContext(spec, actx); err != nil {
		return nil, err
	}

	enhanced := spec.Enhance(userMessage)
	handle := r.resolver.Resolve(actx.AgentConfig.Model, Credentials(actx.ProjectSettings.APIKeys))
	systemPrompt := spec.SystemPrompt(actx)

	r.logger.Debug("dispatching agent request",
		"agent", spec.ID,
		"provider", handle.Provider(),
		"model", handle.Model())

	resp, err := handle.Generate(ctx, &providers.GenerateRequest{
		System:      systemPrompt,
		Prompt:      enhanced,
		Temperature: executeTemperature,
		MaxTokens:   executeMaxTokens,
	})
	if err != nil {
		r.logger.Error("agent execution failed", "agent", spec.ID, "error", err)
		return nil, &ExecutionError{AgentID: spec.ID, Err: err}
	}

	return &Response{
		AgentID:               spec.ID,
		Response:              resp.Text,
		ActionItems:           ExtractActionItems(resp.Text),
		NextSteps:             ExtractNextSteps(resp.Text),
		CollaborationRequests: ExtractCollaborationRequests(resp.Text),
	}, nil
}

// Credentials converts the settings-level key bundle into the provider
// layer's type.
func Credentials(keys APIKeys) providers.Credentials {
	return providers.Credentials{
		OpenAI:    keys.OpenAI,
		Anthropic: keys.Anthropic,
		Google:    keys.Google,
		Azure:     keys.Azure,
	}
}
