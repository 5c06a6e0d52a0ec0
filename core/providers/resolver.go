package providers

import (
	"fmt"
	"strings"
)

// ModelTable pins the platform's known model ids per provider role.
type ModelTable struct {
	AnthropicCoding    string `yaml:"anthropic_coding"`
	AnthropicReasoning string `yaml:"anthropic_reasoning"`
	AnthropicFast      string `yaml:"anthropic_fast"`

	GoogleReasoning  string `yaml:"google_reasoning"`
	GoogleMultimodal string `yaml:"google_multimodal"`
	GoogleFast       string `yaml:"google_fast"`

	AzureFallback string `yaml:"azure_fallback"`
	AzureFast     string `yaml:"azure_fast"`
}

// DefaultModelTable returns the platform's pinned model ids.
func DefaultModelTable() ModelTable {
	return ModelTable{
		AnthropicCoding:    "claude-3-5-sonnet-20241022",
		AnthropicReasoning: "claude-3-7-sonnet-20250219",
		AnthropicFast:      "claude-3-5-haiku-20241022",

		GoogleReasoning:  "gemini-2.0-flash-exp",
		GoogleMultimodal: "gemini-1.5-pro",
		GoogleFast:       "gemini-1.5-flash",

		AzureFallback: "gpt-4o",
		AzureFast:     "gpt-4o-mini",
	}
}

// Config is the resolver's immutable process-level configuration:
// default credentials, the Azure endpoint, and the pinned model table.
// Built once at startup and passed in; there is no package-level state.
type Config struct {
	Defaults      Credentials `yaml:"defaults"`
	AzureEndpoint string      `yaml:"azure_endpoint"`
	Models        ModelTable  `yaml:"models"`
}

// Resolver maps model identifiers and agent/task pairs to provider-bound
// handles. Stateless after construction; safe for concurrent use.
type Resolver struct {
	config Config
}

// NewResolver builds a resolver. Unset model table entries fall back to
// the pinned defaults.
func NewResolver(config Config) *Resolver {
	defaults := DefaultModelTable()
	fillEmpty(&config.Models.AnthropicCoding, defaults.AnthropicCoding)
	fillEmpty(&config.Models.AnthropicReasoning, defaults.AnthropicReasoning)
	fillEmpty(&config.Models.AnthropicFast, defaults.AnthropicFast)
	fillEmpty(&config.Models.GoogleReasoning, defaults.GoogleReasoning)
	fillEmpty(&config.Models.GoogleMultimodal, defaults.GoogleMultimodal)
	fillEmpty(&config.Models.GoogleFast, defaults.GoogleFast)
	fillEmpty(&config.Models.AzureFallback, defaults.AzureFallback)
	fillEmpty(&config.Models.AzureFast, defaults.AzureFast)

	return &Resolver{config: config}
}

func fillEmpty(target *string, fallback string) {
	if *target == "" {
		*target = fallback
	}
}

// Resolve routes a free-text model identifier to a handle. Matching is
// substring-based, in fixed precedence: claude, then gpt/4o, then
// gemini; anything else pins to the Anthropic coding model. Caller keys
// take priority over process defaults. Credentials are never validated
// here — a keyless handle fails at call time with *AuthError.
func (r *Resolver) Resolve(modelID string, creds Credentials) ModelHandle {
	keys := r.merged(creds)

	switch {
	case strings.Contains(modelID, "claude"):
		return NewAnthropicHandle(modelID, keys.Anthropic)
	case strings.Contains(modelID, "gpt") || strings.Contains(modelID, "4o"):
		return NewOpenAIHandle(modelID, keys.OpenAI)
	case strings.Contains(modelID, "gemini"):
		return NewGoogleHandle(modelID, keys.Google)
	default:
		return NewAnthropicHandle(r.config.Models.AnthropicCoding, keys.Anthropic)
	}
}

// agentTaskRoutes is the static (agent, task) designation table. Agents
// missing from it (translation, pr) are unknown to task routing and hard
// errors, matching the registry's historical behavior.
var agentTaskRoutes = map[string]map[string]routeKind{
	"design-agent":      {"reasoning": routeGoogleReasoning, "coding": routeAnthropicCoding},
	"frontend-agent":    {"primary": routeAnthropicCoding, "planning": routeGoogleReasoning},
	"content-agent":     {"strategy": routeGoogleReasoning, "implementation": routeAnthropicCoding},
	"testing-agent":     {"generation": routeAnthropicCoding, "strategy": routeGoogleReasoning},
	"performance-agent": {"analysis": routeGoogleReasoning, "optimization": routeAnthropicCoding},
	"security-agent":    {"code": routeAnthropicCoding, "analysis": routeGoogleReasoning},
	"responsive-agent":  {"code": routeAnthropicCoding, "planning": routeGoogleReasoning},
	"deployment-agent":  {"planning": routeGoogleReasoning, "scripts": routeAnthropicCoding},
}

type routeKind int

const (
	routeAnthropicCoding routeKind = iota
	routeGoogleReasoning
)

// reasoningTasks are the task names that fall back to the Google
// reasoning model when an (agent, task) pair has no designated route.
var reasoningTasks = map[string]bool{
	"reasoning": true,
	"strategy":  true,
	"planning":  true,
	"analysis":  true,
}

// ResolveForAgentTask looks up the designated provider for an (agent,
// task) pair. Unknown tasks fall back by flavor: reasoning-like tasks go
// to the Google reasoning model, everything else to the Anthropic coding
// model. Unknown agent ids are a hard error.
func (r *Resolver) ResolveForAgentTask(agentID, task string, creds Credentials) (ModelHandle, error) {
	routes, ok := agentTaskRoutes[agentID]
	if !ok {
		return nil, &UnknownAgentError{AgentID: agentID}
	}

	kind, ok := routes[task]
	if !ok {
		if reasoningTasks[task] {
			kind = routeGoogleReasoning
		} else {
			kind = routeAnthropicCoding
		}
	}

	keys := r.merged(creds)
	switch kind {
	case routeGoogleReasoning:
		return NewGoogleHandle(r.config.Models.GoogleReasoning, keys.Google), nil
	default:
		return NewAnthropicHandle(r.config.Models.AnthropicCoding, keys.Anthropic), nil
	}
}

// Fallback returns the Azure-hosted fallback handle, used when primary
// providers are exhausted or unavailable.
func (r *Resolver) Fallback(creds Credentials) ModelHandle {
	keys := r.merged(creds)
	return NewAzureHandle(r.config.Models.AzureFallback, keys.Azure, r.config.AzureEndpoint)
}

// Health reports per-provider liveness. A provider is healthy when a
// usable credential exists for it; no network round trip is made. Each
// probe is independent and the report itself never fails.
type Health struct {
	Anthropic bool `json:"anthropic"`
	Google    bool `json:"google"`
	Azure     bool `json:"azure"`
}

// HealthCheck probes each provider independently.
func (r *Resolver) HealthCheck(creds Credentials) Health {
	keys := r.merged(creds)
	return Health{
		Anthropic: keys.Anthropic != "",
		Google:    keys.Google != "",
		Azure:     keys.Azure != "",
	}
}

func (r *Resolver) merged(creds Credentials) Credentials {
	defaults := r.config.Defaults
	if creds.Anthropic == "" {
		creds.Anthropic = defaults.Anthropic
	}
	if creds.OpenAI == "" {
		creds.OpenAI = defaults.OpenAI
	}
	if creds.Google == "" {
		creds.Google = defaults.Google
	}
	if creds.Azure == "" {
		creds.Azure = defaults.Azure
	}
	return creds
}

// UnknownAgentError is returned by task routing for agent ids absent
// from the designation table.
type UnknownAgentError struct {
	AgentID string
}

func (e *UnknownAgentError) Error() string {
	return fmt.Sprintf("unknown agent: %s", e.AgentID)
}
