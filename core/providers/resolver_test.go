package providers

import (
	"errors"
	"testing"
)

func newTestResolver() *Resolver {
	return NewResolver(Config{
		Defaults: Credentials{
			Anthropic: "default-anthropic",
			OpenAI:    "default-openai",
			Google:    "default-google",
			Azure:     "default-azure",
		},
		AzureEndpoint: "https://example.openai.azure.com",
	})
}

func TestResolveSubstringRouting(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		modelID      string
		wantProvider ProviderType
		wantModel    string
	}{
		{"claude-3-5-sonnet-20241022", ProviderTypeAnthropic, "claude-3-5-sonnet-20241022"},
		{"gpt-4-turbo", ProviderTypeOpenAI, "gpt-4-turbo"},
		{"4o-preview", ProviderTypeOpenAI, "4o-preview"},
		{"gemini-1.5-pro", ProviderTypeGoogle, "gemini-1.5-pro"},
		{"mystery-model", ProviderTypeAnthropic, "claude-3-5-sonnet-20241022"},
		{"", ProviderTypeAnthropic, "claude-3-5-sonnet-20241022"},
	}

	for _, tt := range tests {
		handle := resolver.Resolve(tt.modelID, Credentials{})
		if handle.Provider() != tt.wantProvider {
			t.Errorf("Resolve(%q).Provider: got %s, want %s", tt.modelID, handle.Provider(), tt.wantProvider)
		}
		if handle.Model() != tt.wantModel {
			t.Errorf("Resolve(%q).Model: got %s, want %s", tt.modelID, handle.Model(), tt.wantModel)
		}
	}
}

func TestResolveAnthropicPrecedesOpenAI(t *testing.T) {
	// A hypothetical id matching both "claude" and "4o" must route to
	// Anthropic; the claude check runs first.
	handle := newTestResolver().Resolve("claude-4o-hybrid", Credentials{})

	if handle.Provider() != ProviderTypeAnthropic {
		t.Errorf("Provider: got %s, want %s", handle.Provider(), ProviderTypeAnthropic)
	}
}

func TestResolveCallerKeysWinOverDefaults(t *testing.T) {
	handle := newTestResolver().Resolve("claude-3-5-haiku-20241022", Credentials{Anthropic: "caller-key"})

	anthropic, ok := handle.(*AnthropicHandle)
	if !ok {
		t.Fatalf("handle: got %T, want *AnthropicHandle", handle)
	}
	if anthropic.apiKey != "caller-key" {
		t.Errorf("apiKey: got %q, want caller-key", anthropic.apiKey)
	}
}

func TestResolveFallsBackToDefaultKeys(t *testing.T) {
	handle := newTestResolver().Resolve("gemini-1.5-flash", Credentials{})

	google, ok := handle.(*GoogleHandle)
	if !ok {
		t.Fatalf("handle: got %T, want *GoogleHandle", handle)
	}
	if google.apiKey != "default-google" {
		t.Errorf("apiKey: got %q, want default-google", google.apiKey)
	}
}

func TestResolveForAgentTaskDesignatedRoutes(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		agentID      string
		task         string
		wantProvider ProviderType
	}{
		{"design-agent", "reasoning", ProviderTypeGoogle},
		{"design-agent", "coding", ProviderTypeAnthropic},
		{"frontend-agent", "primary", ProviderTypeAnthropic},
		{"frontend-agent", "planning", ProviderTypeGoogle},
		{"content-agent", "strategy", ProviderTypeGoogle},
		{"testing-agent", "generation", ProviderTypeAnthropic},
		{"performance-agent", "analysis", ProviderTypeGoogle},
		{"security-agent", "code", ProviderTypeAnthropic},
		{"responsive-agent", "planning", ProviderTypeGoogle},
		{"deployment-agent", "scripts", ProviderTypeAnthropic},
	}

	for _, tt := range tests {
		handle, err := resolver.ResolveForAgentTask(tt.agentID, tt.task, Credentials{})
		if err != nil {
			t.Fatalf("ResolveForAgentTask(%s, %s): %v", tt.agentID, tt.task, err)
		}
		if handle.Provider() != tt.wantProvider {
			t.Errorf("ResolveForAgentTask(%s, %s): got %s, want %s",
				tt.agentID, tt.task, handle.Provider(), tt.wantProvider)
		}
	}
}

func TestResolveForAgentTaskUnknownTaskFallback(t *testing.T) {
	resolver := newTestResolver()

	reasoning, err := resolver.ResolveForAgentTask("design-agent", "strategy", Credentials{})
	if err != nil {
		t.Fatalf("ResolveForAgentTask: %v", err)
	}
	if reasoning.Provider() != ProviderTypeGoogle {
		t.Errorf("reasoning-flavored task: got %s, want %s", reasoning.Provider(), ProviderTypeGoogle)
	}

	other, err := resolver.ResolveForAgentTask("design-agent", "refactoring", Credentials{})
	if err != nil {
		t.Fatalf("ResolveForAgentTask: %v", err)
	}
	if other.Provider() != ProviderTypeAnthropic {
		t.Errorf("other task: got %s, want %s", other.Provider(), ProviderTypeAnthropic)
	}
}

func TestResolveForAgentTaskUnknownAgent(t *testing.T) {
	resolver := newTestResolver()

	for _, agentID := range []string{"translation-agent", "pr-agent", "nonexistent-agent"} {
		_, err := resolver.ResolveForAgentTask(agentID, "reasoning", Credentials{})

		var unknown *UnknownAgentError
		if !errors.As(err, &unknown) {
			t.Errorf("ResolveForAgentTask(%s): got %v, want *UnknownAgentError", agentID, err)
		}
	}
}

func TestFallbackUsesAzure(t *testing.T) {
	handle := newTestResolver().Fallback(Credentials{})

	if handle.Provider() != ProviderTypeAzure {
		t.Errorf("Provider: got %s, want %s", handle.Provider(), ProviderTypeAzure)
	}
	if handle.Model() != "gpt-4o" {
		t.Errorf("Model: got %s, want gpt-4o", handle.Model())
	}
}

func TestHealthCheckReportsCredentialPresence(t *testing.T) {
	resolver := NewResolver(Config{Defaults: Credentials{Anthropic: "key"}})

	health := resolver.HealthCheck(Credentials{Google: "caller-key"})

	if !health.Anthropic {
		t.Error("Anthropic: got false, want true")
	}
	if !health.Google {
		t.Error("Google: got false, want true")
	}
	if health.Azure {
		t.Error("Azure: got true, want false")
	}
}

func TestNewResolverFillsModelDefaults(t *testing.T) {
	resolver := NewResolver(Config{
		Models: ModelTable{AnthropicCoding: "claude-custom"},
	})

	if got := resolver.config.Models.AnthropicCoding; got != "claude-custom" {
		t.Errorf("AnthropicCoding: got %s, want claude-custom", got)
	}
	if got := resolver.config.Models.GoogleReasoning; got != "gemini-2.0-flash-exp" {
		t.Errorf("GoogleReasoning: got %s, want gemini-2.0-flash-exp", got)
	}
}
