package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kairohq/kairo-agents/core/agent"
	"github.com/kairohq/kairo-agents/core/providers"
)

// Orchestration-level sampling: the coordinated response is longer than
// a single agent turn, so the token ceiling is higher.
const (
	streamTemperature = 0.7
	streamMaxTokens   = 4096
)

// Resolver is the subset of provider routing the orchestrator needs.
type Resolver interface {
	Resolve(modelID string, creds providers.Credentials) providers.ModelHandle
}

// Orchestrator streams coordinated responses over a conversation.
// Stateless; one instance serves concurrent conversations.
type Orchestrator struct {
	resolver Resolver
	logger   *slog.Logger
}

// New creates an orchestrator. A nil logger falls back to slog.Default().
func New(resolver Resolver, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{resolver: resolver, logger: logger}
}

// model picks the orchestration model: the frontend agent's configured
// model when one is set, the resolver's default otherwise. Orchestration
// borrows the frontend agent's model until a dedicated one exists.
func model(settings agent.ProjectSettings) string {
	return settings.AgentModels["frontend-agent"]
}

// Stream runs one orchestration turn: build the system prompt, resolve a
// handle, and stream the coordinated response chunk by chunk into
// handler. The conversation history must be non-empty.
func (o *Orchestrator) Stream(ctx context.Context, settings agent.ProjectSettings, messages []providers.Message, handler providers.StreamHandler) error {
	if len(messages) == 0 {
		return fmt.Errorf("orchestration requires at least one message")
	}

	requestID := uuid.NewString()
	handle := o.resolver.Resolve(model(settings), agent.Credentials(settings.APIKeys))

	o.logger.Debug("starting orchestration stream",
		"request_id", requestID,
		"provider", handle.Provider(),
		"model", handle.Model(),
		"messages", len(messages))

	err := handle.Stream(ctx, &providers.GenerateRequest{
		System:      SystemPrompt(settings),
		Messages:    messages,
		Temperature: streamTemperature,
		MaxTokens:   streamMaxTokens,
	}, handler)
	if err != nil {
		o.logger.Error("orchestration stream failed", "request_id", requestID, "error", err)
		return fmt.Errorf("orchestration stream: %w", err)
	}

	return nil
}

// Respond is the non-streaming variant of Stream, for callers that want
// the full coordinated response in one piece.
func (o *Orchestrator) Respond(ctx context.Context, settings agent.ProjectSettings, messages []providers.Message) (*providers.GenerateResponse, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("orchestration requires at least one message")
	}

	handle := o.resolver.Resolve(model(settings), agent.Credentials(settings.APIKeys))

	resp, err := handle.Generate(ctx, &providers.GenerateRequest{
		System:      SystemPrompt(settings),
		Messages:    messages,
		Temperature: streamTemperature,
		MaxTokens:   streamMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("orchestration: %w", err)
	}
	return resp, nil
}
