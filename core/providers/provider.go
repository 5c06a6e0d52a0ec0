// Package providers binds model identifiers to hosted LLM backends and
// implements the routing policy that selects a provider for an agent
// request: substring matching on model ids, a static agent/task table,
// and an Azure-hosted fallback.
package providers

import (
	"context"
)

// ProviderType identifies a hosted backend.
type ProviderType string

const (
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeGoogle    ProviderType = "google"
	ProviderTypeAzure     ProviderType = "azure"
)

// Credentials is the optional per-request API key bundle. Empty fields
// fall back to the resolver's process-wide defaults.
type Credentials struct {
	OpenAI    string `json:"openai,omitempty" yaml:"openai,omitempty"`
	Anthropic string `json:"anthropic,omitempty" yaml:"anthropic,omitempty"`
	Google    string `json:"google,omitempty" yaml:"google,omitempty"`
	Azure     string `json:"azure,omitempty" yaml:"azure,omitempty"`
}

// ModelHandle is an opaque callable bound to one model on one provider
// with one credential. Handles are cheap to construct and never validate
// their credential up front; a missing key surfaces as *AuthError from
// Generate or Stream, not at resolve time.
type ModelHandle interface {
	Provider() ProviderType
	Model() string
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	Stream(ctx context.Context, req *GenerateRequest, handler StreamHandler) error
}

// Role labels a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest is the outbound text-generation request. Prompt is the
// single-turn user input; Messages, when non-empty, takes its place as a
// full conversation history.
type GenerateRequest struct {
	System      string    `json:"system,omitempty"`
	Prompt      string    `json:"prompt,omitempty"`
	Messages    []Message `json:"messages,omitempty"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// GenerateResponse carries the returned text and token accounting.
type GenerateResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Usage Usage  `json:"usage"`
}

// Usage reports token counts for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ChunkType tags a streaming chunk.
type ChunkType string

const (
	ChunkTypeStart ChunkType = "start"
	ChunkTypeText  ChunkType = "text"
	ChunkTypeEnd   ChunkType = "end"
	ChunkTypeError ChunkType = "error"
)

// StreamChunk is one unit of a streamed response.
type StreamChunk struct {
	Index int       `json:"index"`
	Type  ChunkType `json:"type"`
	Text  string    `json:"text,omitempty"`
	Usage *Usage    `json:"usage,omitempty"`
}

// StreamHandler receives chunks in order. Returning an error aborts the
// stream.
type StreamHandler func(chunk *StreamChunk) error

// conversation normalizes a request into message history, preferring
// Messages over the single-turn Prompt.
func conversation(req *GenerateRequest) []Message {
	if len(req.Messages) > 0 {
		return req.Messages
	}
	return []Message{{Role: RoleUser, Content: req.Prompt}}
}
