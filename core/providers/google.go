package providers

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GoogleHandle is a ModelHandle bound to one Gemini model. The genai
// client needs a context to construct, so it is built lazily on first
// call rather than at resolve time.
type GoogleHandle struct {
	model  string
	apiKey string
}

// NewGoogleHandle binds a model id to the Gemini API backend.
func NewGoogleHandle(model, apiKey string) *GoogleHandle {
	return &GoogleHandle{model: model, apiKey: apiKey}
}

func (h *GoogleHandle) Provider() ProviderType {
	return ProviderTypeGoogle
}

func (h *GoogleHandle) Model() string {
	return h.model
}

// Generate performs a single non-streaming completion.
func (h *GoogleHandle) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	client, err := h.newClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx, h.model, h.contents(req), h.config(req))
	if err != nil {
		return nil, fmt.Errorf("google generate: %w", err)
	}

	out := &GenerateResponse{
		Text:  resp.Text(),
		Model: h.model,
	}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return out, nil
}

// Stream performs a streaming completion, delivering text deltas to the
// handler in order.
func (h *GoogleHandle) Stream(ctx context.Context, req *GenerateRequest, handler StreamHandler) error {
	client, err := h.newClient(ctx)
	if err != nil {
		return err
	}

	if err := handler(&StreamChunk{Index: 0, Type: ChunkTypeStart}); err != nil {
		return err
	}

	var chunkIndex int
	var usage *Usage

	for resp, err := range client.Models.GenerateContentStream(ctx, h.model, h.contents(req), h.config(req)) {
		if err != nil {
			_ = handler(&StreamChunk{
				Index: chunkIndex + 1,
				Type:  ChunkTypeError,
				Text:  err.Error(),
			})
			return fmt.Errorf("google stream: %w", err)
		}

		if resp.UsageMetadata != nil {
			usage = &Usage{
				InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
				OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
				TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
			}
		}

		if text := resp.Text(); text != "" {
			chunkIndex++
			if err := handler(&StreamChunk{
				Index: chunkIndex,
				Type:  ChunkTypeText,
				Text:  text,
			}); err != nil {
				return err
			}
		}
	}

	return handler(&StreamChunk{
		Index: chunkIndex + 1,
		Type:  ChunkTypeEnd,
		Usage: usage,
	})
}

func (h *GoogleHandle) newClient(ctx context.Context) (*genai.Client, error) {
	if h.apiKey == "" {
		return nil, &AuthError{Provider: ProviderTypeGoogle}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  h.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("google client: %w", err)
	}
	return client, nil
}

func (h *GoogleHandle) contents(req *GenerateRequest) []*genai.Content {
	messages := conversation(req)
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return contents
}

func (h *GoogleHandle) config(req *GenerateRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	return config
}
