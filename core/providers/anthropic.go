package providers

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicHandle is a ModelHandle bound to one Claude model.
type AnthropicHandle struct {
	model  string
	apiKey string
	client *anthropic.Client
}

// NewAnthropicHandle binds a model id to the Anthropic backend. The key
// is not validated here.
func NewAnthropicHandle(model, apiKey string) *AnthropicHandle {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicHandle{
		model:  model,
		apiKey: apiKey,
		client: &client,
	}
}

func (h *AnthropicHandle) Provider() ProviderType {
	return ProviderTypeAnthropic
}

func (h *AnthropicHandle) Model() string {
	return h.model
}

// Generate performs a single non-streaming completion.
func (h *AnthropicHandle) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if h.apiKey == "" {
		return nil, &AuthError{Provider: ProviderTypeAnthropic}
	}

	msg, err := h.client.Messages.New(ctx, h.buildParams(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic generate: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text += b.Text
		}
	}

	return &GenerateResponse{
		Text:  text,
		Model: string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}

// Stream performs a streaming completion, delivering text deltas to the
// handler in order.
func (h *AnthropicHandle) Stream(ctx context.Context, req *GenerateRequest, handler StreamHandler) error {
	if h.apiKey == "" {
		return &AuthError{Provider: ProviderTypeAnthropic}
	}

	stream := h.client.Messages.NewStreaming(ctx, h.buildParams(req))

	if err := handler(&StreamChunk{Index: 0, Type: ChunkTypeStart}); err != nil {
		return err
	}

	var chunkIndex int
	var inputTokens, outputTokens int

	for stream.Next() {
		event := stream.Current()

		switch ev := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			if delta, ok := ev.Delta.AsAny().(anthropic.TextDelta); ok {
				chunkIndex++
				if err := handler(&StreamChunk{
					Index: chunkIndex,
					Type:  ChunkTypeText,
					Text:  delta.Text,
				}); err != nil {
					return err
				}
			}
		case anthropic.MessageStartEvent:
			if ev.Message.Usage.InputTokens > 0 {
				inputTokens = int(ev.Message.Usage.InputTokens)
			}
		case anthropic.MessageDeltaEvent:
			if ev.Usage.OutputTokens > 0 {
				outputTokens = int(ev.Usage.OutputTokens)
			}
		}
	}

	if err := stream.Err(); err != nil {
		_ = handler(&StreamChunk{
			Index: chunkIndex + 1,
			Type:  ChunkTypeError,
			Text:  err.Error(),
		})
		return fmt.Errorf("anthropic stream: %w", err)
	}

	return handler(&StreamChunk{
		Index: chunkIndex + 1,
		Type:  ChunkTypeEnd,
		Usage: &Usage{
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			TotalTokens:  inputTokens + outputTokens,
		},
	})
}

func (h *AnthropicHandle) buildParams(req *GenerateRequest) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(h.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  h.convertMessages(conversation(req)),
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	return params
}

func (h *AnthropicHandle) convertMessages(messages []Message) []anthropic.MessageParam {
	result := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return result
}
