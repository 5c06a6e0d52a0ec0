package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

const azureAPIVersion = "2024-10-21"

// OpenAIHandle is a ModelHandle for OpenAI models, reached either through
// the public API or an Azure OpenAI deployment.
type OpenAIHandle struct {
	model    string
	apiKey   string
	provider ProviderType
	client   *openai.Client
}

// NewOpenAIHandle binds a model id to the public OpenAI backend.
func NewOpenAIHandle(model, apiKey string) *OpenAIHandle {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIHandle{
		model:    model,
		apiKey:   apiKey,
		provider: ProviderTypeOpenAI,
		client:   &client,
	}
}

// NewAzureHandle binds a model id to an Azure OpenAI endpoint. An empty
// endpoint still yields a handle; the call fails later the way a missing
// key does.
func NewAzureHandle(model, apiKey, endpoint string) *OpenAIHandle {
	opts := []option.RequestOption{azure.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, azure.WithEndpoint(endpoint, azureAPIVersion))
	}

	client := openai.NewClient(opts...)
	return &OpenAIHandle{
		model:    model,
		apiKey:   apiKey,
		provider: ProviderTypeAzure,
		client:   &client,
	}
}

func (h *OpenAIHandle) Provider() ProviderType {
	return h.provider
}

func (h *OpenAIHandle) Model() string {
	return h.model
}

// Generate performs a single non-streaming completion.
func (h *OpenAIHandle) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if h.apiKey == "" {
		return nil, &AuthError{Provider: h.provider}
	}

	result, err := h.client.Responses.New(ctx, h.buildParams(req))
	if err != nil {
		return nil, fmt.Errorf("%s generate: %w", h.provider, err)
	}

	return &GenerateResponse{
		Text:  result.OutputText(),
		Model: string(result.Model),
		Usage: Usage{
			InputTokens:  int(result.Usage.InputTokens),
			OutputTokens: int(result.Usage.OutputTokens),
			TotalTokens:  int(result.Usage.TotalTokens),
		},
	}, nil
}

// Stream performs a streaming completion, delivering text deltas to the
// handler in order.
func (h *OpenAIHandle) Stream(ctx context.Context, req *GenerateRequest, handler StreamHandler) error {
	if h.apiKey == "" {
		return &AuthError{Provider: h.provider}
	}

	stream := h.client.Responses.NewStreaming(ctx, h.buildParams(req))

	if err := handler(&StreamChunk{Index: 0, Type: ChunkTypeStart}); err != nil {
		return err
	}

	var chunkIndex int
	var usage *Usage

	for stream.Next() {
		event := stream.Current()

		switch ev := event.AsAny().(type) {
		case responses.ResponseTextDeltaEvent:
			if ev.Delta == "" {
				continue
			}
			chunkIndex++
			if err := handler(&StreamChunk{
				Index: chunkIndex,
				Type:  ChunkTypeText,
				Text:  ev.Delta,
			}); err != nil {
				return err
			}
		case responses.ResponseCompletedEvent:
			usage = &Usage{
				InputTokens:  int(ev.Response.Usage.InputTokens),
				OutputTokens: int(ev.Response.Usage.OutputTokens),
				TotalTokens:  int(ev.Response.Usage.TotalTokens),
			}
		case responses.ResponseErrorEvent:
			_ = handler(&StreamChunk{
				Index: chunkIndex + 1,
				Type:  ChunkTypeError,
				Text:  ev.Message,
			})
			return fmt.Errorf("%s stream: %s", h.provider, ev.Message)
		}
	}

	if err := stream.Err(); err != nil {
		_ = handler(&StreamChunk{
			Index: chunkIndex + 1,
			Type:  ChunkTypeError,
			Text:  err.Error(),
		})
		return fmt.Errorf("%s stream: %w", h.provider, err)
	}

	return handler(&StreamChunk{
		Index: chunkIndex + 1,
		Type:  ChunkTypeEnd,
		Usage: usage,
	})
}

func (h *OpenAIHandle) buildParams(req *GenerateRequest) responses.ResponseNewParams {
	input := make(responses.ResponseInputParam, 0, len(req.Messages)+2)

	if req.System != "" {
		input = append(input, responses.ResponseInputItemParamOfMessage(req.System, responses.EasyInputMessageRoleSystem))
	}
	for _, msg := range conversation(req) {
		input = append(input, responses.ResponseInputItemParamOfMessage(msg.Content, easyRole(msg.Role)))
	}

	params := responses.ResponseNewParams{
		Model:           shared.ResponsesModel(h.model),
		Input:           responses.ResponseNewParamsInputUnion{OfInputItemList: input},
		MaxOutputTokens: openai.Int(int64(req.MaxTokens)),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	return params
}

func easyRole(role Role) responses.EasyInputMessageRole {
	switch role {
	case RoleAssistant:
		return responses.EasyInputMessageRoleAssistant
	case RoleSystem:
		return responses.EasyInputMessageRoleSystem
	default:
		return responses.EasyInputMessageRoleUser
	}
}
