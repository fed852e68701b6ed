package llm

import (
	"context"
	"fmt"

	"github.com/revrost/go-openrouter"
)

// OpenRouterProvider runs extraction against hosted models via OpenRouter.
// OpenRouter's structured-output path enforces the same JSON shape as
// Ollama's format field, but delivery is single-shot only.
type OpenRouterProvider struct {
	client *openrouter.Client
	model  string
}

// NewOpenRouter creates a provider using the given API key. An empty model
// selects a hosted default known to handle JSON schema output.
func NewOpenRouter(apiKey, model string) *OpenRouterProvider {
	if model == "" {
		model = "openai/gpt-4-turbo"
	}
	return &OpenRouterProvider{
		client: openrouter.NewClient(apiKey),
		model:  model,
	}
}

// Chat sends the conversation with the structural constraint attached as a
// response_format JSON schema and returns the assistant's reply as a
// completed response.
func (p *OpenRouterProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]openrouter.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openrouter.ChatCompletionMessage{
			Role:    msg.Role,
			Content: openrouter.Content{Text: msg.Content},
		}
	}

	request := openrouter.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(req.Options.Temperature),
	}
	if req.Format != nil {
		request.ResponseFormat = &openrouter.ChatCompletionResponseFormat{
			Type: openrouter.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openrouter.ChatCompletionResponseFormatJSONSchema{
				Name:   "knowledge_graph",
				Schema: req.Format,
				Strict: false, // some models reject strict mode
			},
		}
	}

	response, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("openrouter completion: %w", err)}
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	return &ChatResponse{
		Model: model,
		Message: Message{
			Role:    "assistant",
			Content: response.Choices[0].Message.Content.Text,
		},
		Done: true,
	}, nil
}
