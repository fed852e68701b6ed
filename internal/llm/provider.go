// Package llm talks to generation endpoints. The primary client speaks
// Ollama's native chat API; an OpenRouter-backed provider covers hosted
// models that support structured output.
package llm

import (
	"context"

	"github.com/revrost/go-openrouter/jsonschema"
)

// Provider is the interface for chat completion backends.
type Provider interface {
	// Chat sends a chat completion request and returns the full response.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// StreamingProvider extends Provider with incremental response delivery.
type StreamingProvider interface {
	Provider

	// ChatStream sends a chat request and returns a pull-based stream of
	// partial-content chunks. The caller must exhaust or Close the stream.
	ChatStream(ctx context.Context, req ChatRequest) (*Stream, error)
}

// Message represents a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options carries model sampling parameters. Temperature is pinned to zero
// by callers that need reproducible output for a given input.
type Options struct {
	Temperature float64 `json:"temperature"`
}

// ChatRequest is a chat completion request. Format, when set, is the
// structural constraint the endpoint must shape its output to.
type ChatRequest struct {
	Model    string                 `json:"model"`
	Messages []Message              `json:"messages"`
	Stream   bool                   `json:"stream"`
	Format   *jsonschema.Definition `json:"format,omitempty"`
	Options  Options                `json:"options"`
}

// Stats holds the generation statistics reported on the terminal record of
// a response.
type Stats struct {
	TotalDuration   int64 `json:"total_duration"`
	LoadDuration    int64 `json:"load_duration"`
	PromptEvalCount int   `json:"prompt_eval_count"`
	EvalCount       int   `json:"eval_count"`
	EvalDuration    int64 `json:"eval_duration"`
}

// ChatResponse is a complete (non-streaming) chat response.
type ChatResponse struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Stats
}
