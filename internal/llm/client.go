package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// DefaultBaseURL is the standard local Ollama address.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the model used when a request does not name one.
	DefaultModel = "qwen2.5-coder:14b"
)

// Client speaks Ollama's native chat API. The native API accepts a JSON
// schema in the request's format field, which grammar-constrains the
// model's output; the OpenAI-compatible endpoint does not.
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates a client for an Ollama endpoint. Empty arguments fall
// back to the local defaults.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	// No client timeout: generation against a cold local model can take
	// minutes, and cancellation is the caller's job via ctx.
	return &Client{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// Chat issues a single synchronous completion request and returns the full
// response, including the terminal generation statistics.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	req.Stream = false
	resp, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("decoding chat response: %w", err)
	}
	return &chatResp, nil
}

// ChatStream issues a completion request in streaming mode and returns a
// pull-based stream over the newline-delimited response records. The
// stream is finite and non-restartable; a caller that stops early must
// Close it to release the connection.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest) (*Stream, error) {
	req.Stream = true
	resp, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	return newStream(resp.Body), nil
}

// post sends the request and verifies the status line. The response body is
// left open for the caller.
func (c *Client) post(ctx context.Context, req ChatRequest) (*http.Response, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	url := c.baseURL + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &TransportError{Status: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}
