package llm

import (
	"errors"
	"fmt"
)

// ErrMalformedChunk is returned when a streaming record cannot be decoded.
var ErrMalformedChunk = errors.New("llm: malformed stream chunk")

// ErrStreamingUnsupported is returned when a streaming extraction is
// requested from a provider that only supports single-shot completion.
var ErrStreamingUnsupported = errors.New("llm: provider does not support streaming")

// TransportError reports an unreachable endpoint or a non-success status.
// It is never retried locally; the caller decides whether to re-issue the
// whole request.
type TransportError struct {
	Status int    // HTTP status code, 0 when the request never completed
	Body   string // response body, when one was received
	Err    error  // underlying transport error, when the request failed
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm: transport failure: %v", e.Err)
	}
	return fmt.Sprintf("llm: endpoint returned status %d: %s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
