// Package extract runs the extraction pipeline: prompt assembly, model
// invocation, snapshot persistence, and graph materialization.
package extract

import (
	"context"
	"log/slog"
	"time"

	"newsgraph/internal/graph"
	"newsgraph/internal/llm"
	"newsgraph/internal/prompt"
	"newsgraph/internal/schema"
)

// Extractor drives one extraction pass. It owns no state across runs;
// every Run starts from an empty accumulating buffer.
type Extractor struct {
	Provider llm.Provider
	Vocab    schema.Vocabulary

	// SnapshotPath receives the raw endpoint output verbatim before the
	// document is parsed. Empty disables persistence.
	SnapshotPath string

	Logger *slog.Logger
}

// Result is the outcome of a successful extraction.
type Result struct {
	Raw      []byte
	Document *graph.Document
	Graph    *graph.KnowledgeGraph
	Stats    *llm.Stats // generation statistics, when the endpoint reported them
}

// Run extracts a knowledge graph from the article text. With stream set,
// the response is accumulated chunk by chunk over a single blocked
// iteration; otherwise one synchronous call returns the whole document.
// Any transport, stream, or parse failure aborts the attempt; nothing is
// retried.
func (e *Extractor) Run(ctx context.Context, article string, stream bool) (*Result, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	messages := prompt.Build(e.Vocab, article)
	req := llm.ChatRequest{
		Messages: messages,
		Format:   e.Vocab.OutputSchema(),
		Options:  llm.Options{Temperature: 0},
	}

	started := time.Now()
	raw, stats, err := e.complete(ctx, req, stream)
	if err != nil {
		return nil, err
	}
	logger.Info("generation complete",
		"elapsed", time.Since(started),
		"bytes", len(raw))

	// Persist before parsing so malformed output is kept on disk for
	// inspection.
	if e.SnapshotPath != "" {
		if err := graph.Persist(raw, e.SnapshotPath); err != nil {
			return nil, err
		}
	}

	doc, err := graph.ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	buildStart := time.Now()
	g := graph.Build(doc)
	logger.Info("graph built",
		"elapsed", time.Since(buildStart),
		"nodes", g.Order(),
		"edges", g.Size())

	return &Result{Raw: raw, Document: doc, Graph: g, Stats: stats}, nil
}

// complete invokes the provider and returns the serialized document text.
func (e *Extractor) complete(ctx context.Context, req llm.ChatRequest, stream bool) ([]byte, *llm.Stats, error) {
	if !stream {
		resp, err := e.Provider.Chat(ctx, req)
		if err != nil {
			return nil, nil, err
		}
		stats := resp.Stats
		return []byte(resp.Message.Content), &stats, nil
	}

	sp, ok := e.Provider.(llm.StreamingProvider)
	if !ok {
		return nil, nil, llm.ErrStreamingUnsupported
	}
	s, err := sp.ChatStream(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()

	text, stats, err := s.Collect()
	if err != nil {
		return nil, nil, err
	}
	return []byte(text), stats, nil
}

// FromSnapshot rebuilds a graph from a previously persisted document,
// converging on the same result type as a live extraction.
func FromSnapshot(path string) (*Result, error) {
	doc, err := graph.Load(path)
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Graph: graph.Build(doc)}, nil
}
