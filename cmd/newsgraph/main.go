package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"newsgraph/internal/config"
	"newsgraph/internal/extract"
	"newsgraph/internal/graph"
	"newsgraph/internal/render"
	"newsgraph/internal/schema"
)

func main() {
	var (
		help       bool
		inputPath  string
		loadOnly   bool
		snapshot   string
		dotPath    string
		provider   string
		model      string
		endpoint   string
		apiKey     string
		configPath string
		noStream   bool
		debug      bool
	)

	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message (shorthand)")
	flag.StringVar(&inputPath, "input", "", "Article text file to extract from (use - for stdin)")
	flag.BoolVar(&loadOnly, "load", false, "Rebuild the graph from the snapshot instead of extracting")
	flag.StringVar(&snapshot, "snapshot", "", "Snapshot path for the raw extraction document")
	flag.StringVar(&dotPath, "dot", "", "Write a Graphviz DOT rendering to this path")
	flag.StringVar(&provider, "provider", "", "Generation backend: ollama or openrouter")
	flag.StringVar(&model, "model", "", "Model name")
	flag.StringVar(&endpoint, "endpoint", "", "Ollama base URL")
	flag.StringVar(&apiKey, "api-key", os.Getenv("OPENROUTER_API_KEY"), "OpenRouter API key (can also use OPENROUTER_API_KEY env var)")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.BoolVar(&noStream, "no-stream", false, "Disable streaming response delivery")
	flag.BoolVar(&debug, "debug", false, "Enable debug output")
	flag.Parse()

	if help {
		fmt.Println("newsgraph - Knowledge graph extraction from news articles")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  %s [flags]\n", os.Args[0])
		fmt.Println()
		fmt.Println("Flags:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Environment Variables:")
		fmt.Println("  OPENROUTER_API_KEY   OpenRouter API key (openrouter provider only)")
		os.Exit(0)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override config file values.
	if provider != "" {
		cfg.Provider = provider
	}
	if model != "" {
		cfg.Model = model
	}
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if snapshot != "" {
		cfg.Snapshot = snapshot
	}
	if noStream {
		cfg.Stream = false
	}

	vocab := schema.Default()

	var result *extract.Result
	if loadOnly {
		var err error
		result, err = extract.FromSnapshot(cfg.Snapshot)
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
	} else {
		article, err := readArticle(inputPath)
		if err != nil {
			log.Fatalf("Failed to read article: %v", err)
		}

		llmProvider, err := cfg.NewProvider()
		if err != nil {
			log.Fatalf("Failed to initialize provider: %v", err)
		}

		extractor := &extract.Extractor{
			Provider:     llmProvider,
			Vocab:        vocab,
			SnapshotPath: cfg.Snapshot,
			Logger:       logger,
		}

		log.Println("Generating knowledge graph data...")
		result, err = extractor.Run(context.Background(), article, cfg.Stream)
		if err != nil {
			log.Fatalf("Extraction failed: %v", err)
		}
	}

	for _, p := range graph.Validate(result.Document, vocab) {
		log.Printf("Warning: %s", p)
	}

	log.Printf("Graph ready: %d nodes, %d edges, %d context items",
		result.Graph.Order(), result.Graph.Size(), len(result.Document.Context))

	if dotPath != "" {
		out, err := render.DOT(result.Graph, "newsgraph")
		if err != nil {
			log.Fatalf("Failed to render DOT: %v", err)
		}
		if err := os.WriteFile(dotPath, out, 0o644); err != nil {
			log.Fatalf("Failed to write DOT file: %v", err)
		}
		log.Printf("DOT rendering written to %s", dotPath)
	}
}

// readArticle reads the article text from a file or stdin.
func readArticle(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no input: pass -input <file> or -input - for stdin")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
