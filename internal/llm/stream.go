package llm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Chunk is one item pulled from a streaming response: either a text
// fragment to append to the accumulating document, or the terminal record
// carrying generation statistics.
type Chunk struct {
	Content string
	Done    bool
	Stats   *Stats
}

// Stream iterates over the newline-delimited records of a streaming chat
// response. Iteration is single-threaded and blocks on each record
// boundary; the stream cannot be restarted.
type Stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	done    bool
}

// streamRecord is the wire shape of one NDJSON record.
type streamRecord struct {
	Message Message `json:"message"`
	Done    bool    `json:"done"`
	Stats
}

const maxRecordSize = 1 << 20

func newStream(body io.ReadCloser) *Stream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	return &Stream{body: body, scanner: scanner}
}

// Next returns the next chunk. After the terminal record, or when the body
// is exhausted, it returns io.EOF. A record that cannot be decoded yields
// an error wrapping ErrMalformedChunk.
func (s *Stream) Next() (Chunk, error) {
	if s.done {
		return Chunk{}, io.EOF
	}
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		var rec streamRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return Chunk{}, fmt.Errorf("%w: %v", ErrMalformedChunk, err)
		}
		if rec.Done {
			s.done = true
			stats := rec.Stats
			return Chunk{Done: true, Stats: &stats}, nil
		}
		return Chunk{Content: rec.Message.Content}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return Chunk{}, &TransportError{Err: err}
	}
	s.done = true
	return Chunk{}, io.EOF
}

// Collect exhausts the stream, concatenating every text fragment in order.
// The terminal record's content is not part of the document and is
// excluded; its statistics are returned when present.
func (s *Stream) Collect() (string, *Stats, error) {
	var sb strings.Builder
	var stats *Stats
	for {
		chunk, err := s.Next()
		if err == io.EOF {
			return sb.String(), stats, nil
		}
		if err != nil {
			return "", nil, err
		}
		if chunk.Done {
			stats = chunk.Stats
			continue
		}
		sb.WriteString(chunk.Content)
	}
}

// Close releases the underlying connection. Safe to call after exhaustion.
func (s *Stream) Close() error {
	s.done = true
	return s.body.Close()
}
