// Package graph materializes extraction documents into a directed
// knowledge graph and handles snapshot persistence.
package graph

import (
	"encoding/json"
	"errors"
	"fmt"

	"newsgraph/internal/schema"
)

// Entity is a named, typed node in the extracted graph.
type Entity struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Subtype     string `json:"subtype"`
	Description string `json:"description"`
}

// Relationship is a directed, typed edge between two entities.
type Relationship struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ContextItem is a free-text contextual annotation. It is carried in the
// document but never becomes a node or edge.
type ContextItem struct {
	Aspect      string `json:"aspect"`
	Description string `json:"description"`
}

// Document is the full structured output of one extraction pass.
type Document struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
	Context       []ContextItem  `json:"context"`
}

// ErrDocumentParse is returned when text cannot be parsed as an extraction
// document.
var ErrDocumentParse = errors.New("graph: document parse failed")

// ParseDocument decodes a serialized extraction document. The entities and
// relationships keys must be present; a document missing either is
// rejected even when it is otherwise valid JSON.
func ParseDocument(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	for _, key := range []string{"entities", "relationships"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrDocumentParse, key)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return &doc, nil
}

// Problem describes a single schema or reference violation found in a
// document.
type Problem struct {
	Kind   string // entity_type, entity_subtype, relationship_type, unknown_endpoint
	Detail string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Kind, p.Detail)
}

// Validate checks a document against the vocabulary and reports every
// violation found. The endpoint is trusted to honor the structural
// constraint, so violations here usually mean degraded model output;
// they are diagnostics, not build blockers.
func Validate(doc *Document, vocab schema.Vocabulary) []Problem {
	var problems []Problem

	declared := make(map[string]bool, len(doc.Entities))
	for _, e := range doc.Entities {
		declared[e.Name] = true
		if !vocab.ValidEntityType(e.Type) {
			problems = append(problems, Problem{
				Kind:   "entity_type",
				Detail: fmt.Sprintf("entity %q has unknown type %q", e.Name, e.Type),
			})
		}
		if !vocab.ValidSubtype(e.Type, e.Subtype) {
			problems = append(problems, Problem{
				Kind:   "entity_subtype",
				Detail: fmt.Sprintf("entity %q has subtype %q not registered for type %q", e.Name, e.Subtype, e.Type),
			})
		}
	}

	for _, r := range doc.Relationships {
		if !vocab.ValidRelationshipType(r.Type) {
			problems = append(problems, Problem{
				Kind:   "relationship_type",
				Detail: fmt.Sprintf("relationship %q -> %q has unknown type %q", r.Source, r.Target, r.Type),
			})
		}
		for _, endpoint := range []string{r.Source, r.Target} {
			if !declared[endpoint] {
				problems = append(problems, Problem{
					Kind:   "unknown_endpoint",
					Detail: fmt.Sprintf("relationship references undeclared entity %q", endpoint),
				})
			}
		}
	}

	return problems
}
