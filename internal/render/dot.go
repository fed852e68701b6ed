// Package render exports a knowledge graph as Graphviz DOT with
// word-wrapped display labels. Layout and drawing are left to the
// consumer (dot, neato, or any DOT-aware viewer).
package render

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"newsgraph/internal/graph"
)

// WrapWidth is the maximum label line length before wrapping.
const WrapWidth = 25

// DOT renders the graph as DOT text. Node labels are the wrapped entity
// names; edge labels are the wrapped relationship descriptions.
func DOT(g *graph.KnowledgeGraph, name string) ([]byte, error) {
	for _, n := range g.Nodes() {
		n.Display = Label(n.Name)
	}
	for _, e := range g.Edges() {
		e.Display = Label(e.Label)
	}

	out, err := dot.Marshal(g.Directed(), name, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling graph to DOT: %w", err)
	}
	return out, nil
}

// Label wraps text at WrapWidth and indents successive lines by an
// alternating small offset, which keeps adjacent labels visually
// distinguishable in dense layouts.
func Label(text string) string {
	lines := Wrap(text, WrapWidth)
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", (i%3)*2) + line
	}
	return strings.Join(lines, "\n")
}

// Wrap greedily wraps text into lines of at most width characters,
// breaking only at spaces. Words longer than width occupy a line of their
// own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
