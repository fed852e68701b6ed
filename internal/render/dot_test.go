package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsgraph/internal/graph"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short text stays on one line", "Cradock Four", 25, []string{"Cradock Four"}},
		{"wraps at word boundary", "accused of failure to prosecute", 25, []string{"accused of failure to", "prosecute"}},
		{"empty text", "", 25, []string{""}},
		{"long word gets its own line", "constitutional damages", 10, []string{"constitutional", "damages"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestLabelAlternatingIndent(t *testing.T) {
	// Four wrapped lines cycle through indents of 0, 2, 4, and 0 spaces.
	text := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen"
	label := Label(text)

	lines := strings.Split(label, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.False(t, strings.HasPrefix(lines[0], " "))
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.False(t, strings.HasPrefix(lines[1], "   "))
	assert.True(t, strings.HasPrefix(lines[2], "    "))
	assert.False(t, strings.HasPrefix(lines[3], " "))
}

func TestLabelShortText(t *testing.T) {
	assert.Equal(t, "Ramaphosa", Label("Ramaphosa"))
}

func TestDOT(t *testing.T) {
	doc := &graph.Document{
		Entities: []graph.Entity{
			{Name: "Ramaphosa", Type: "person"},
			{Name: "Cradock Four", Type: "event"},
		},
		Relationships: []graph.Relationship{
			{Source: "Cradock Four", Target: "Ramaphosa", Type: "criticizes", Description: "accused of failure to prosecute"},
		},
	}

	out, err := DOT(graph.Build(doc), "newsgraph")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "digraph newsgraph")
	assert.Contains(t, text, "Cradock Four")
	assert.Contains(t, text, "Ramaphosa")
	assert.Contains(t, text, "label=")
	assert.Contains(t, text, "node_type")
	// The edge label is wrapped at 25 characters; "prosecute" lands on
	// its own indented line.
	assert.Contains(t, text, "accused of failure to")
	assert.Contains(t, text, "prosecute")
	assert.NotContains(t, text, "accused of failure to prosecute")
}
