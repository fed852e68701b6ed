package graph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Entities: []Entity{
			{Name: "Ramaphosa", Type: "person", Subtype: "politician", Description: "President"},
			{Name: "Cradock Four", Type: "event", Subtype: "", Description: "1985 assassinations"},
			{Name: "ANC", Type: "organization", Subtype: "government", Description: "Ruling party"},
		},
		Relationships: []Relationship{
			{Source: "Cradock Four", Target: "Ramaphosa", Type: "criticizes", Description: "accused of failure to prosecute"},
			{Source: "Ramaphosa", Target: "ANC", Type: "collaborates_with", Description: "leads the party"},
		},
	}
}

func TestBuildCounts(t *testing.T) {
	g := Build(sampleDocument())

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())
}

func TestBuildNodeTypes(t *testing.T) {
	g := Build(sampleDocument())

	typ, ok := g.NodeType("Ramaphosa")
	require.True(t, ok)
	assert.Equal(t, "person", typ)

	typ, ok = g.NodeType("Cradock Four")
	require.True(t, ok)
	assert.Equal(t, "event", typ)

	_, ok = g.NodeType("Mandela")
	assert.False(t, ok)
}

func TestBuildEdgeLabels(t *testing.T) {
	g := Build(sampleDocument())

	label, ok := g.EdgeLabel("Cradock Four", "Ramaphosa")
	require.True(t, ok)
	assert.Equal(t, "accused of failure to prosecute", label)

	// Edges are directed; the reverse pair has no edge.
	_, ok = g.EdgeLabel("Ramaphosa", "Cradock Four")
	assert.False(t, ok)
}

func TestBuildEmptyDocument(t *testing.T) {
	g := Build(&Document{})

	assert.Zero(t, g.Order())
	assert.Zero(t, g.Size())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
}

func TestBuildImplicitNode(t *testing.T) {
	doc := &Document{
		Entities: []Entity{
			{Name: "Ramaphosa", Type: "person"},
		},
		Relationships: []Relationship{
			{Source: "NPA", Target: "Ramaphosa", Type: "responds_to", Description: "reports to"},
		},
	}

	g := Build(doc)

	// The undeclared endpoint still produces a node and the edge exists.
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())

	typ, ok := g.NodeType("NPA")
	require.True(t, ok)
	assert.Empty(t, typ, "implicitly created node carries no type")

	label, ok := g.EdgeLabel("NPA", "Ramaphosa")
	require.True(t, ok)
	assert.Equal(t, "reports to", label)
}

func TestBuildDuplicatePairOverwrites(t *testing.T) {
	doc := &Document{
		Entities: []Entity{
			{Name: "EFF", Type: "organization"},
			{Name: "ANC", Type: "organization"},
		},
		Relationships: []Relationship{
			{Source: "EFF", Target: "ANC", Type: "criticizes", Description: "first description"},
			{Source: "EFF", Target: "ANC", Type: "opposes", Description: "second description"},
		},
	}

	g := Build(doc)

	assert.Equal(t, 1, g.Size(), "later relationship for the same pair overwrites the earlier one")
	label, ok := g.EdgeLabel("EFF", "ANC")
	require.True(t, ok)
	assert.Equal(t, "second description", label)

	// The raw document still retains both relationships.
	assert.Len(t, doc.Relationships, 2)
}

func TestBuildSkipsSelfReferentialRelationships(t *testing.T) {
	doc := &Document{
		Entities: []Entity{{Name: "ANC", Type: "organization"}},
		Relationships: []Relationship{
			{Source: "ANC", Target: "ANC", Type: "supports", Description: "self"},
		},
	}

	g := Build(doc)
	assert.Equal(t, 1, g.Order())
	assert.Zero(t, g.Size())
}

func assertGraphsEqual(t *testing.T, want, got *KnowledgeGraph) {
	t.Helper()

	require.Equal(t, want.Order(), got.Order())
	require.Equal(t, want.Size(), got.Size())

	for _, n := range want.Nodes() {
		typ, ok := got.NodeType(n.Name)
		require.True(t, ok, "missing node %q", n.Name)
		assert.Equal(t, n.Type, typ, "type mismatch for %q", n.Name)
	}
	for _, e := range want.Edges() {
		label, ok := got.EdgeLabel(e.F.Name, e.T.Name)
		require.True(t, ok, "missing edge %q -> %q", e.F.Name, e.T.Name)
		assert.Equal(t, e.Label, label)
	}
}

func TestBuildIdempotence(t *testing.T) {
	doc := sampleDocument()

	first := Build(doc)
	second := Build(doc)

	require.NotSame(t, first, second)
	assertGraphsEqual(t, first, second)
}

func TestPersistLoadRoundTrip(t *testing.T) {
	raw := []byte(`{
		"entities": [
			{"name":"Ramaphosa","type":"person","subtype":"politician","description":"President"},
			{"name":"Cradock Four","type":"event","subtype":"","description":"1985 assassinations"}
		],
		"relationships": [
			{"source":"Cradock Four","target":"Ramaphosa","type":"criticizes","description":"accused of failure to prosecute"}
		],
		"context": []
	}`)

	path := filepath.Join(t.TempDir(), "network_dict.json")
	require.NoError(t, Persist(raw, path))

	loaded, err := Load(path)
	require.NoError(t, err)

	parsed, err := ParseDocument(raw)
	require.NoError(t, err)

	assertGraphsEqual(t, Build(parsed), Build(loaded))
}

func TestPersistWritesVerbatim(t *testing.T) {
	// Persistence never normalizes: invalid output is stored as-is and the
	// failure only surfaces on a later load.
	raw := []byte(`{"entities": [truncated`)
	path := filepath.Join(t.TempDir(), "bad.json")

	require.NoError(t, Persist(raw, path))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDocumentParse)
}
