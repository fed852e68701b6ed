package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsgraph/internal/schema"
)

func TestParseDocument(t *testing.T) {
	raw := `{
		"entities": [{"name":"Ramaphosa","type":"person","subtype":"politician","description":"President of South Africa"}],
		"relationships": [],
		"context": [{"aspect":"historical","description":"apartheid-era prosecutions"}]
	}`

	doc, err := ParseDocument([]byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "Ramaphosa", doc.Entities[0].Name)
	assert.Equal(t, "person", doc.Entities[0].Type)
	assert.Empty(t, doc.Relationships)
	require.Len(t, doc.Context, 1)
	assert.Equal(t, "historical", doc.Context[0].Aspect)
}

func TestParseDocumentInvalidJSON(t *testing.T) {
	_, err := ParseDocument([]byte(`{"entities": [`))
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestParseDocumentNotAnObject(t *testing.T) {
	_, err := ParseDocument([]byte(`["entities"]`))
	assert.ErrorIs(t, err, ErrDocumentParse)
}

func TestParseDocumentMissingKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing entities", `{"relationships":[],"context":[]}`},
		{"missing relationships", `{"entities":[],"context":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrDocumentParse)
		})
	}
}

func TestParseDocumentMissingContextAllowed(t *testing.T) {
	// Context is never consulted during materialization; its absence does
	// not invalidate a document.
	doc, err := ParseDocument([]byte(`{"entities":[],"relationships":[]}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Context)
}

func TestValidateCleanDocument(t *testing.T) {
	doc := &Document{
		Entities: []Entity{
			{Name: "Ramaphosa", Type: "person", Subtype: "politician"},
			{Name: "ANC", Type: "organization", Subtype: "government"},
		},
		Relationships: []Relationship{
			{Source: "Ramaphosa", Target: "ANC", Type: "supports"},
		},
	}

	assert.Empty(t, Validate(doc, schema.Default()))
}

func TestValidateReportsViolations(t *testing.T) {
	doc := &Document{
		Entities: []Entity{
			{Name: "A", Type: "alien", Subtype: ""},
			{Name: "B", Type: "person", Subtype: "astronaut"},
		},
		Relationships: []Relationship{
			{Source: "A", Target: "C", Type: "abducts"},
		},
	}

	problems := Validate(doc, schema.Default())
	kinds := make(map[string]int)
	for _, p := range problems {
		kinds[p.Kind]++
	}

	assert.Equal(t, 1, kinds["entity_type"])
	assert.Equal(t, 1, kinds["entity_subtype"])
	assert.Equal(t, 1, kinds["relationship_type"])
	assert.Equal(t, 1, kinds["unknown_endpoint"], "only C is undeclared")
}
