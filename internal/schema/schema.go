// Package schema declares the closed vocabularies the extractor may emit
// and compiles them into the structural constraint sent to the model.
package schema

import (
	"github.com/revrost/go-openrouter/jsonschema"
)

// EntityType represents the type of an extracted entity
type EntityType string

const (
	EntityPerson       EntityType = "person"
	EntityOrganization EntityType = "organization"
	EntityPolicy       EntityType = "policy"
	EntityIssue        EntityType = "issue"
	EntityImpact       EntityType = "impact"
	EntityLocation     EntityType = "location"
	EntityEvent        EntityType = "event"
)

// RelationshipType represents the type of a directed edge between entities
type RelationshipType string

const (
	RelImplements       RelationshipType = "implements"
	RelOpposes          RelationshipType = "opposes"
	RelSupports         RelationshipType = "supports"
	RelCriticizes       RelationshipType = "criticizes"
	RelCollaboratesWith RelationshipType = "collaborates_with"
	RelImpacts          RelationshipType = "impacts"
	RelRespondsTo       RelationshipType = "responds_to"
)

// Vocabulary is the fixed set of entity types, per-type subtypes, and
// relationship types used for one extraction. It is constructed once and
// passed explicitly; nothing mutates it after construction.
type Vocabulary struct {
	EntityTypes       []EntityType
	Subtypes          map[EntityType][]string
	RelationshipTypes []RelationshipType
}

// Default returns the standard news-analysis vocabulary.
func Default() Vocabulary {
	return Vocabulary{
		EntityTypes: []EntityType{
			EntityPerson,
			EntityOrganization,
			EntityPolicy,
			EntityIssue,
			EntityImpact,
			EntityLocation,
			EntityEvent,
		},
		Subtypes: map[EntityType][]string{
			EntityPerson:       {"politician", "activist", "expert"},
			EntityOrganization: {"government", "NGO", "corporation"},
			EntityPolicy:       {"domestic", "foreign", "economic"},
			EntityIssue:        {},
			EntityImpact:       {},
			EntityLocation:     {},
			EntityEvent:        {},
		},
		RelationshipTypes: []RelationshipType{
			RelImplements,
			RelOpposes,
			RelSupports,
			RelCriticizes,
			RelCollaboratesWith,
			RelImpacts,
			RelRespondsTo,
		},
	}
}

// ValidEntityType reports whether t is one of the vocabulary's entity types.
func (v Vocabulary) ValidEntityType(t string) bool {
	for _, et := range v.EntityTypes {
		if string(et) == t {
			return true
		}
	}
	return false
}

// ValidSubtype reports whether sub is acceptable for entity type t. An empty
// subtype is always acceptable. Types with no enumerated subtypes accept
// any value.
func (v Vocabulary) ValidSubtype(t, sub string) bool {
	if sub == "" {
		return true
	}
	subtypes, ok := v.Subtypes[EntityType(t)]
	if !ok || len(subtypes) == 0 {
		return true
	}
	for _, s := range subtypes {
		if s == sub {
			return true
		}
	}
	return false
}

// ValidRelationshipType reports whether t is one of the vocabulary's
// relationship types.
func (v Vocabulary) ValidRelationshipType(t string) bool {
	for _, rt := range v.RelationshipTypes {
		if string(rt) == t {
			return true
		}
	}
	return false
}

// AllSubtypes returns the union of all subtypes across entity types, in
// entity-type declaration order.
func (v Vocabulary) AllSubtypes() []string {
	var all []string
	for _, et := range v.EntityTypes {
		all = append(all, v.Subtypes[et]...)
	}
	return all
}

// entityTypeStrings returns the entity types as plain strings for enum use.
func (v Vocabulary) entityTypeStrings() []string {
	out := make([]string, len(v.EntityTypes))
	for i, et := range v.EntityTypes {
		out[i] = string(et)
	}
	return out
}

// relationshipTypeStrings returns the relationship types as plain strings.
func (v Vocabulary) relationshipTypeStrings() []string {
	out := make([]string, len(v.RelationshipTypes))
	for i, rt := range v.RelationshipTypes {
		out[i] = string(rt)
	}
	return out
}

// OutputSchema compiles the vocabulary into the structural constraint for
// the generation endpoint: a top-level object requiring the entities,
// relationships, and context arrays, with enum-restricted type fields.
func (v Vocabulary) OutputSchema() *jsonschema.Definition {
	return &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"entities": {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"name": {Type: jsonschema.String},
						"type": {
							Type: jsonschema.String,
							Enum: v.entityTypeStrings(),
						},
						"subtype": {
							Type: jsonschema.String,
							Enum: v.AllSubtypes(),
						},
						"description": {Type: jsonschema.String},
					},
					Required: []string{"name", "type", "subtype", "description"},
				},
			},
			"relationships": {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"source": {Type: jsonschema.String},
						"target": {Type: jsonschema.String},
						"type": {
							Type: jsonschema.String,
							Enum: v.relationshipTypeStrings(),
						},
						"description": {Type: jsonschema.String},
					},
					Required: []string{"source", "target", "type", "description"},
				},
			},
			"context": {
				Type: jsonschema.Array,
				Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"aspect":      {Type: jsonschema.String},
						"description": {Type: jsonschema.String},
					},
					Required: []string{"aspect", "description"},
				},
			},
		},
		Required: []string{"entities", "relationships", "context"},
	}
}
