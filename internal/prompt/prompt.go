// Package prompt assembles the two-message conversation sent to the
// generation endpoint: a system instruction embedding the schema
// vocabulary and extraction guidelines, and a user instruction carrying
// the article text verbatim.
package prompt

import (
	"fmt"
	"strings"

	"newsgraph/internal/llm"
	"newsgraph/internal/schema"
)

const systemTemplate = `You are a Knowledge Graph creator specializing in news article analysis. Your task is to create a detailed knowledge graph that captures key entities, their relationships, and the broader context of the story.

Entity types MUST be one of: %s
All entity type values must be lowercase.

When analyzing the article:
1. Identify ALL key actors (people, organizations) and their roles
2. Include specific policies, issues, and their impacts
3. Capture responses and reactions from different parties
4. Note any justifications or reasoning given for actions
5. Include relevant locations and events

Relationships should:
- Be binary (one source to one target)
- Use clear, active verbs in present tense (e.g., "implements", "opposes", "announces", "responds", "justifies")
- Capture the nature of interactions between entities
- Include both direct actions and reactions
- Show cause-and-effect connections

Context should include:
- Economic implications
- Political dynamics
- International relations
- Historical context (if mentioned)
- Potential impacts or consequences

Follow this JSON structure strictly:
- entities: array of objects with name (string), type (string), subtype (string) and description (string)
- relationships: array of objects with source (string), target (string), type (string), and description (string)
- context: array of objects with aspect (string) and description (string)

Make sure to capture the full complexity of the story while maintaining clear, direct connections.

Additional instructions:
1. Assign subtypes to entities where applicable. Valid subtypes are:
%s
2. Use only these relationship types: %s
3. Include temporal information for events and actions in ISO date format (YYYY-MM-DD) where possible.
4. Assign confidence scores (0-1) to entities and relationships based on how certain the information is.
5. Group entities or relationships into broader topics where relevant.
6. Flag potentially controversial or unverified claims.`

const userTemplate = "Please create a knowledge graph from the provided article: \n%s\n\n"

// Build returns the ordered system and user messages for one extraction.
// The article text is passed through untouched; extremely long input may
// exceed the endpoint's context window, which is not handled here.
func Build(vocab schema.Vocabulary, article string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: SystemPrompt(vocab)},
		{Role: "user", Content: fmt.Sprintf(userTemplate, article)},
	}
}

// SystemPrompt renders the long-form extraction instruction for the given
// vocabulary.
func SystemPrompt(vocab schema.Vocabulary) string {
	entityTypes := make([]string, len(vocab.EntityTypes))
	for i, et := range vocab.EntityTypes {
		entityTypes[i] = string(et)
	}

	relTypes := make([]string, len(vocab.RelationshipTypes))
	for i, rt := range vocab.RelationshipTypes {
		relTypes[i] = string(rt)
	}

	return fmt.Sprintf(systemTemplate,
		strings.Join(entityTypes, ", "),
		subtypesInfo(vocab),
		strings.Join(relTypes, ", "))
}

// subtypesInfo lists subtypes per entity type, skipping types with no
// enumerated subtypes.
func subtypesInfo(vocab schema.Vocabulary) string {
	var lines []string
	for _, et := range vocab.EntityTypes {
		subtypes := vocab.Subtypes[et]
		if len(subtypes) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", et, strings.Join(subtypes, ", ")))
	}
	return strings.Join(lines, "\n")
}
