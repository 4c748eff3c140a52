// Package rules provides the fixed keyword tables the optimizer engine is
// built from: stop words, domain keywords, locality markers, and the ordered
// section categories with their priority keyword lists. The tables ship
// embedded in the binary and are validated against a JSON Schema at load
// time; after loading they are read-only.
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed rules.json
var rulesJSON string

//go:embed schema.json
var schemaJSON string

// SectionRule is one body-section category with its keyword list in
// priority order. The first keyword found in the remaining text wins.
type SectionRule struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Rules holds the immutable keyword tables used across the engine.
type Rules struct {
	StopWords       []string      `json:"stop_words"`
	DomainKeywords  []string      `json:"domain_keywords"`
	LocalityMarkers []string      `json:"locality_markers"`
	Sections        []SectionRule `json:"sections"`

	stopSet map[string]bool
}

// Load parses and validates the embedded rule tables.
func Load() (*Rules, error) {
	if err := validate(schemaJSON, rulesJSON); err != nil {
		return nil, fmt.Errorf("failed to validate rule tables: %w", err)
	}

	var r Rules
	if err := json.Unmarshal([]byte(rulesJSON), &r); err != nil {
		return nil, fmt.Errorf("failed to parse rule tables: %w", err)
	}

	r.stopSet = make(map[string]bool, len(r.StopWords))
	for _, w := range r.StopWords {
		r.stopSet[strings.ToLower(w)] = true
	}

	return &r, nil
}

// IsStopWord reports whether the (lowercase) token is in the stop-word set.
func (r *Rules) IsStopWord(token string) bool {
	return r.stopSet[token]
}

// validate checks the rules document against the embedded schema.
func validate(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("rule tables do not match schema:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("\n  %s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
