// Package manifest loads declarative span/label/style highlight sets from
// YAML, validated against a generated JSON Schema (SPEC_FULL.md §3.3).
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

// Entry is one declared highlight: a position range plus label and kind.
// Columns and lines are 0-indexed, matching span.Position.
type Entry struct {
	StartLine   int    `yaml:"start_line" json:"start_line" jsonschema:"required"`
	StartColumn int    `yaml:"start_column" json:"start_column" jsonschema:"required"`
	LastLine    int    `yaml:"last_line" json:"last_line" jsonschema:"required"`
	LastColumn  int    `yaml:"last_column" json:"last_column" jsonschema:"required"`
	Label       string `yaml:"label" json:"label,omitempty"`
	Kind        string `yaml:"kind" json:"kind" jsonschema:"enum=error,enum=warning,enum=note,enum=help"`
}

// Manifest is the top-level YAML document: a flat list of Entry.
type Manifest struct {
	Highlights []Entry `yaml:"highlights" json:"highlights"`
}

// schema is generated once from the Manifest struct tags and reused for
// every Load call, mirroring MacroPower-niceyaml's invopop+santhosh-tekuri
// pairing: invopop/jsonschema produces the schema document, and
// santhosh-tekuri/jsonschema/v6 compiles and evaluates it.
var schema = invopop.Reflect(&Manifest{})

// Load parses a YAML manifest, validates it against the generated schema,
// and converts it to Highlight values ready for Formatter.AddHighlight (spec.md §6).
// m is used to compute each entry's End position from its Last one rune
// past LastColumn, under the shift rule in span.Position.Shift.
func Load(data []byte, m span.Metric) ([]highlight.Highlight, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: parse yaml: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("manifest: schema validation: %w", err)
	}

	var man Manifest
	if err := yaml.Unmarshal(data, &man); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	highlights := make([]highlight.Highlight, 0, len(man.Highlights))
	for i, e := range man.Highlights {
		sty, ok := kindStyle(e.Kind)
		if !ok {
			return nil, fmt.Errorf("manifest: highlights[%d]: unknown kind %q", i, e.Kind)
		}
		start := span.Position{Line: e.StartLine, Column: e.StartColumn}
		last := span.Position{Line: e.LastLine, Column: e.LastColumn}
		end := last
		end.Shift(' ', m)
		sp, err := span.New(start, last, end)
		if err != nil {
			return nil, fmt.Errorf("manifest: highlights[%d]: %w", i, err)
		}
		highlights = append(highlights, highlight.Highlight{Span: sp, Label: e.Label, Style: sty})
	}
	return highlights, nil
}

func kindStyle(k string) (style.Style, bool) {
	switch k {
	case "error":
		return style.ErrorStyle, true
	case "warning":
		return style.WarningStyle, true
	case "note":
		return style.NoteStyle, true
	case "help":
		return style.HelpStyle, true
	default:
		return style.Style{}, false
	}
}

// validate compiles the generated schema on demand and checks doc against
// it, the same AddResource(url, any)+Compile+Validate sequence
// MacroPower-niceyaml's validate.NewValidator uses. Compiling per-call
// keeps manifest stateless for callers; the compiled form is cheap
// relative to YAML parsing for the manifest sizes this tool targets.
func validate(doc map[string]any) error {
	raw, err := schema.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	var schemaDoc any
	if err := json.Unmarshal(raw, &schemaDoc); err != nil {
		return fmt.Errorf("unmarshal schema: %w", err)
	}

	const url = "mem://manifest.schema.json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	return sch.Validate(doc)
}
