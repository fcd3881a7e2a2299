package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/qaforge/datagen/pkg/schema"
	"github.com/qaforge/datagen/pkg/validate"
)

// Scenario mirrors a request scenario for prompt rendering.
type Scenario struct {
	Name        string
	Count       int
	Description string
	Overrides   map[string]string
}

// Input carries the request fields the builder renders. Schema may be nil
// when the entity has no registered schema; Examples holds retrieved
// reference records when a retrieval pass preceded the LLM call.
type Input struct {
	Count            int
	Domain           string
	Entity           string
	Context          string
	Hints            []string
	DefectTriggering bool
	Scenarios        []Scenario
	Constraints      map[string]*validate.Constraint
	Schema           *schema.Schema
	Examples         []map[string]any
}

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the system and user prompts for the request.
func (b *Builder) Build(in Input) (string, string) {
	template := b.selectTemplate(in)

	examples := ""
	if len(in.Examples) > 0 {
		examples = formatExamples(in.Examples)
	}

	context := in.Context
	if context == "" {
		context = "No specific context provided."
	}

	r := strings.NewReplacer(
		"{count}", strconv.Itoa(in.Count),
		"{domain}", in.Domain,
		"{entity_type}", in.Entity,
		"{content_type}", in.Entity+"s",
		"{context}", context,
		"{schema}", formatSchema(in.Schema),
		"{constraints}", formatConstraints(in.Constraints),
		"{scenarios}", formatScenarios(in.Scenarios),
		"{rag_examples}", examples,
		"{defect_patterns}", examples,
		"{sentiment_distribution}", "Mixed: 60% positive, 30% neutral, 10% negative",
	)

	return systemPrompt, r.Replace(template)
}

func (b *Builder) selectTemplate(in Input) string {
	hints := make(map[string]bool, len(in.Hints))
	for _, h := range in.Hints {
		hints[strings.ToLower(h)] = true
	}

	if in.DefectTriggering || hints["edge_case"] || hints["defect"] {
		return edgeCaseTemplate
	}

	if (in.Entity == "cart" || in.Entity == "order") && (hints["coherent"] || hints["realistic"]) {
		return coherentTemplate
	}

	switch in.Entity {
	case "review", "comment", "feedback":
		return textContentTemplate
	}

	if len(in.Examples) > 0 {
		return ragTemplate
	}

	return generalTemplate
}

func formatSchema(s *schema.Schema) string {
	if s == nil {
		return "No specific schema provided. Generate data based on entity name and context."
	}

	var lines []string
	lines = append(lines,
		fmt.Sprintf("Entity: %s", s.Name),
		fmt.Sprintf("Domain: %s", s.Domain),
		fmt.Sprintf("Description: %s", s.Description),
		"\nFields:",
	)

	for _, name := range s.Fields.Names() {
		def, _ := s.Fields.Get(name)
		lines = append(lines, formatField(name, def, "  "))

		// Render one level of nested structure so the model sees the
		// shape of objects and array items.
		nested := def.Fields
		if nested == nil && def.ItemSchema != nil {
			nested = def.ItemSchema.Fields
		}
		if nested != nil {
			for _, nn := range nested.Names() {
				nd, _ := nested.Get(nn)
				lines = append(lines, fmt.Sprintf("    - %s: %s", nn, nd.Type))
			}
		}
	}

	if len(s.CoherenceRules) > 0 {
		lines = append(lines, "\nCoherence Rules:")
		for _, rule := range s.CoherenceRules {
			lines = append(lines, fmt.Sprintf("  - %s", rule))
		}
	}

	return strings.Join(lines, "\n")
}

func formatField(name string, def *schema.FieldDef, indent string) string {
	required := ""
	if def.Required {
		required = " (REQUIRED)"
	}
	line := fmt.Sprintf("%s- %s: %s%s", indent, name, def.Type, required)
	if def.Description != "" {
		line += fmt.Sprintf(" - %s", def.Description)
	}
	if def.Format != "" {
		line += fmt.Sprintf(" (format: %s)", def.Format)
	}
	return line
}

func formatConstraints(constraints map[string]*validate.Constraint) string {
	if len(constraints) == 0 {
		return "No specific constraints."
	}

	names := make([]string, 0, len(constraints))
	for name := range constraints {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		c := constraints[name]
		parts := []string{name + ":"}

		if c.Min != nil {
			parts = append(parts, fmt.Sprintf("min=%v", *c.Min))
		}
		if c.Max != nil {
			parts = append(parts, fmt.Sprintf("max=%v", *c.Max))
		}
		if c.MinLength != nil {
			parts = append(parts, fmt.Sprintf("min_length=%d", *c.MinLength))
		}
		if c.MaxLength != nil {
			parts = append(parts, fmt.Sprintf("max_length=%d", *c.MaxLength))
		}
		if len(c.EnumValues) > 0 {
			parts = append(parts, fmt.Sprintf("values=[%s]", strings.Join(c.EnumValues, ", ")))
		}
		if c.Regex != "" {
			parts = append(parts, fmt.Sprintf("pattern=%s", c.Regex))
		}
		if c.Format != "" {
			parts = append(parts, fmt.Sprintf("format=%s", c.Format))
		}

		lines = append(lines, "  - "+strings.Join(parts, " "))
	}

	return strings.Join(lines, "\n")
}

func formatScenarios(scenarios []Scenario) string {
	if len(scenarios) == 0 {
		return "Generate all records with default scenario."
	}

	var lines []string
	for _, sc := range scenarios {
		parts := []string{fmt.Sprintf("%s: %d records", sc.Name, sc.Count)}
		if sc.Description != "" {
			parts = append(parts, fmt.Sprintf("- %s", sc.Description))
		}
		if len(sc.Overrides) > 0 {
			keys := make([]string, 0, len(sc.Overrides))
			for k := range sc.Overrides {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			pairs := make([]string, 0, len(keys))
			for _, k := range keys {
				pairs = append(pairs, fmt.Sprintf("%s=%s", k, sc.Overrides[k]))
			}
			parts = append(parts, fmt.Sprintf("(overrides: %s)", strings.Join(pairs, ", ")))
		}
		lines = append(lines, "  - "+strings.Join(parts, " "))
	}

	return strings.Join(lines, "\n")
}

// formatExamples renders up to five retrieved records as numbered
// pretty-printed JSON blocks.
func formatExamples(examples []map[string]any) string {
	if len(examples) == 0 {
		return "No examples provided."
	}
	if len(examples) > 5 {
		examples = examples[:5]
	}

	var lines []string
	for i, example := range examples {
		lines = append(lines, fmt.Sprintf("Example %d:", i+1))
		b, err := json.MarshalIndent(example, "", "  ")
		if err != nil {
			b = []byte("{}")
		}
		lines = append(lines, string(b), "")
	}
	return strings.Join(lines, "\n")
}
