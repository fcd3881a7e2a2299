package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/datagen/pkg/schema"
	"github.com/qaforge/datagen/pkg/validate"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func cartSchema() *schema.Schema {
	return &schema.Schema{
		Name:        "cart",
		Domain:      "retail",
		Description: "Shopping cart",
		Fields: schema.NewFieldMap().
			Add("cart_id", &schema.FieldDef{Type: schema.TypeString, Required: true, Format: "CRT-{year}-{random:7}", Description: "Unique cart identifier"}).
			Add("items", &schema.FieldDef{
				Type: schema.TypeArray,
				ItemSchema: &schema.FieldDef{
					Type: schema.TypeObject,
					Fields: schema.NewFieldMap().
						Add("sku", &schema.FieldDef{Type: schema.TypeString}).
						Add("quantity", &schema.FieldDef{Type: schema.TypeInteger}),
				},
			}).
			Add("total", &schema.FieldDef{Type: schema.TypeFloat}),
		CoherenceRules: []string{"subtotal + tax must equal total"},
	}
}

func TestBuilder_TemplateSelection(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name   string
		in     Input
		marker string
	}{
		{"default is the general template", Input{Count: 5, Domain: "retail", Entity: "user"}, "Generate 5 test data records"},
		{"defect triggering picks edge cases", Input{Count: 3, Entity: "payment", DefectTriggering: true}, "EDGE CASE test data records"},
		{"edge_case hint picks edge cases", Input{Count: 3, Entity: "payment", Hints: []string{"Edge_Case"}}, "EDGE CASE test data records"},
		{"coherent cart", Input{Count: 1, Entity: "cart", Hints: []string{"coherent"}}, "Generate a COHERENT cart"},
		{"realistic order", Input{Count: 1, Entity: "order", Hints: []string{"realistic"}}, "Generate a COHERENT order"},
		{"reviews get the text template", Input{Count: 10, Entity: "review"}, "realistic reviews entries"},
		{"examples pick the reference template", Input{Count: 2, Entity: "user", Examples: []map[string]any{{"user_id": "USR-1"}}}, "REFERENCE EXAMPLES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, user := b.Build(tt.in)
			assert.NotEmpty(t, system)
			assert.Contains(t, user, tt.marker)
		})
	}
}

func TestBuilder_PlaceholdersFilled(t *testing.T) {
	b := NewBuilder()

	_, user := b.Build(Input{
		Count:   7,
		Domain:  "retail",
		Entity:  "cart",
		Context: "holiday rush baskets",
		Schema:  cartSchema(),
	})

	assert.NotContains(t, user, "{count}")
	assert.NotContains(t, user, "{schema}")
	assert.NotContains(t, user, "{context}")
	assert.Contains(t, user, "holiday rush baskets")
	assert.Contains(t, user, "Generate 7 test data records")
}

func TestFormatSchema(t *testing.T) {
	t.Run("nil schema", func(t *testing.T) {
		out := formatSchema(nil)
		assert.Contains(t, out, "No specific schema provided")
	})

	t.Run("fields render in declaration order with markers", func(t *testing.T) {
		out := formatSchema(cartSchema())

		assert.Contains(t, out, "Entity: cart")
		assert.Contains(t, out, "  - cart_id: string (REQUIRED) - Unique cart identifier (format: CRT-{year}-{random:7})")
		assert.Contains(t, out, "  - total: float")
		assert.Less(t, strings.Index(out, "cart_id"), strings.Index(out, "total"))
	})

	t.Run("array item fields render one level deep", func(t *testing.T) {
		out := formatSchema(cartSchema())
		assert.Contains(t, out, "    - sku: string")
		assert.Contains(t, out, "    - quantity: integer")
	})

	t.Run("coherence rules included", func(t *testing.T) {
		out := formatSchema(cartSchema())
		assert.Contains(t, out, "Coherence Rules:")
		assert.Contains(t, out, "  - subtotal + tax must equal total")
	})
}

func TestFormatConstraints(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No specific constraints.", formatConstraints(nil))
	})

	t.Run("sorted and fully rendered", func(t *testing.T) {
		out := formatConstraints(map[string]*validate.Constraint{
			"total": {Min: floatPtr(10), Max: floatPtr(500)},
			"email": {Regex: `.+@.+`, MaxLength: intPtr(64)},
			"tier":  {EnumValues: []string{"gold", "silver"}},
		})

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "  - email: max_length=64 pattern=.+@.+", lines[0])
		assert.Equal(t, "  - tier: values=[gold, silver]", lines[1])
		assert.Equal(t, "  - total: min=10 max=500", lines[2])
	})
}

func TestFormatScenarios(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "Generate all records with default scenario.", formatScenarios(nil))
	})

	t.Run("counts, descriptions, sorted overrides", func(t *testing.T) {
		out := formatScenarios([]Scenario{
			{Name: "premium", Count: 7, Description: "high spenders", Overrides: map[string]string{"tier": "gold", "country": "US"}},
			{Name: "guest", Count: 3},
		})

		assert.Contains(t, out, "  - premium: 7 records - high spenders (overrides: country=US, tier=gold)")
		assert.Contains(t, out, "  - guest: 3 records")
	})
}

func TestFormatExamples(t *testing.T) {
	t.Run("numbered JSON blocks", func(t *testing.T) {
		out := formatExamples([]map[string]any{
			{"user_id": "USR-0000001"},
			{"user_id": "USR-0000002"},
		})

		assert.Contains(t, out, "Example 1:")
		assert.Contains(t, out, "Example 2:")
		assert.Contains(t, out, `"user_id": "USR-0000001"`)
	})

	t.Run("capped at five", func(t *testing.T) {
		examples := make([]map[string]any, 9)
		for i := range examples {
			examples[i] = map[string]any{"n": i}
		}
		out := formatExamples(examples)

		assert.Contains(t, out, "Example 5:")
		assert.NotContains(t, out, "Example 6:")
	})
}

func TestStricterSuffix(t *testing.T) {
	// The retry prompt has to demand bare JSON.
	assert.Contains(t, StricterSuffix, "Output ONLY valid JSON array")
	assert.Contains(t, StricterSuffix, "Do not include markdown code blocks")
}
