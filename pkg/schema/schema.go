// Package schema defines the entity schema document model and the registry
// that serves it. A schema is a runtime document rather than a compile-time
// type: user-supplied inline schemas arrive as JSON, operator-supplied ones
// as YAML files, and the built-in retail entities are constructed in code.
// Field declaration order is preserved; it drives prompt rendering and the
// field order of generated records.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field types understood by the generators and the validator.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeFloat    = "float"
	TypeBoolean  = "boolean"
	TypeDate     = "date"
	TypeDateTime = "datetime"
	TypeEmail    = "email"
	TypePhone    = "phone"
	TypeAddress  = "address"
	TypeUUID     = "uuid"
	TypeEnum     = "enum"
	TypeObject   = "object"
	TypeArray    = "array"
)

// FieldDef describes a single schema field.
type FieldDef struct {
	Type        string    `json:"type" yaml:"type"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string    `json:"format,omitempty" yaml:"format,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	MinLength   *int      `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength   *int      `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Regex       string    `json:"regex,omitempty" yaml:"regex,omitempty"`
	Values      []string  `json:"values,omitempty" yaml:"values,omitempty"`
	Fields      *FieldMap `json:"fields,omitempty" yaml:"fields,omitempty"`
	ItemSchema  *FieldDef `json:"item_schema,omitempty" yaml:"item_schema,omitempty"`
}

// PatternOrRegex returns the regex constraint, whichever key it was
// declared under.
func (f *FieldDef) PatternOrRegex() string {
	if f.Pattern != "" {
		return f.Pattern
	}
	return f.Regex
}

// Schema is an entity schema document.
type Schema struct {
	Name           string    `json:"name" yaml:"name"`
	Domain         string    `json:"domain" yaml:"domain"`
	Description    string    `json:"description" yaml:"description"`
	Fields         *FieldMap `json:"fields" yaml:"fields"`
	CoherenceRules []string  `json:"coherence_rules,omitempty" yaml:"coherence_rules,omitempty"`
}

// ParseJSON decodes a schema document from JSON, preserving field order.
func ParseJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return &s, nil
}

// FieldMap is an insertion-ordered mapping of field name to definition.
type FieldMap struct {
	names []string
	defs  map[string]*FieldDef
}

func NewFieldMap() *FieldMap {
	return &FieldMap{defs: make(map[string]*FieldDef)}
}

// Add appends a field, replacing any existing definition in place. It
// returns the map for chaining when building schemas in code.
func (m *FieldMap) Add(name string, def *FieldDef) *FieldMap {
	if m.defs == nil {
		m.defs = make(map[string]*FieldDef)
	}
	if _, ok := m.defs[name]; !ok {
		m.names = append(m.names, name)
	}
	m.defs[name] = def
	return m
}

func (m *FieldMap) Get(name string) (*FieldDef, bool) {
	if m == nil {
		return nil, false
	}
	def, ok := m.defs[name]
	return def, ok
}

func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns field names in declaration order.
func (m *FieldMap) Names() []string {
	if m == nil {
		return nil
	}
	return m.names
}

func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(name)
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.defs[name])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *FieldMap) UnmarshalJSON(data []byte) error {
	m.names = nil
	m.defs = make(map[string]*FieldDef)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("fields: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("fields: expected string key, got %v", keyTok)
		}

		var def FieldDef
		if err := dec.Decode(&def); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		m.Add(name, &def)
	}

	_, err = dec.Token()
	return err
}

func (m *FieldMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("fields: expected mapping, got %v", value.Kind)
	}

	m.names = nil
	m.defs = make(map[string]*FieldDef)

	for i := 0; i < len(value.Content); i += 2 {
		keyNode := value.Content[i]
		valNode := value.Content[i+1]

		var def FieldDef
		if err := valNode.Decode(&def); err != nil {
			return fmt.Errorf("field %q: %w", keyNode.Value, err)
		}
		m.Add(keyNode.Value, &def)
	}
	return nil
}
