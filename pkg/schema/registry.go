package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrAlreadyExists is returned by Register when a schema with the same name
// is already present.
var ErrAlreadyExists = errors.New("schema already exists")

// Registry holds entity schemas by name. Built-in schemas are registered at
// construction; inline schemas submitted with requests and YAML documents
// loaded from disk are added at runtime.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry returns a registry pre-populated with the built-in retail
// entity schemas.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[string]*Schema)}
	for _, s := range builtinSchemas() {
		r.schemas[s.Name] = s
	}
	return r
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	return s, ok
}

// List returns registered schemas, optionally filtered by domain, sorted by
// name for stable output.
func (r *Registry) List(domain string) []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Schema, 0, len(r.schemas))
	for _, s := range r.schemas {
		if domain != "" && s.Domain != domain {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Register validates and stores a new schema. A name that is already
// registered fails with ErrAlreadyExists; the existing schema is kept.
func (r *Registry) Register(s *Schema) error {
	if err := validateSchema(s); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[s.Name]; exists {
		return fmt.Errorf("schema %q: %w", s.Name, ErrAlreadyExists)
	}
	r.schemas[s.Name] = s
	return nil
}

func validateSchema(s *Schema) error {
	if s == nil {
		return fmt.Errorf("schema is nil")
	}
	if s.Name == "" {
		return fmt.Errorf("schema name is required")
	}
	if s.Domain == "" {
		return fmt.Errorf("schema %q has no domain", s.Name)
	}
	if s.Description == "" {
		return fmt.Errorf("schema %q has no description", s.Name)
	}
	if s.Fields.Len() == 0 {
		return fmt.Errorf("schema %q has no fields", s.Name)
	}
	for _, name := range s.Fields.Names() {
		def, _ := s.Fields.Get(name)
		if def == nil || def.Type == "" {
			return fmt.Errorf("schema %q: field %q has no type", s.Name, name)
		}
	}
	return nil
}

// FieldInfo is the field summary exposed by the schema listing APIs.
type FieldInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
	Example     string `json:"example,omitempty"`
}

// Info summarizes a schema for listing. The example column shows the field
// format when one is declared, falling back to the default value.
type Info struct {
	Name        string      `json:"name"`
	Domain      string      `json:"domain"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldInfo `json:"fields"`
}

// Describe returns the listing summary for a schema.
func Describe(s *Schema) Info {
	info := Info{
		Name:        s.Name,
		Domain:      s.Domain,
		Description: s.Description,
		Fields:      make([]FieldInfo, 0, s.Fields.Len()),
	}
	for _, name := range s.Fields.Names() {
		def, _ := s.Fields.Get(name)
		example := def.Format
		if example == "" && def.Default != nil {
			example = fmt.Sprintf("%v", def.Default)
		}
		info.Fields = append(info.Fields, FieldInfo{
			Name:        name,
			Type:        def.Type,
			Required:    def.Required,
			Description: def.Description,
			Example:     example,
		})
	}
	return info
}
