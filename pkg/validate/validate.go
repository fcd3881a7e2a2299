// Package validate checks generated records against their schema and any
// per-field constraints supplied with the request. Validation collects all
// errors rather than stopping at the first; a type mismatch on a field
// skips that field's remaining checks since they would be meaningless.
package validate

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/qaforge/datagen/pkg/schema"
)

// Constraint narrows a schema field for a single request. Nil pointers and
// empty values mean the schema's own bounds apply.
type Constraint struct {
	Min        *float64
	Max        *float64
	MinLength  *int
	MaxLength  *int
	EnumValues []string
	Regex      string
	Format     string
}

// Error describes a single constraint violation.
type Error struct {
	Field   string
	Message string
	Value   any
}

type Result struct {
	Valid  bool
	Errors []Error
}

// Messages returns the error messages prefixed with their field paths.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return out
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate checks a single record against the schema. Fields in the record
// that the schema does not declare are ignored.
func (v *Validator) Validate(data map[string]any, s *schema.Schema, constraints map[string]*Constraint) Result {
	var errors []Error

	for _, name := range s.Fields.Names() {
		def, _ := s.Fields.Get(name)

		value, present := data[name]
		if !present {
			if def.Required {
				errors = append(errors, Error{
					Field:   name,
					Message: fmt.Sprintf("Required field '%s' is missing", name),
				})
			}
			continue
		}

		errors = append(errors, v.ValidateField(name, value, def, constraints[name])...)
	}

	result := Result{Valid: len(errors) == 0, Errors: errors}
	if !result.Valid {
		slog.Warn("validation failed", "error_count", len(errors))
	}
	return result
}

// ValidateField checks one value against its definition. The name is used
// as the field path in error messages; nested fields extend it with dotted
// and indexed segments.
func (v *Validator) ValidateField(name string, value any, def *schema.FieldDef, c *Constraint) []Error {
	switch def.Type {
	case schema.TypeInteger:
		return v.validateInteger(name, value, def, c)
	case schema.TypeFloat:
		return v.validateFloat(name, value, def, c)
	case schema.TypeString:
		return v.validateString(name, value, def, c)
	case schema.TypeEnum:
		return v.validateEnum(name, value, def, c)
	case schema.TypeArray:
		return v.validateArray(name, value, def)
	case schema.TypeObject:
		return v.validateObject(name, value, def)
	}
	// email, phone, datetime and friends carry no checkable constraints
	return nil
}

func (v *Validator) validateInteger(name string, value any, def *schema.FieldDef, c *Constraint) []Error {
	n, ok := asInt(value)
	if !ok {
		return []Error{{Field: name, Message: fmt.Sprintf("Expected integer, got %s", typeName(value)), Value: value}}
	}

	minVal, maxVal := def.Min, def.Max
	if c != nil {
		if c.Min != nil {
			minVal = c.Min
		}
		if c.Max != nil {
			maxVal = c.Max
		}
	}

	var errors []Error
	if minVal != nil && float64(n) < *minVal {
		errors = append(errors, Error{Field: name, Message: fmt.Sprintf("Value %d is less than minimum %v", n, *minVal), Value: value})
	}
	if maxVal != nil && float64(n) > *maxVal {
		errors = append(errors, Error{Field: name, Message: fmt.Sprintf("Value %d is greater than maximum %v", n, *maxVal), Value: value})
	}
	return errors
}

func (v *Validator) validateFloat(name string, value any, def *schema.FieldDef, c *Constraint) []Error {
	f, ok := asFloat(value)
	if !ok {
		return []Error{{Field: name, Message: fmt.Sprintf("Expected number, got %s", typeName(value)), Value: value}}
	}

	minVal, maxVal := def.Min, def.Max
	if c != nil {
		if c.Min != nil {
			minVal = c.Min
		}
		if c.Max != nil {
			maxVal = c.Max
		}
	}

	var errors []Error
	if minVal != nil && f < *minVal {
		errors = append(errors, Error{Field: name, Message: fmt.Sprintf("Value %v is less than minimum %v", f, *minVal), Value: value})
	}
	if maxVal != nil && f > *maxVal {
		errors = append(errors, Error{Field: name, Message: fmt.Sprintf("Value %v is greater than maximum %v", f, *maxVal), Value: value})
	}
	return errors
}

func (v *Validator) validateString(name string, value any, def *schema.FieldDef, c *Constraint) []Error {
	s, ok := value.(string)
	if !ok {
		return []Error{{Field: name, Message: fmt.Sprintf("Expected string, got %s", typeName(value)), Value: value}}
	}

	minLen, maxLen := def.MinLength, def.MaxLength
	pattern := def.PatternOrRegex()
	if c != nil {
		if c.MinLength != nil {
			minLen = c.MinLength
		}
		if c.MaxLength != nil {
			maxLen = c.MaxLength
		}
		if c.Regex != "" {
			pattern = c.Regex
		}
	}

	var errors []Error
	// Length limits count characters, not bytes.
	length := utf8.RuneCountInString(s)
	if minLen != nil && length < *minLen {
		errors = append(errors, Error{Field: name, Message: fmt.Sprintf("String length %d is less than minimum %d", length, *minLen), Value: value})
	}
	if maxLen != nil && length > *maxLen {
		errors = append(errors, Error{Field: name, Message: fmt.Sprintf("String length %d is greater than maximum %d", length, *maxLen), Value: value})
	}

	if pattern != "" {
		// Match from the start of the string, like most schema validators.
		re, err := regexp.Compile(`\A(?:` + pattern + `)`)
		if err != nil {
			errors = append(errors, Error{Field: name, Message: fmt.Sprintf("Invalid pattern %s", pattern), Value: value})
		} else if !re.MatchString(s) {
			errors = append(errors, Error{Field: name, Message: fmt.Sprintf("String does not match pattern %s", pattern), Value: value})
		}
	}
	return errors
}

func (v *Validator) validateEnum(name string, value any, def *schema.FieldDef, c *Constraint) []Error {
	allowed := def.Values
	if c != nil && len(c.EnumValues) > 0 {
		allowed = c.EnumValues
	}

	str := fmt.Sprintf("%v", value)
	for _, a := range allowed {
		if str == a {
			return nil
		}
	}
	return []Error{{
		Field:   name,
		Message: fmt.Sprintf("Value '%v' not in allowed values: [%s]", value, strings.Join(allowed, ", ")),
		Value:   value,
	}}
}

func (v *Validator) validateArray(name string, value any, def *schema.FieldDef) []Error {
	items, ok := value.([]any)
	if !ok {
		return []Error{{Field: name, Message: fmt.Sprintf("Expected array, got %s", typeName(value)), Value: value}}
	}

	var errors []Error
	if def.ItemSchema != nil && def.ItemSchema.Type == schema.TypeObject {
		for idx, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			for _, fieldName := range def.ItemSchema.Fields.Names() {
				fieldDef, _ := def.ItemSchema.Fields.Get(fieldName)
				if fv, present := obj[fieldName]; present {
					path := fmt.Sprintf("%s[%d].%s", name, idx, fieldName)
					errors = append(errors, v.ValidateField(path, fv, fieldDef, nil)...)
				}
			}
		}
	}
	return errors
}

func (v *Validator) validateObject(name string, value any, def *schema.FieldDef) []Error {
	obj, ok := value.(map[string]any)
	if !ok {
		return []Error{{Field: name, Message: fmt.Sprintf("Expected object, got %s", typeName(value)), Value: value}}
	}

	var errors []Error
	for _, nested := range def.Fields.Names() {
		nestedDef, _ := def.Fields.Get(nested)
		path := name + "." + nested
		if nv, present := obj[nested]; present {
			errors = append(errors, v.ValidateField(path, nv, nestedDef, nil)...)
		} else if nestedDef.Required {
			errors = append(errors, Error{
				Field:   path,
				Message: fmt.Sprintf("Required nested field '%s' is missing", nested),
			})
		}
	}
	return errors
}

// asInt accepts native ints, integral floats (the usual product of JSON
// decoding), and json.Number values. Booleans never count as integers.
func asInt(value any) (int64, bool) {
	switch n := value.(type) {
	case bool:
		return 0, false
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
		return 0, false
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case bool:
		return 0, false
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int32, int64:
		return "integer"
	case float64, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
