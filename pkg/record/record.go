// Package record implements an insertion-ordered key/value document. JSON
// objects do not guarantee key order in Go maps, but generated records must
// serialize with stable field order, so the order of Set calls (or of the
// keys in the source JSON) is preserved through MarshalJSON.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Reserved metadata keys stamped onto every generated record.
const (
	KeyIndex    = "_index"
	KeyScenario = "_scenario"
)

// Record is an ordered key -> value map. Values hold the JSON scalar,
// array, and object set; nested objects are plain map[string]any.
type Record struct {
	keys   []string
	values map[string]any
}

func New() *Record {
	return &Record{values: make(map[string]any)}
}

// FromMap builds a record from a plain map with the given key order. Keys
// absent from the map are skipped; keys in the map but not in order are
// appended in unspecified order.
func FromMap(m map[string]any, order []string) *Record {
	r := New()
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		if v, ok := m[k]; ok {
			r.Set(k, v)
			seen[k] = true
		}
	}
	for k, v := range m {
		if !seen[k] {
			r.Set(k, v)
		}
	}
	return r
}

// Set stores a value, appending the key on first insertion.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (r *Record) Keys() []string {
	return r.keys
}

// Map returns the underlying values as a plain map. Order is lost.
func (r *Record) Map() map[string]any {
	return r.values
}

// Clone returns a shallow copy preserving key order.
func (r *Record) Clone() *Record {
	c := &Record{
		keys:   append([]string(nil), r.keys...),
		values: make(map[string]any, len(r.values)),
	}
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving top-level key order.
// Nested objects decode to map[string]any and lose internal order.
func (r *Record) UnmarshalJSON(data []byte) error {
	r.keys = nil
	r.values = make(map[string]any)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: expected string key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		r.Set(key, value)
	}

	// Consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalList serializes a slice of records as a JSON array with the given
// indent ("" for compact output).
func MarshalList(records []*Record, indent string) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(indent)
		}
		b, err := rec.MarshalJSON()
		if err != nil {
			return "", err
		}
		if indent != "" {
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, b, indent, indent); err != nil {
				return "", err
			}
			b = pretty.Bytes()
		}
		buf.Write(b)
	}
	if indent != "" && len(records) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte(']')
	return buf.String(), nil
}
