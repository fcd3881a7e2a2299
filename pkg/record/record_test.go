package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_OrderPreservation(t *testing.T) {
	t.Run("keys keep insertion order", func(t *testing.T) {
		r := New()
		r.Set("user_id", "USR-1234567")
		r.Set("email", "jane@example.com")
		r.Set("age", 34)

		assert.Equal(t, []string{"user_id", "email", "age"}, r.Keys())
	})

	t.Run("re-setting a key does not move it", func(t *testing.T) {
		r := New()
		r.Set("a", 1)
		r.Set("b", 2)
		r.Set("a", 3)

		assert.Equal(t, []string{"a", "b"}, r.Keys())
		v, ok := r.Get("a")
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("delete removes key and value", func(t *testing.T) {
		r := New()
		r.Set("a", 1)
		r.Set("b", 2)
		r.Set("c", 3)
		r.Delete("b")

		assert.Equal(t, []string{"a", "c"}, r.Keys())
		assert.False(t, r.Has("b"))
		assert.Equal(t, 2, r.Len())
	})
}

func TestRecord_MarshalJSON(t *testing.T) {
	t.Run("serializes fields in insertion order", func(t *testing.T) {
		r := New()
		r.Set("z_field", "last alphabetically")
		r.Set("a_field", "first alphabetically")
		r.Set("count", 7)

		b, err := json.Marshal(r)
		require.NoError(t, err)
		assert.Equal(t, `{"z_field":"last alphabetically","a_field":"first alphabetically","count":7}`, string(b))
	})

	t.Run("empty record is an empty object", func(t *testing.T) {
		b, err := json.Marshal(New())
		require.NoError(t, err)
		assert.Equal(t, "{}", string(b))
	})

	t.Run("nested values survive", func(t *testing.T) {
		r := New()
		r.Set("items", []any{map[string]any{"sku": "APP-123456"}})

		b, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{"items":[{"sku":"APP-123456"}]}`, string(b))
	})
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	t.Run("preserves top-level key order from source", func(t *testing.T) {
		var r Record
		err := json.Unmarshal([]byte(`{"order_id":"ORD-2026-0000001","total":54.99,"status":"pending"}`), &r)
		require.NoError(t, err)

		assert.Equal(t, []string{"order_id", "total", "status"}, r.Keys())
	})

	t.Run("round trip keeps order", func(t *testing.T) {
		src := `{"b":1,"a":2,"c":3}`
		var r Record
		require.NoError(t, json.Unmarshal([]byte(src), &r))

		out, err := json.Marshal(&r)
		require.NoError(t, err)
		assert.Equal(t, src, string(out))
	})

	t.Run("rejects non-object input", func(t *testing.T) {
		var r Record
		assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &r))
		assert.Error(t, json.Unmarshal([]byte(`"text"`), &r))
	})
}

func TestRecord_FromMap(t *testing.T) {
	m := map[string]any{"a": 1, "b": 2, "c": 3}

	r := FromMap(m, []string{"c", "a", "missing"})

	// Ordered keys come first; leftovers are appended after them.
	keys := r.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, []string{"c", "a"}, keys[:2])
	assert.Equal(t, "b", keys[2])
}

func TestRecord_Clone(t *testing.T) {
	r := New()
	r.Set("a", 1)
	r.Set("b", 2)

	c := r.Clone()
	c.Set("c", 3)
	c.Set("a", 99)

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	v, _ := r.Get("a")
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, c.Len())
}

func TestMarshalList(t *testing.T) {
	r1 := New()
	r1.Set("x", 1)
	r2 := New()
	r2.Set("y", 2)

	t.Run("compact output", func(t *testing.T) {
		out, err := MarshalList([]*Record{r1, r2}, "")
		require.NoError(t, err)
		assert.Equal(t, `[{"x":1},{"y":2}]`, out)
	})

	t.Run("empty list", func(t *testing.T) {
		out, err := MarshalList(nil, "")
		require.NoError(t, err)
		assert.Equal(t, "[]", out)

		out, err = MarshalList(nil, "  ")
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("indented output is valid JSON", func(t *testing.T) {
		out, err := MarshalList([]*Record{r1, r2}, "  ")
		require.NoError(t, err)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Len(t, decoded, 2)
		assert.Contains(t, out, "\n")
	})
}
